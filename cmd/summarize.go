package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/forumkit/cli/pkg/summarize"
	"github.com/forumkit/cli/pkg/textutil"
	"github.com/forumkit/cli/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a forum thread",
	Long: `Summarize a forum thread transcript read from a file, or from stdin when
no file is given. System and tool lines are stripped before the text is sent
to the summarization API.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

var summarizeSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the summarizer API key in the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("API key")
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		if err := summarize.SetAPIKey(strings.TrimSpace(key)); err != nil {
			return err
		}
		pterm.Success.Println("API key stored in the system keyring.")
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringP("output", "o", "", "Output format (json)")
	summarizeCmd.Flags().String("highlight", "", "Highlight a term in the summary")
	summarizeCmd.AddCommand(summarizeSetKeyCmd)
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	highlight, _ := cmd.Flags().GetString("highlight")

	text, err := readThread(args)
	if err != nil {
		return err
	}
	text = textutil.SanitizeChatHistory(text)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to summarize after sanitizing the transcript")
	}

	key, err := summarize.APIKey()
	if err != nil {
		return err
	}
	client, err := summarize.NewClient(cfg.SummarizerURL, cfg.SummarizerModel, key)
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Summarizing...")
	summary, err := client.Summarize(cmd.Context(), text)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("failed to summarize thread: %w", err)
	}

	if output == "json" {
		// Prefer a structured payload when the model embedded one.
		if payload, ok := textutil.ExtractJSON(summary); ok {
			return util.PrintRawJSON(payload)
		}
		return util.PrintJSON(map[string]string{"summary": summary})
	}

	if highlight != "" {
		summary = textutil.Highlight(summary, highlight,
			pterm.FgYellow.Sprint("«"), pterm.FgYellow.Sprint("»"))
	}
	pterm.Println(summary)
	return nil
}

// readThread reads the transcript from the named file, or stdin when no
// argument was given.
func readThread(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
