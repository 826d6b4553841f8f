package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/forumkit/cli/pkg/changelog"
	"github.com/forumkit/cli/pkg/util"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

var whatsnewCmd = &cobra.Command{
	Use:   "whatsnew",
	Short: "Show release notes you have not seen yet",
	Long: `Show the release notes published since you last acknowledged them.

Acknowledge them with 'forumkit whatsnew ack'; the acknowledgment is shared
across terminals through the state file.`,
	RunE: runWhatsNew,
}

var whatsnewAckCmd = &cobra.Command{
	Use:     "ack",
	Aliases: []string{"seen"},
	Short:   "Mark the latest release notes as seen",
	RunE:    runWhatsNewAck,
}

var whatsnewOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the release notes page in your browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Info.Printf("Opening %s\n", cfg.ReleaseNotesURL)
		return browser.OpenURL(cfg.ReleaseNotesURL)
	},
}

var whatsnewWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Wait and report when release notes are acknowledged elsewhere",
	Long: `Block until interrupted, printing a line whenever the last-seen version
changes, for example because 'forumkit whatsnew ack' ran in another terminal.`,
	RunE: runWhatsNewWatch,
}

func init() {
	whatsnewCmd.Flags().Bool("all", false, "Show the full changelog, not just unseen entries")
	whatsnewCmd.Flags().StringP("output", "o", "", "Output format (json)")
	whatsnewCmd.AddCommand(whatsnewAckCmd)
	whatsnewCmd.AddCommand(whatsnewOpenCmd)
	whatsnewCmd.AddCommand(whatsnewWatchCmd)
	rootCmd.AddCommand(whatsnewCmd)
}

func runWhatsNew(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	output, _ := cmd.Flags().GetString("output")

	trk := newTracker()
	registry := changelog.Default()

	var entries []changelog.Entry
	if all {
		entries = registry.Entries()
	} else {
		var err error
		entries, err = trk.UnseenChanges(cmd.Context())
		if err != nil {
			return err
		}
	}

	if output == "json" {
		return util.PrintJSON(entries)
	}

	if len(entries) == 0 {
		pterm.Success.Printf("You are up to date (%s)\n", registry.LatestVersion())
		return nil
	}

	title := "What's new in forumkit"
	if all {
		title = "forumkit changelog"
	}
	pterm.Println(headerStyle.Render(title))
	pterm.Println()
	for _, e := range entries {
		pterm.Printf("%s (%s)\n", e.Version, util.OrDash(e.Date))
		for _, change := range e.Changes {
			pterm.Printf("  • %s\n", change)
		}
		pterm.Println()
	}
	if !all {
		pterm.Info.Println("Run 'forumkit whatsnew ack' to mark these as seen.")
	}
	return nil
}

func runWhatsNewAck(cmd *cobra.Command, args []string) error {
	trk := newTracker()
	if err := trk.MarkSeen(cmd.Context()); err != nil {
		return fmt.Errorf("failed to acknowledge release notes: %w", err)
	}
	pterm.Success.Printf("Release notes acknowledged (up to date with %s)\n",
		changelog.Default().LatestVersion())
	return nil
}

func runWhatsNewWatch(cmd *cobra.Command, args []string) error {
	trk := newTracker()

	unsubscribe, err := trk.WatchVersionChanges(func(newValue string) {
		pterm.Info.Printf("Last seen version changed to %s\n", newValue)
	})
	if err != nil {
		return err
	}
	defer unsubscribe()
	defer stateStore.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pterm.Info.Println("Watching for acknowledgments from other terminals. Ctrl-C to stop.")
	<-ctx.Done()
	return nil
}
