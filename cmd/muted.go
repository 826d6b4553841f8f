package cmd

import (
	"context"
	"fmt"

	"github.com/forumkit/cli/pkg/mutedwords"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// MutedCmd handles muted-word operations.
type MutedCmd struct {
	words *mutedwords.Service
}

// List prints the muted-word list.
func (c MutedCmd) List(ctx context.Context) error {
	words, err := c.words.Load(ctx)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		pterm.Info.Println("No muted words.")
		return nil
	}
	rows := pterm.TableData{{"#", "Word"}}
	for i, w := range words {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), w})
	}
	PrintTableNoPad(rows, true)
	return nil
}

// Add mutes each of the given words, skipping duplicates.
func (c MutedCmd) Add(ctx context.Context, toAdd []string) error {
	words, err := c.words.Load(ctx)
	if err != nil {
		return err
	}
	before := len(words)
	for _, w := range toAdd {
		words = words.Add(w)
	}
	if len(words) == before {
		pterm.Info.Println("Nothing to add; all words are already muted.")
		return nil
	}
	if err := c.words.Save(ctx, words); err != nil {
		return err
	}
	pterm.Success.Printf("Muted %d word(s); %d total.\n", len(words)-before, len(words))
	return nil
}

// Remove unmutes a word.
func (c MutedCmd) Remove(ctx context.Context, word string) error {
	words, err := c.words.Load(ctx)
	if err != nil {
		return err
	}
	next := words.Remove(word)
	if len(next) == len(words) {
		return fmt.Errorf("%q is not muted", word)
	}
	if err := c.words.Save(ctx, next); err != nil {
		return err
	}
	pterm.Success.Printf("Unmuted %q; %d remaining.\n", word, len(next))
	return nil
}

// Test shows how the current muted-word list affects a piece of text.
func (c MutedCmd) Test(ctx context.Context, text string) error {
	words, err := c.words.Load(ctx)
	if err != nil {
		return err
	}
	if !words.Matches(text) {
		pterm.Success.Println("No muted words matched.")
		return nil
	}
	pterm.Warning.Println("Muted words matched. Censored text:")
	pterm.Println(words.Censor(text))
	return nil
}

var mutedCmd = &cobra.Command{
	Use:   "muted",
	Short: "Manage your muted-word list",
}

var mutedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List muted words",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newMutedCmd().List(cmd.Context())
	},
}

var mutedAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Mute one or more words",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newMutedCmd().Add(cmd.Context(), args)
	},
}

var mutedRemoveCmd = &cobra.Command{
	Use:   "remove <word>",
	Short: "Unmute a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newMutedCmd().Remove(cmd.Context(), args[0])
	},
}

var mutedTestCmd = &cobra.Command{
	Use:   "test <text>",
	Short: "Check a piece of text against your muted words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newMutedCmd().Test(cmd.Context(), args[0])
	},
}

func newMutedCmd() MutedCmd {
	return MutedCmd{words: mutedwords.NewService(stateStore)}
}

func init() {
	mutedCmd.AddCommand(mutedListCmd)
	mutedCmd.AddCommand(mutedAddCmd)
	mutedCmd.AddCommand(mutedRemoveCmd)
	mutedCmd.AddCommand(mutedTestCmd)
	rootCmd.AddCommand(mutedCmd)
}
