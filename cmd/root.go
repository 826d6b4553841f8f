package cmd

import (
	"context"
	"os"
	"time"

	"github.com/forumkit/cli/internal/config"
	"github.com/forumkit/cli/pkg/changelog"
	"github.com/forumkit/cli/pkg/store"
	"github.com/forumkit/cli/pkg/tracker"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// version is overridden at release time via
// -ldflags "-X github.com/forumkit/cli/cmd.version=...".
var version = "0.4.0"

var (
	cfg        config.Config
	stateStore *store.File
)

var rootCmd = &cobra.Command{
	Use:     "forumkit",
	Short:   "Forum power tools: release-notes tracking, muted words, thread summaries",
	Version: version,
	Long: `forumkit keeps track of which release notes you have seen, manages your
muted-word list, and summarizes forum threads.

State is stored in a single JSON file shared by all terminals; acknowledging
release notes in one terminal is picked up by the others.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		stateStore = store.NewFile(cfg.StateFile, store.WithPollInterval(cfg.PollInterval))
		maybePrintWhatsNewHint(cmd)
		return nil
	},
}

// Root returns the assembled command tree for execution.
func Root() *cobra.Command {
	return rootCmd
}

func newTracker() *tracker.Tracker {
	return tracker.New(stateStore, changelog.Default())
}

// maybePrintWhatsNewHint prints a one-line nudge when unseen release notes
// exist. Any failure here is swallowed: the hint must never block or fail
// the command the user actually ran. The hint goes to stderr so that
// machine-readable stdout (e.g. 'summarize -o json' piped to jq) stays
// clean.
func maybePrintWhatsNewHint(cmd *cobra.Command) {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "whatsnew", "completion",
			cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()

	unseen, err := newTracker().HasUnseenChanges(ctx)
	if err != nil || !unseen {
		return
	}
	pterm.Info.WithWriter(os.Stderr).Println("forumkit has new release notes. Run 'forumkit whatsnew' to see what changed.")
}
