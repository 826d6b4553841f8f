package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/forumkit/cli/pkg/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput swaps stdout and stderr for the duration of fn and
// returns what was written to each.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout, os.Stderr = outW, errW
	defer func() {
		os.Stdout, os.Stderr = origOut, origErr
	}()

	fn()

	require.NoError(t, outW.Close())
	require.NoError(t, errW.Close())
	outBytes, err := io.ReadAll(outR)
	require.NoError(t, err)
	errBytes, err := io.ReadAll(errR)
	require.NoError(t, err)
	return string(outBytes), string(errBytes)
}

func freshStateStore(t *testing.T) {
	t.Helper()
	stateStore = store.NewFile(filepath.Join(t.TempDir(), "state.json"))
}

func hintTestCommand(name string) *cobra.Command {
	root := &cobra.Command{Use: "forumkit"}
	child := &cobra.Command{Use: name}
	root.AddCommand(child)
	// cobra only assigns a context during Execute; these tests call
	// maybePrintWhatsNewHint directly, so set one explicitly.
	child.SetContext(context.Background())
	return child
}

func TestWhatsNewHintStaysOffStdout(t *testing.T) {
	freshStateStore(t)

	// A fresh store means unseen changes, so the hint fires; it must
	// land on stderr only, or it would corrupt piped JSON output.
	stdout, stderr := captureOutput(t, func() {
		maybePrintWhatsNewHint(hintTestCommand("summarize"))
	})
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "new release notes")
}

func TestWhatsNewHintSilentWhenUpToDate(t *testing.T) {
	freshStateStore(t)
	require.NoError(t, newTracker().MarkSeen(context.Background()))

	stdout, stderr := captureOutput(t, func() {
		maybePrintWhatsNewHint(hintTestCommand("summarize"))
	})
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestWhatsNewHintSkipsCompletionRequests(t *testing.T) {
	freshStateStore(t)

	for _, name := range []string{
		"whatsnew", "completion",
		cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd,
	} {
		t.Run(name, func(t *testing.T) {
			stdout, stderr := captureOutput(t, func() {
				maybePrintWhatsNewHint(hintTestCommand(name))
			})
			assert.Empty(t, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestWhatsNewHintSwallowsStorageErrors(t *testing.T) {
	// An unreadable state file suppresses the hint rather than failing
	// or printing anything.
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	stateStore = store.NewFile(path)

	stdout, stderr := captureOutput(t, func() {
		maybePrintWhatsNewHint(hintTestCommand("summarize"))
	})
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}
