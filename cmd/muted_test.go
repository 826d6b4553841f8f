package cmd

import (
	"context"
	"testing"

	"github.com/forumkit/cli/pkg/mutedwords"
	"github.com/forumkit/cli/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMutedCmd() (MutedCmd, *store.Memory) {
	s := store.NewMemory()
	return MutedCmd{words: mutedwords.NewService(s)}, s
}

func TestMutedAddThenList(t *testing.T) {
	c, s := testMutedCmd()
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, []string{"spoiler", "crypto", "SPOILER"}))

	words, err := mutedwords.NewService(s).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, mutedwords.List{"spoiler", "crypto"}, words)

	require.NoError(t, c.List(ctx))
}

func TestMutedRemoveUnknownWord(t *testing.T) {
	c, _ := testMutedCmd()
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, []string{"spoiler"}))
	assert.Error(t, c.Remove(ctx, "absent"))
	require.NoError(t, c.Remove(ctx, "spoiler"))
}

func TestMutedTest(t *testing.T) {
	c, _ := testMutedCmd()
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, []string{"spoiler"}))
	require.NoError(t, c.Test(ctx, "contains a SPOILER"))
	require.NoError(t, c.Test(ctx, "clean"))
}
