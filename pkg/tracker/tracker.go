// Package tracker decides whether the user has seen the latest release
// notes, based on a version persisted in the shared state store.
package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/forumkit/cli/pkg/changelog"
	"github.com/forumkit/cli/pkg/store"
)

// LastSeenVersionKey is the store key holding the last acknowledged
// release version. The value is a raw version string; absence means the
// user has never acknowledged anything (there is no empty-string
// sentinel).
const LastSeenVersionKey = "local:whats_new_last_seen_version"

// Tracker compares the persisted last-seen version against the registry's
// latest release. It holds no state of its own; every answer is derived
// from the store at call time.
type Tracker struct {
	store    store.Store
	registry *changelog.Registry
}

// New returns a tracker over the given store and registry.
func New(s store.Store, r *changelog.Registry) *Tracker {
	return &Tracker{store: s, registry: r}
}

// LastSeenVersion returns the persisted version, if any. A stored value
// that is empty or all whitespace is treated as absent rather than an
// error, so a corrupted value degrades to the new-user state.
func (t *Tracker) LastSeenVersion(ctx context.Context) (string, bool, error) {
	v, ok, err := t.store.Get(ctx, LastSeenVersionKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read last seen version: %w", err)
	}
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// SetLastSeenVersion persists v as the last acknowledged version.
func (t *Tracker) SetLastSeenVersion(ctx context.Context, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("last seen version must not be empty")
	}
	if err := t.store.Set(ctx, LastSeenVersionKey, v); err != nil {
		return fmt.Errorf("failed to persist last seen version: %w", err)
	}
	return nil
}

// HasUnseenChanges reports whether the latest release differs from the
// last one acknowledged. A user with no persisted version has unseen
// changes: absence means "there is something new to show".
func (t *Tracker) HasUnseenChanges(ctx context.Context) (bool, error) {
	v, ok, err := t.LastSeenVersion(ctx)
	if err != nil {
		return false, err
	}
	return !ok || v != t.registry.LatestVersion(), nil
}

// UnseenChanges returns the releases the user has not acknowledged yet,
// newest first.
func (t *Tracker) UnseenChanges(ctx context.Context) ([]changelog.Entry, error) {
	v, _, err := t.LastSeenVersion(ctx)
	if err != nil {
		return nil, err
	}
	return t.registry.ChangesSince(v), nil
}

// MarkSeen acknowledges the latest release, moving the tracker to the
// up-to-date state regardless of where it was.
func (t *Tracker) MarkSeen(ctx context.Context) error {
	return t.SetLastSeenVersion(ctx, t.registry.LatestVersion())
}

// WatchVersionChanges registers fn for writes to the last-seen version,
// including writes from other processes. The tracker does not recompute
// anything on its own; callers re-derive state from the new value.
func (t *Tracker) WatchVersionChanges(fn func(newValue string)) (func(), error) {
	unsubscribe, err := t.store.Watch(LastSeenVersionKey, fn)
	if err != nil {
		return nil, fmt.Errorf("failed to watch last seen version: %w", err)
	}
	return unsubscribe, nil
}
