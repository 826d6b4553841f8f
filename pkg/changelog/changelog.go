// Package changelog holds the static release-notes registry shipped with
// the build and answers "what changed since version X" queries.
package changelog

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// Entry is one release. Entries are immutable build-time data.
type Entry struct {
	Version string   `json:"version"`
	Date    string   `json:"date"` // YYYY-MM-DD
	Changes []string `json:"changes"`
}

// Registry is an ordered list of releases, newest first.
type Registry struct {
	entries []Entry
}

// New builds a registry from entries ordered newest first.
func New(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("changelog registry must have at least one entry")
	}
	for _, e := range entries {
		if e.Version == "" {
			return nil, fmt.Errorf("changelog entry dated %q has an empty version", e.Date)
		}
	}
	return &Registry{entries: entries}, nil
}

// Entries returns all releases, newest first.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// LatestVersion returns the version of the most recent release. It is
// constant for a given build.
func (r *Registry) LatestVersion() string {
	return r.entries[0].Version
}

// ChangesSince returns the releases strictly newer than version, newest
// first. An empty version means "nothing seen yet" and returns the full
// registry. A version not present in the registry is compared as semver
// against each entry; if it cannot be parsed, the full registry is
// returned (unknown versions count as nothing seen).
func (r *Registry) ChangesSince(version string) []Entry {
	if version == "" {
		return r.Entries()
	}

	for i, e := range r.entries {
		if e.Version == version {
			out := make([]Entry, i)
			copy(out, r.entries[:i])
			return out
		}
	}

	seen, err := semver.NewVersion(version)
	if err != nil {
		return r.Entries()
	}
	return lo.Filter(r.entries, func(e Entry, _ int) bool {
		v, err := semver.NewVersion(e.Version)
		return err == nil && v.GreaterThan(seen)
	})
}
