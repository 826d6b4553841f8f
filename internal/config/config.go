// Package config resolves tool configuration from the environment, with
// an optional .env file for development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultReleaseNotesURL = "https://forumkit.dev/changelog"
	defaultSummarizerURL   = "https://api.openai.com/v1/chat/completions"
	defaultSummarizerModel = "gpt-4o-mini"
	defaultPollInterval    = 500 * time.Millisecond
)

// Config holds everything the commands need from the environment.
type Config struct {
	// StateFile is the JSON file backing the shared key-value store.
	StateFile string

	// PollInterval is how often the store watches for external writes.
	PollInterval time.Duration

	ReleaseNotesURL string
	SummarizerURL   string
	SummarizerModel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		PollInterval:    defaultPollInterval,
		ReleaseNotesURL: defaultReleaseNotesURL,
		SummarizerURL:   defaultSummarizerURL,
		SummarizerModel: defaultSummarizerModel,
	}

	stateDir := strings.TrimSpace(os.Getenv("FORUMKIT_STATE_DIR"))
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		stateDir = filepath.Join(base, "forumkit")
	}
	cfg.StateFile = filepath.Join(stateDir, "state.json")

	if v := strings.TrimSpace(os.Getenv("FORUMKIT_POLL_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FORUMKIT_POLL_INTERVAL %q: %w", v, err)
		}
		cfg.PollInterval = d
	}
	if v := strings.TrimSpace(os.Getenv("FORUMKIT_RELEASE_NOTES_URL")); v != "" {
		cfg.ReleaseNotesURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("FORUMKIT_SUMMARIZER_URL")); v != "" {
		cfg.SummarizerURL = v
	}
	if v := strings.TrimSpace(os.Getenv("FORUMKIT_SUMMARIZER_MODEL")); v != "" {
		cfg.SummarizerModel = v
	}

	return cfg, nil
}
