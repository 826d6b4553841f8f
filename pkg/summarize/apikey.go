package summarize

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "forumkit"
	keyringKey     = "summarizer_api_key"
)

// APIKey resolves the summarizer API key: the system keyring first, then
// the FORUMKIT_SUMMARIZER_API_KEY and OPENAI_API_KEY environment
// variables. An empty string with a nil error is never returned.
func APIKey() (string, error) {
	key, err := keyring.Get(keyringService, keyringKey)
	if err == nil && key != "" {
		return key, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("failed to read API key from keyring: %w", err)
	}

	for _, name := range []string{"FORUMKIT_SUMMARIZER_API_KEY", "OPENAI_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", errors.New("no summarizer API key: run 'forumkit summarize set-key' or set FORUMKIT_SUMMARIZER_API_KEY")
}

// SetAPIKey stores the summarizer API key in the system keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key must not be empty")
	}
	if err := keyring.Set(keyringService, keyringKey, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}
