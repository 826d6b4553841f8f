package mutedwords

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forumkit/cli/pkg/store"
)

// Key is the store key holding the muted-word list as a JSON array.
const Key = "local:muted_words"

// Service persists a List through the shared state store.
type Service struct {
	store store.Store
}

// NewService returns a service over the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Load reads the muted-word list. A missing key yields an empty list; a
// value that does not parse as a JSON array also degrades to an empty
// list rather than failing, since a corrupted preference should not
// break filtering.
func (s *Service) Load(ctx context.Context) (List, error) {
	raw, ok, err := s.store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read muted words: %w", err)
	}
	if !ok || raw == "" {
		return List{}, nil
	}
	var words List
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return List{}, nil
	}
	return words, nil
}

// Save writes the muted-word list, overwriting the previous value.
func (s *Service) Save(ctx context.Context, words List) error {
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode muted words: %w", err)
	}
	if err := s.store.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("failed to persist muted words: %w", err)
	}
	return nil
}
