package changelog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed changelog.json
var embedded []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry embedded in the binary at build time.
func Default() *Registry {
	defaultOnce.Do(func() {
		var entries []Entry
		if err := json.Unmarshal(embedded, &entries); err != nil {
			panic(fmt.Sprintf("embedded changelog is malformed: %v", err))
		}
		r, err := New(entries)
		if err != nil {
			panic(fmt.Sprintf("embedded changelog is invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
