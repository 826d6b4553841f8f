// Package store provides a small asynchronous key-value store abstraction
// with change notification, used to persist tool state such as the last
// seen changelog version and the muted-word list.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the backing storage could not be reached or
// written. Operations are not retried internally; callers decide.
var ErrUnavailable = errors.New("storage unavailable")

// Store is a durable, watchable string key-value store.
//
// Keys are namespaced by convention (e.g. "local:last_seen_version"); the
// store itself treats them as opaque. There is no transactional guarantee
// across keys, and concurrent writers follow last-write-wins.
type Store interface {
	// Get returns the value for key. A key that was never set yields
	// ok=false with a nil error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value for key. The write is visible to all
	// current and future watchers of the same key.
	Set(ctx context.Context, key, value string) error

	// Watch registers fn to be called with the new value whenever key
	// changes, including changes made by other processes for backends
	// that support it. The returned function cancels the registration;
	// it is synchronous, idempotent, and guarantees no further calls
	// to fn once it returns. Watchers on the same key are notified
	// independently with no ordering guarantee between them.
	Watch(key string, fn func(newValue string)) (unsubscribe func(), err error)
}
