package store

import (
	"context"
	"sync"
)

// watcher is a single Watch registration. Cancellation and notification
// share a mutex so that once cancel returns, the callback can no longer
// be invoked. Do not cancel from inside the callback itself.
type watcher struct {
	mu   sync.Mutex
	fn   func(string)
	done bool
}

func (w *watcher) notify(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.done {
		w.fn(value)
	}
}

func (w *watcher) cancel() {
	w.mu.Lock()
	w.done = true
	w.mu.Unlock()
}

// Memory is an in-process Store. It is safe for concurrent use and is the
// backend used by tests and ephemeral runs; values do not survive restarts.
type Memory struct {
	mu       sync.Mutex
	values   map[string]string
	watchers map[string]map[int]*watcher
	nextID   int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values:   make(map[string]string),
		watchers: make(map[string]map[int]*watcher),
	}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	prev, had := m.values[key]
	m.values[key] = value
	var notify []*watcher
	if !had || prev != value {
		for _, w := range m.watchers[key] {
			notify = append(notify, w)
		}
	}
	m.mu.Unlock()

	// Notify outside the store lock so callbacks may call back into the store.
	for _, w := range notify {
		w.notify(value)
	}
	return nil
}

func (m *Memory) Watch(key string, fn func(string)) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := &watcher{fn: fn}
	id := m.nextID
	m.nextID++
	if m.watchers[key] == nil {
		m.watchers[key] = make(map[int]*watcher)
	}
	m.watchers[key][id] = w

	return func() {
		w.cancel()
		m.mu.Lock()
		delete(m.watchers[key], id)
		m.mu.Unlock()
	}, nil
}
