package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const defaultPollInterval = 500 * time.Millisecond

// File is a Store persisted as a single JSON object on disk. It is shared
// state: several processes may read and write the same file concurrently,
// with last-write-wins semantics. Cross-process change notification is
// implemented by polling the file and diffing values for watched keys.
type File struct {
	path     string
	interval time.Duration

	mu       sync.Mutex
	watchers map[string]map[int]*watcher
	snapshot map[string]string
	nextID   int
	polling  bool
	stop     chan struct{}
}

// FileOption configures a File store.
type FileOption func(*File)

// WithPollInterval sets how often the watch poller re-reads the file.
func WithPollInterval(d time.Duration) FileOption {
	return func(f *File) {
		if d > 0 {
			f.interval = d
		}
	}
}

// NewFile returns a file-backed store at path. The file and its parent
// directory are created on first write.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		path:     path,
		interval: defaultPollInterval,
		watchers: make(map[string]map[int]*watcher),
		snapshot: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	values, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	values, err := f.load()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	values[key] = value
	if err := f.write(values); err != nil {
		f.mu.Unlock()
		return err
	}

	// Record our own write in the snapshot so the poller does not fire a
	// second time for it, then notify local watchers directly.
	prev, had := f.snapshot[key]
	f.snapshot[key] = value
	var notify []*watcher
	if !had || prev != value {
		for _, w := range f.watchers[key] {
			notify = append(notify, w)
		}
	}
	f.mu.Unlock()

	for _, w := range notify {
		w.notify(value)
	}
	return nil
}

// Watch registers fn for changes to key, including writes from other
// processes. The poller starts lazily with the first watcher and restarts
// if watchers are added again after Close. Because external changes are
// observed by polling, rapid successive writes within one poll interval
// coalesce into a single notification carrying the newest value.
func (f *File) Watch(key string, fn func(string)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Seed the snapshot so only changes after registration fire.
	if _, ok := f.snapshot[key]; !ok {
		values, err := f.load()
		if err != nil {
			return nil, err
		}
		if v, ok := values[key]; ok {
			f.snapshot[key] = v
		}
	}

	w := &watcher{fn: fn}
	id := f.nextID
	f.nextID++
	if f.watchers[key] == nil {
		f.watchers[key] = make(map[int]*watcher)
	}
	f.watchers[key][id] = w

	if !f.polling {
		f.polling = true
		f.stop = make(chan struct{})
		go f.poll(f.stop)
	}

	return func() {
		w.cancel()
		f.mu.Lock()
		delete(f.watchers[key], id)
		f.mu.Unlock()
	}, nil
}

// Close stops the watch poller. Get and Set remain usable.
func (f *File) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.polling {
		close(f.stop)
		f.polling = false
	}
}

// poll re-reads the file on an interval and notifies watchers whose key
// changed since the last observation. Read failures are skipped; a
// transiently unreadable file should not kill the poller. The stop
// channel is passed in so a poller restarted by Watch after Close never
// observes a previously closed channel.
func (f *File) poll(stop <-chan struct{}) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		values, err := f.load()
		if err != nil {
			continue
		}

		f.mu.Lock()
		type pending struct {
			w     *watcher
			value string
		}
		var fire []pending
		for key, ws := range f.watchers {
			v, ok := values[key]
			if !ok {
				continue
			}
			prev, had := f.snapshot[key]
			if had && prev == v {
				continue
			}
			f.snapshot[key] = v
			for _, w := range ws {
				fire = append(fire, pending{w, v})
			}
		}
		f.mu.Unlock()

		for _, p := range fire {
			p.w.notify(p.value)
		}
	}
}

func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, f.path, err)
	}
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, f.path, err)
	}
	return values, nil
}

// write replaces the file atomically via a temp file and rename.
func (f *File) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("%w: create state dir: %v", ErrUnavailable, err)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode state: %v", ErrUnavailable, err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrUnavailable, tmp, err)
	}
	return nil
}
