// Package watch reports debounced file changes below a directory tree.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is zero.
const DefaultDebounce = 300 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	// Root is the directory tree to watch
	Root string
	// Debounce is how long the tree must stay quiet before changes are reported
	Debounce time.Duration
	// Match selects the files whose changes are reported (nil matches all)
	Match func(path string) bool
	// SkipDir reports directory names that are not watched (nil watches all)
	SkipDir func(name string) bool
}

// Stats counts watcher activity.
type Stats struct {
	Events  int
	Batches int
	Errors  int
}

// Watcher watches a directory tree and calls its handler with the sorted
// paths that changed once events stop arriving for the debounce period.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	cfg       Config
	onChange  func(paths []string)
	pending   map[string]struct{}
	lastEvent time.Time
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	stats     Stats
}

// New creates a Watcher. onChange runs on the watcher goroutine; events that
// arrive while it runs are batched for the next call.
func New(cfg Config, onChange func(paths []string)) (*Watcher, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("watch: root must not be empty")
	}
	if onChange == nil {
		return nil, fmt.Errorf("watch: change handler must not be nil")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	return &Watcher{
		watcher:  fw,
		cfg:      cfg,
		onChange: onChange,
		pending:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registers every directory below Root and begins watching.
// It returns immediately; the watcher runs until ctx is done or Stop is called.
// A Watcher whose Start fails is closed and cannot be restarted.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addTree(w.cfg.Root); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		_ = w.watcher.Close()
		return err
	}
	slog.Debug("watching directory tree", "root", w.cfg.Root, "debounce", w.cfg.Debounce)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		slog.Warn("closing file watcher", "error", err)
	}
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.cfg.SkipDir != nil && w.cfg.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch: %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := max(w.cfg.Debounce/4, 10*time.Millisecond)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	// New directories are not covered by existing watches.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.cfg.SkipDir == nil || !w.cfg.SkipDir(info.Name()) {
				if err := w.addTree(event.Name); err != nil {
					slog.Warn("watching new directory", "path", event.Name, "error", err)
				}
			}
			return
		}
	}

	if w.cfg.Match != nil && !w.cfg.Match(event.Name) {
		return
	}
	slog.Debug("file changed", "path", event.Name, "op", event.Op.String())

	w.mu.Lock()
	w.pending[event.Name] = struct{}{}
	w.lastEvent = time.Now()
	w.stats.Events++
	w.mu.Unlock()
}

// flush reports pending changes once the tree has been quiet long enough.
func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 || time.Since(w.lastEvent) < w.cfg.Debounce {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	clear(w.pending)
	w.stats.Batches++
	w.mu.Unlock()

	slices.Sort(paths)
	w.onChange(paths)
}
