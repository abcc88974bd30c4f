package config

import (
	"context"
	"os"
	"sync"
	"time"
)

const defaultPollInterval = 500 * time.Millisecond

// ReloadFunc is called with the freshly loaded configuration after the
// watched file changes.
type ReloadFunc func(cfg *Config)

// Watcher polls the configuration file and reloads it on change. Polling
// beats inotify here: the file usually lives under a dot-directory that
// editors rewrite with temp files, and one stat every half second is
// cheap.
type Watcher struct {
	path     string
	interval time.Duration
	onReload ReloadFunc

	mu      sync.Mutex
	modTime time.Time
	running bool
	closed  bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// NewWatcher creates a watcher for the configuration file at path.
func NewWatcher(path string, onReload ReloadFunc, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		interval: defaultPollInterval,
		onReload: onReload,
	}
	for _, opt := range opts {
		opt(w)
	}
	if info, err := os.Stat(path); err == nil {
		w.modTime = info.ModTime()
	}
	return w
}

// Start begins polling. It is an error to start a closed watcher.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.running {
		return nil
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.running = true

	w.wg.Add(1)
	go w.pollLoop(ctx)
	return nil
}

// Stop halts polling and waits for the poll loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	cancel := w.cancel
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) pollLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

// poll stats the file and fires a reload when the modification time moved.
// Stat failures are treated as no change; the file may be mid-rewrite.
func (w *Watcher) poll() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := info.ModTime().After(w.modTime)
	if changed {
		w.modTime = info.ModTime()
	}
	w.mu.Unlock()

	if !changed || w.onReload == nil {
		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		// A half-written or invalid file keeps the current configuration.
		return
	}
	w.onReload(cfg)
}
