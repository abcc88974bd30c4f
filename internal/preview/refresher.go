package preview

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// ChangeFunc is called with the path of a tracked file after it changes
// on disk. Calls are debounced per path.
type ChangeFunc func(path string)

// Refresher watches tracked markup files and reports changes so previews
// can re-render. Editors often save by write-and-rename, so the parent
// directory is watched rather than the file itself, and events are
// filtered down to the tracked paths.
type Refresher struct {
	watcher  *fsnotify.Watcher
	onChange ChangeFunc
	delay    time.Duration

	mu      sync.Mutex
	files   map[string]bool // abs file path -> tracked
	dirs    map[string]int  // watched dir -> tracked file count
	pending map[string]*time.Timer
	closed  bool

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithDebounce sets the per-path debounce delay.
func WithDebounce(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		if d > 0 {
			r.delay = d
		}
	}
}

// NewRefresher creates a refresher that calls onChange for each tracked
// file that changes.
func NewRefresher(onChange ChangeFunc, opts ...RefresherOption) (*Refresher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	r := &Refresher{
		watcher:  fsw,
		onChange: onChange,
		delay:    defaultDebounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		pending:  make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.wg.Add(1)
	go r.processLoop()

	return r, nil
}

// Track starts watching a file for changes.
func (r *Refresher) Track(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRefresherClosed
	}
	if r.files[absPath] {
		return nil
	}

	if r.dirs[dir] == 0 {
		if err := r.watcher.Add(dir); err != nil {
			return err
		}
	}
	r.dirs[dir]++
	r.files[absPath] = true
	return nil
}

// Untrack stops watching a file. The directory watch is released when its
// last tracked file is untracked.
func (r *Refresher) Untrack(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRefresherClosed
	}
	if !r.files[absPath] {
		return ErrNotTracking
	}

	delete(r.files, absPath)
	if t, ok := r.pending[absPath]; ok {
		t.Stop()
		delete(r.pending, absPath)
	}

	r.dirs[dir]--
	if r.dirs[dir] <= 0 {
		delete(r.dirs, dir)
		return r.watcher.Remove(dir)
	}
	return nil
}

// Tracked returns the tracked file paths.
func (r *Refresher) Tracked() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.files))
	for p := range r.files {
		paths = append(paths, p)
	}
	return paths
}

// Close stops the refresher. Pending debounce timers are cancelled.
func (r *Refresher) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.closeCh)
	for path, t := range r.pending {
		t.Stop()
		delete(r.pending, path)
	}
	r.mu.Unlock()

	err := r.watcher.Close()
	r.wg.Wait()
	return err
}

func (r *Refresher) processLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.closeCh:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.handleEvent(event)

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleEvent debounces changes to tracked files. Create and Rename are
// included because atomic saves replace the file rather than writing it
// in place.
func (r *Refresher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Rename) {
		return
	}

	path := filepath.Clean(event.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.files[path] {
		return
	}

	if t, ok := r.pending[path]; ok {
		t.Reset(r.delay)
		return
	}
	r.pending[path] = time.AfterFunc(r.delay, func() {
		r.fire(path)
	})
}

func (r *Refresher) fire(path string) {
	r.mu.Lock()
	_, ok := r.pending[path]
	delete(r.pending, path)
	closed := r.closed
	r.mu.Unlock()

	if !ok || closed || r.onChange == nil {
		return
	}
	r.onChange(path)
}
