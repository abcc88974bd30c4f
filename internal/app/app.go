package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/markview/internal/config"
	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/split"
	"github.com/dshills/markview/internal/editor/text"
	"github.com/dshills/markview/internal/preview"
	"github.com/dshills/markview/internal/rename"
	"github.com/dshills/markview/internal/rename/script"
	"github.com/dshills/markview/internal/ui"
	"github.com/dshills/markview/internal/view"
)

// App owns the application components and the terminal event loop.
type App struct {
	cfg *config.Config
	log *Logger

	registry  *editor.Registry
	renamers  *rename.Registry
	exec      *ui.Executor
	backend   view.Backend
	renderer  *view.Renderer
	refresher *preview.Refresher
	session   *Session

	sessionPath string
	validators  []*script.Validator

	mu      sync.Mutex
	current *split.Editor
	running bool
}

// Option configures an App.
type Option func(*App)

// WithBackend replaces the terminal backend, typically for tests.
func WithBackend(b view.Backend) Option {
	return func(a *App) { a.backend = b }
}

// WithLogger replaces the logger.
func WithLogger(log *Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithSessionPath sets where editor states are persisted between runs.
func WithSessionPath(path string) Option {
	return func(a *App) { a.sessionPath = path }
}

// New assembles an application from the configuration.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		cfg:      cfg,
		log:      NewLogger(ParseLogLevel(cfg.Logging.Level), nil),
		registry: editor.NewRegistry(),
		renamers: rename.NewRegistry(),
		exec:     ui.NewExecutor(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.backend == nil {
		term, err := view.NewTerminal()
		if err != nil {
			return nil, err
		}
		a.backend = term
	}
	a.renderer = view.NewRenderer(a.backend)
	a.renderer.SetRatio(cfg.Split.Ratio)

	textProvider := text.NewProvider()
	previewProvider := preview.NewProvider(
		preview.WithExtensions(cfg.Preview.Extensions...),
	)
	splitProvider, err := split.NewProvider(
		textProvider, previewProvider, a.exec,
		split.WithDefaultLayout(cfg.Layout()),
	)
	if err != nil {
		return nil, err
	}

	for _, p := range []editor.Provider{textProvider, previewProvider, splitProvider} {
		if err := a.registry.Register(p); err != nil {
			return nil, err
		}
	}
	a.session = NewSession(a.registry)

	if err := a.loadValidators(cfg.Rename.ScriptDir); err != nil {
		return nil, err
	}
	a.renamers.Register(rename.NewMarkupNameValidator())

	a.refresher, err = preview.NewRefresher(a.onSourceChanged,
		preview.WithDebounce(cfg.Debounce()))
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Registry returns the editor provider registry.
func (a *App) Registry() *editor.Registry { return a.registry }

// Renamers returns the rename validator registry.
func (a *App) Renamers() *rename.Registry { return a.renamers }

// loadValidators compiles the Lua validator scripts in dir, in name
// order, and registers them ahead of the built-in identifier rules.
// Scripts that fail to compile are logged and skipped.
func (a *App) loadValidators(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		v, err := script.New(string(source))
		if err != nil {
			a.log.Warn("skipping validator %s: %v", name, err)
			continue
		}
		a.validators = append(a.validators, v)
		a.renamers.Register(v)
		a.log.Debug("loaded validator %s", name)
	}
	return nil
}

// Run opens filePath in a split editor and drives the terminal event loop
// until quit. Editor construction is marshalled onto the executor's UI
// goroutine, which Run starts.
func (a *App) Run(ctx context.Context, filePath string) error {
	if filePath == "" {
		return ErrNoFile
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true
	a.mu.Unlock()

	if err := a.backend.Init(); err != nil {
		return err
	}
	defer a.backend.Fini()
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.exec.Run(ctx)

	watcher := config.NewWatcher(config.DefaultPath(), a.onConfigReload)
	if err := watcher.Start(ctx); err == nil {
		defer watcher.Stop()
	}

	ed, err := a.open(ctx, filePath)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.current = ed
	a.mu.Unlock()

	if err := a.refresher.Track(filePath); err != nil {
		a.log.Warn("cannot watch %s: %v", filePath, err)
	}

	a.draw()
	err = a.eventLoop(ctx)

	if a.sessionPath != "" {
		if saveErr := a.session.Save(a.sessionPath, []editor.Editor{ed}); saveErr != nil {
			a.log.Error("save session: %v", saveErr)
		}
	}
	ed.Dispose()
	return err
}

// open builds the split editor for the file, restoring session state when
// available.
func (a *App) open(ctx context.Context, filePath string) (*split.Editor, error) {
	raw, err := a.registry.Open(ctx, editor.File{Path: filePath})
	if err != nil {
		return nil, err
	}
	ed, ok := raw.(*split.Editor)
	if !ok {
		raw.Dispose()
		return nil, editor.ErrNoProvider
	}

	if a.sessionPath != "" {
		entries, err := a.session.Load(a.sessionPath)
		if err != nil {
			a.log.Warn("session unreadable: %v", err)
		}
		for _, entry := range entries {
			if entry.File.Path == filePath && entry.State != nil {
				if err := ed.SetState(entry.State); err != nil {
					a.log.Warn("restore state: %v", err)
				}
				break
			}
		}
	}

	a.log.Info("opened %s as %s", filePath, ed.TypeID())
	return ed, nil
}

// eventLoop polls the backend until quit or context cancellation.
func (a *App) eventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev := a.backend.PollEvent()
		if err := a.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (a *App) handleEvent(ev view.Event) error {
	switch ev.Type {
	case view.EventResize:
		a.draw()
		return nil
	case view.EventKey:
		return a.handleKey(ev)
	default:
		return nil
	}
}

func (a *App) handleKey(ev view.Event) error {
	ed := a.currentEditor()
	if ed == nil {
		return nil
	}

	switch ev.Key {
	case view.KeyCtrlQ:
		return ErrQuit

	case view.KeyTab:
		ed.CycleLayout()

	case view.KeyUp, view.KeyDown, view.KeyLeft, view.KeyRight:
		a.moveCaret(ed, ev.Key)

	case view.KeyPageUp, view.KeyPageDown:
		a.scrollPreview(ed, ev.Key)

	case view.KeyCtrlR:
		a.refreshPreview(ed)

	default:
		return nil
	}

	a.draw()
	return nil
}

func (a *App) moveCaret(ed *split.Editor, key view.Key) {
	te, ok := ed.First().(*text.Editor)
	if !ok {
		return
	}
	line, col := te.Caret()
	switch key {
	case view.KeyUp:
		line--
	case view.KeyDown:
		line++
	case view.KeyLeft:
		col--
	case view.KeyRight:
		col++
	}
	te.SetCaret(line, col)
}

func (a *App) scrollPreview(ed *split.Editor, key view.Key) {
	pe, ok := ed.Second().(*preview.Editor)
	if !ok {
		return
	}
	_, height := a.backend.Size()
	page := height - 2
	if page < 1 {
		page = 1
	}
	if key == view.KeyPageUp {
		page = -page
	}
	pe.SetScrollLine(pe.ScrollLine() + page)
}

func (a *App) refreshPreview(ed *split.Editor) {
	pe, ok := ed.Second().(*preview.Editor)
	if !ok {
		return
	}
	if err := pe.Refresh(); err != nil {
		a.log.Error("refresh preview: %v", err)
	}
}

// onSourceChanged is called by the refresher when a tracked file changes
// on disk. The re-render is queued onto the UI goroutine.
func (a *App) onSourceChanged(path string) {
	err := a.exec.InvokeLater(func() error {
		ed := a.currentEditor()
		if ed == nil || ed.File().Path != path {
			return nil
		}
		a.refreshPreview(ed)
		a.draw()
		return nil
	})
	if err != nil {
		a.log.Debug("drop refresh for %s: %v", path, err)
	}
}

// onConfigReload applies a live configuration change. Only the settings
// that can change without rebuilding providers are applied.
func (a *App) onConfigReload(cfg *config.Config) {
	a.log.SetLevel(ParseLogLevel(cfg.Logging.Level))
	a.renderer.SetRatio(cfg.Split.Ratio)
	a.log.Info("configuration reloaded")
	a.draw()
}

func (a *App) currentEditor() *split.Editor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *App) draw() {
	ed := a.currentEditor()
	if ed == nil {
		return
	}
	a.renderer.Draw(ed)
}

// Close releases validators, the refresher, and the executor. Safe to
// call more than once.
func (a *App) Close() {
	for _, v := range a.validators {
		v.Close()
	}
	if a.refresher != nil {
		if err := a.refresher.Close(); err != nil {
			a.log.Debug("close refresher: %v", err)
		}
	}
	a.exec.Close()
}
