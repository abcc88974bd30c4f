package split

import (
	"context"
	"fmt"

	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/ui"
)

// Provider composes two editor providers into a dual-pane provider.
//
// Acceptance, state reading, and state writing are delegated to the
// sub-providers. Editor construction composes the two sub-editors on the
// UI goroutine via the executor.
type Provider struct {
	first  editor.Provider
	second editor.Provider
	exec   *ui.Executor

	defaultLayout Layout
}

// Option configures a split Provider.
type Option func(*Provider)

// WithDefaultLayout sets the layout of freshly built editors.
// The default is LayoutVertical.
func WithDefaultLayout(l Layout) Option {
	return func(p *Provider) {
		if l.Valid() {
			p.defaultLayout = l
		}
	}
}

// NewProvider creates a split provider over first and second. The executor
// carries editor construction onto the UI goroutine; both sub-providers
// are required.
func NewProvider(first, second editor.Provider, exec *ui.Executor, opts ...Option) (*Provider, error) {
	if first == nil || second == nil {
		return nil, ErrNilProvider
	}

	p := &Provider{
		first:         first,
		second:        second,
		exec:          exec,
		defaultLayout: LayoutVertical,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// First returns the provider of the first pane.
func (p *Provider) First() editor.Provider {
	return p.first
}

// Second returns the provider of the second pane.
func (p *Provider) Second() editor.Provider {
	return p.second
}

// TypeID combines the two sub-provider type IDs into a stable composite
// identifier.
func (p *Provider) TypeID() string {
	return fmt.Sprintf("split-provider[%s;%s]", p.first.TypeID(), p.second.TypeID())
}

// Accept reports whether both sub-providers accept the file.
func (p *Provider) Accept(ctx context.Context, file editor.File) bool {
	return p.first.Accept(ctx, file) && p.second.Accept(ctx, file)
}

// Policy replaces the host default editor.
func (p *Provider) Policy() editor.Policy {
	return editor.PolicyHideDefault
}

// CreateEditor constructs the composed editor, blocking until the build
// has run on the UI goroutine.
func (p *Provider) CreateEditor(ctx context.Context, file editor.File) (editor.Editor, error) {
	b, err := p.CreateEditorAsync(ctx, file)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// CreateEditorAsync prepares builders for both sub-editors and returns a
// builder whose Build composes them on the UI goroutine. Preparation runs
// on the calling goroutine; only the final build step is marshalled.
func (p *Provider) CreateEditorAsync(ctx context.Context, file editor.File) (editor.Builder, error) {
	firstBuilder, err := editor.BuilderFor(ctx, p.first, file)
	if err != nil {
		return nil, err
	}
	secondBuilder, err := editor.BuilderFor(ctx, p.second, file)
	if err != nil {
		return nil, err
	}

	typeID := p.TypeID()
	return editor.BuilderFunc(func() (editor.Editor, error) {
		var built *Editor
		build := func() error {
			first, err := firstBuilder.Build()
			if err != nil {
				return err
			}
			second, err := secondBuilder.Build()
			if err != nil {
				first.Dispose()
				return err
			}
			built = newEditor(typeID, file, first, second, p.defaultLayout)
			return nil
		}

		if p.exec == nil || p.exec.OnUIGoroutine() {
			if err := build(); err != nil {
				return nil, err
			}
			return built, nil
		}
		if err := p.exec.InvokeAndWait(ctx, build); err != nil {
			return nil, err
		}
		return built, nil
	}), nil
}
