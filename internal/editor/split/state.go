package split

import (
	"github.com/dshills/markview/internal/editor"
	"github.com/dshills/markview/internal/editor/state"
)

// Persisted state element and attribute names.
const (
	// FirstEditorElement names the child element holding the first
	// sub-editor's state.
	FirstEditorElement = "first_editor"

	// SecondEditorElement names the child element holding the second
	// sub-editor's state.
	SecondEditorElement = "second_editor"

	// SplitLayoutAttr names the attribute recording the pane arrangement.
	SplitLayoutAttr = "split_layout"
)

// EditorState is the persisted state of a split editor: the two sub-editor
// states plus the pane arrangement. Either sub-state may be nil when the
// corresponding sub-editor had nothing to persist; an empty Layout means no
// arrangement was recorded.
type EditorState struct {
	Layout Layout
	First  editor.State
	Second editor.State
}

// Equals reports whether other is an equivalent split state: same layout
// and pairwise-equal sub-states, with nil only matching nil.
func (s *EditorState) Equals(other editor.State) bool {
	o, ok := other.(*EditorState)
	if !ok {
		return false
	}
	if s == nil || o == nil {
		return s == nil && o == nil
	}
	if s.Layout != o.Layout {
		return false
	}
	return subStateEqual(s.First, o.First) && subStateEqual(s.Second, o.Second)
}

func subStateEqual(a, b editor.State) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// ReadState deserializes a split state from elem. A missing child reads
// back as a nil sub-state; a missing layout attribute reads back as an
// empty Layout.
func (p *Provider) ReadState(elem *state.Element, file editor.File) (editor.State, error) {
	st := &EditorState{
		Layout: Layout(elem.AttrOr(SplitLayoutAttr, "")),
	}

	if child := elem.Child(FirstEditorElement); child != nil {
		sub, err := p.first.ReadState(child, file)
		if err != nil {
			return nil, err
		}
		st.First = sub
	}
	if child := elem.Child(SecondEditorElement); child != nil {
		sub, err := p.second.ReadState(child, file)
		if err != nil {
			return nil, err
		}
		st.Second = sub
	}

	return st, nil
}

// WriteState serializes a split state into elem. Nil sub-states produce no
// child element, and an empty layout produces no attribute, so a round trip
// preserves absence exactly.
func (p *Provider) WriteState(st editor.State, file editor.File, elem *state.Element) error {
	s, ok := st.(*EditorState)
	if !ok {
		// Foreign states are ignored rather than rejected: the host may
		// offer every provider the same element.
		return nil
	}

	if s.First != nil {
		child := state.NewElement(FirstEditorElement)
		if err := p.first.WriteState(s.First, file, child); err != nil {
			return err
		}
		elem.AddChild(child)
	}
	if s.Second != nil {
		child := state.NewElement(SecondEditorElement)
		if err := p.second.WriteState(s.Second, file, child); err != nil {
			return err
		}
		elem.AddChild(child)
	}
	if s.Layout != "" {
		elem.SetAttr(SplitLayoutAttr, string(s.Layout))
	}

	return nil
}
