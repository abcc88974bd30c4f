// Package split composes two editor providers into a dual-pane editor,
// typically markup source beside its rendered preview.
//
// The Provider delegates everything to its two sub-providers: it accepts a
// file only when both accept it, builds both sub-editors, and merges their
// persisted states under its own state element. The final composition step
// constructs UI objects and is therefore marshalled onto the UI goroutine;
// callers already on that goroutine compose inline.
//
// # Persisted state
//
// A split editor's state element holds an optional "first_editor" child,
// an optional "second_editor" child, and an optional "split_layout"
// attribute. Sub-states are serialized by their owning provider into their
// own child; a nil sub-state produces no child, and a missing child reads
// back as nil.
package split
