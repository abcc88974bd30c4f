// Package preview provides the rendered-markup editor used as the second
// pane of a split editor, plus a filesystem refresher that re-renders the
// preview when the source file changes on disk.
//
// Rendering is pluggable: the provider takes a RenderFunc so hosts can
// plug in a real markup converter. The built-in renderer is a plain-text
// fallback good enough for a readable preview.
package preview
