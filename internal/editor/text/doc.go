// Package text provides the plain source editor used as the first pane of
// a split markup editor. It persists the caret position so reopening a
// file restores where the author left off.
package text
