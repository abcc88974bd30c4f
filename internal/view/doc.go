// Package view renders split editors to a terminal.
//
// Backend abstracts the display surface: Terminal draws through tcell,
// Null draws into memory for tests. Layout geometry lives in SplitRects,
// which turns a pane arrangement into screen rectangles.
package view
