// Package app wires the markview pieces together: configuration, the
// editor registry, the UI executor, the preview refresher, rename
// validators, and the terminal event loop.
package app
