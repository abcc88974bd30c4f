package split

import "errors"

// Split editor errors.
var (
	// ErrNilProvider indicates a split provider was constructed without
	// both sub-providers.
	ErrNilProvider = errors.New("split: both sub-providers are required")

	// ErrDisposed indicates an operation on a disposed split editor.
	ErrDisposed = errors.New("split: editor is disposed")
)
