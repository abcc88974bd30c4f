package preview

import "errors"

// Preview errors.
var (
	// ErrRefresherClosed indicates an operation on a closed refresher.
	ErrRefresherClosed = errors.New("preview: refresher is closed")

	// ErrNotTracking indicates an unwatch of a path never watched.
	ErrNotTracking = errors.New("preview: path is not tracked")
)
