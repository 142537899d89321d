package batch

import "errors"

var (
	// ErrRootMissing indicates the root directory does not exist or is not a directory.
	ErrRootMissing = errors.New("batch: root directory not found")

	// ErrFolderUnreadable indicates a material folder that could not be listed.
	ErrFolderUnreadable = errors.New("batch: folder unreadable")
)
