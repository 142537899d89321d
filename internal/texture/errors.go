package texture

import "errors"

var (
	// ErrUnknownFormat indicates a file extension no decoder or encoder handles.
	ErrUnknownFormat = errors.New("texture: unknown format")

	// ErrTruncated indicates a legacy container shorter than its header.
	ErrTruncated = errors.New("texture: container too short")
)
