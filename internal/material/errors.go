package material

import "errors"

var (
	// ErrNotPacked indicates a file without decoded pixel data was given to the splitter.
	ErrNotPacked = errors.New("material: no decoded image")

	// ErrNoChannels indicates an image with fewer than three independent channels.
	ErrNoChannels = errors.New("material: fewer than 3 channels")
)
