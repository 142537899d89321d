package material

import "fmt"

// NoticeKind classifies a recoverable condition.
type NoticeKind string

const (
	// NoticeDecodeFailed indicates a file that could not be decoded as an image.
	NoticeDecodeFailed NoticeKind = "decode_failed"
	// NoticeSplitFailed indicates a packed texture that could not be decomposed.
	NoticeSplitFailed NoticeKind = "split_failed"
	// NoticeUnmatched indicates a file no role fragment matched.
	NoticeUnmatched NoticeKind = "unmatched"
	// NoticeCollision indicates a file dropped because its role was already bound.
	NoticeCollision NoticeKind = "collision"
)

// Notice is a recoverable, per-file condition. Notices never change the output
// produced for unaffected files.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	File    string     `json:"file,omitempty"`
	Message string     `json:"message"`
}

// String implements fmt.Stringer.
func (n Notice) String() string {
	if n.File == "" {
		return fmt.Sprintf("%s: %s", n.Kind, n.Message)
	}
	return fmt.Sprintf("%s: %s: %s", n.Kind, n.File, n.Message)
}
