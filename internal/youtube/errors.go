package youtube

import "errors"

// ErrNoStreamMap is returned when a video-info page carries neither an
// encoded format map nor a parseable error reason.
var ErrNoStreamMap = errors.New("no stream map found on video info page")

// ErrNoFormats is returned when the format map decodes to an empty set.
var ErrNoFormats = errors.New("no format found")

// ResolutionError reports that the remote service refused to serve the
// video and supplied an explicit reason ("Video unavailable", region
// blocks, and the like).
type ResolutionError struct {
	// Reason is the HTML-stripped, unescaped message from the remote page.
	Reason string
}

func (e *ResolutionError) Error() string {
	return "cannot resolve video: " + e.Reason
}
