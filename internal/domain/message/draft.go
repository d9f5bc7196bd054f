package message

import (
	"time"

	"chatkit/internal/media"
)

// GiphyMedia references an externally hosted GIF by provider id.
type GiphyMedia struct {
	ID string
}

// Draft is ephemeral, user-authored content not yet committed to a
// conversation. It is consumed exactly once by materialization, or retained
// inside an error status for resubmission.
//
// A well-formed draft has text, or at least one media, recording or giphy
// reference. That invariant is owned by the input UI; the library does not
// validate it.
type Draft struct {
	Text      string
	Medias    []media.Media
	Recording *Recording
	ReplyTo   *ReplyMessage
	Giphy     *GiphyMedia
	CreatedAt time.Time
}
