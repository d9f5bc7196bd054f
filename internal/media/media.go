package media

import "context"

// Kind discriminates pending media picked by the input UI.
type Kind string

const (
	KindImage Kind = "IMAGE"
	KindVideo Kind = "VIDEO"
)

// Media is a pending attachment reference whose URLs resolve asynchronously.
// Resolution may fail; calls are assumed idempotent so the caller may retry.
// The library never retries internally.
type Media interface {
	Kind() Kind

	// ThumbnailURL resolves the display thumbnail. Returning an error or an
	// empty URL means the media is unresolvable and will be dropped.
	ThumbnailURL(ctx context.Context) (string, error)

	// URL resolves the full-resolution resource. Required for video; images
	// render from their thumbnail alone.
	URL(ctx context.Context) (string, error)
}
