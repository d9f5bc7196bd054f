package media

import (
	"context"

	"chatkit/internal/storage"
	chatkit_errors "chatkit/pkg/errors"
)

// S3Media is a pending attachment backed by objects already uploaded to S3.
// URLs resolve to presigned GETs at materialization time, so a media item is
// only as resolvable as its object keys.
type S3Media struct {
	kind     Kind
	thumbKey string
	fullKey  string
	store    *storage.Client
}

func NewS3Image(store *storage.Client, thumbKey string) S3Media {
	return S3Media{kind: KindImage, thumbKey: thumbKey, store: store}
}

func NewS3Video(store *storage.Client, thumbKey, fullKey string) S3Media {
	return S3Media{kind: KindVideo, thumbKey: thumbKey, fullKey: fullKey, store: store}
}

func (m S3Media) Kind() Kind { return m.kind }

func (m S3Media) ThumbnailURL(ctx context.Context) (string, error) {
	if m.thumbKey == "" {
		return "", chatkit_errors.ErrUnresolvedMedia
	}
	return m.store.PresignGet(ctx, m.thumbKey)
}

func (m S3Media) URL(ctx context.Context) (string, error) {
	if m.fullKey == "" {
		return "", chatkit_errors.ErrUnresolvedMedia
	}
	return m.store.PresignGet(ctx, m.fullKey)
}
