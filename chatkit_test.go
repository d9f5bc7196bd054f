package chatkit

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatkit/internal/domain/message"
	"chatkit/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedMedia struct {
	kind  media.Kind
	thumb string
	full  string
}

func (m fixedMedia) Kind() media.Kind { return m.kind }

func (m fixedMedia) ThumbnailURL(ctx context.Context) (string, error) {
	if m.thumb == "" {
		return "", errors.New("unavailable")
	}
	return m.thumb, nil
}

func (m fixedMedia) URL(ctx context.Context) (string, error) {
	if m.full == "" {
		return "", errors.New("unavailable")
	}
	return m.full, nil
}

func TestSendFlow_MaterializeFailRetry(t *testing.T) {
	author := User{ID: "u1", Name: "Ava", IsCurrentUser: true}
	draft := Draft{
		Text:      "morning run done",
		CreatedAt: time.Unix(1000, 0),
		Medias: []Media{
			fixedMedia{kind: media.KindImage, thumb: "https://cdn/run.jpg"},
			fixedMedia{kind: media.KindVideo, thumb: "https://cdn/clip-thumb.jpg"}, // full fails, dropped
		},
	}

	msg, err := Materialize(context.Background(), "m1", author, nil, draft)
	require.NoError(t, err)
	require.Len(t, msg.Attachments, 1)
	require.NotNil(t, msg.Status)
	assert.Equal(t, message.StatusSending, msg.Status.Kind())

	// Transport reports a send failure; the draft rides along for retry.
	failed := message.ErrorStatus(draft)
	msg.Status = &failed

	retryDraft, ok := msg.Status.Draft()
	require.True(t, ok)
	assert.Equal(t, draft.Text, retryDraft.Text)

	resent, err := Materialize(context.Background(), "m1-retry", author, nil, retryDraft)
	require.NoError(t, err)
	assert.Equal(t, msg.Text, resent.Text)
	assert.Len(t, resent.Attachments, 1)
}

func TestBundledCollaborators_ConstructibleFromFacade(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	store, err := NewS3Client(context.Background(), S3Config{Region: "us-east-1", Bucket: "media"})
	require.NoError(t, err)

	img := NewS3Image(store, "uploads/a-thumb.jpg")
	vid := NewS3Video(store, "uploads/b-thumb.jpg", "uploads/b.mp4")
	assert.Equal(t, media.KindImage, img.Kind())
	assert.Equal(t, media.KindVideo, vid.Kind())
	var _ Media = img
	var _ Media = vid

	client := NewRedisClient(RedisConfig{Addr: cfg.Redis.Addr})
	require.NotNil(t, client)
	defer client.Close()

	var provider ReaderProvider = NewRedisReaderStore(client, time.Minute)
	assert.NotNil(t, provider)
}

func TestReactionSummary_PublicSurface(t *testing.T) {
	them := User{ID: "u2", Name: "Ben"}
	msg := Message{
		ID:   "m1",
		User: them,
		Reactions: []Reaction{
			{ID: "r1", Emoji: "🎉", User: them, CreatedAt: time.Unix(10, 0)},
			{ID: "r2", Emoji: "💪", User: them, CreatedAt: time.Unix(20, 0)},
		},
	}

	got := PrepareReactions(msg, 5)
	require.Len(t, got.Groups, 2)
	assert.Equal(t, "💪", got.Groups[0].Emoji)
	assert.False(t, got.NeedsOverflowBubble)
}
