package services

import (
	"context"

	"chatkit/internal/domain/message"
	"chatkit/internal/domain/user"
	"chatkit/internal/media"
	"chatkit/pkg/logger"

	"github.com/google/uuid"
)

// Materializer turns drafts into finalized messages by resolving their
// pending media into attachments.
type Materializer struct {
	log *logger.Logger
}

func NewMaterializer(log *logger.Logger) *Materializer {
	if log == nil {
		log = logger.Nop()
	}
	return &Materializer{log: log}
}

// Materialize resolves the draft's pending media and produces the message.
//
// Media that fails to resolve is dropped silently, never escalated: partial
// resolution is not a send failure. A send failure only exists once the
// transport layer wraps the draft back into an error status. Reactions start
// empty; they only ever attach after creation.
//
// id must be caller-assigned and unique within the conversation. status
// defaults to sending when nil; callers reconstructing history may pass any
// terminal status directly.
//
// Cancellation of ctx aborts without a partial message; the draft stays
// intact for retry.
func (m *Materializer) Materialize(ctx context.Context, id string, author user.User, status *message.Status, draft message.Draft) (message.Message, error) {
	attachments, err := m.resolveAttachments(ctx, draft.Medias)
	if err != nil {
		return message.Message{}, err
	}

	if status == nil {
		s := message.SendingStatus()
		status = &s
	}

	msg := message.Message{
		ID:           id,
		User:         author,
		Status:       status,
		CreatedAt:    draft.CreatedAt,
		Text:         draft.Text,
		Attachments:  attachments,
		Reactions:    []message.Reaction{},
		Recording:    draft.Recording,
		ReplyMessage: draft.ReplyTo,
		Type:         message.TypeText,
	}
	if draft.Giphy != nil {
		msg.GiphyMediaID = draft.Giphy.ID
	}
	return msg, nil
}

// resolveAttachments maps pending media to attachments, preserving input
// order. Filtering removes elements but never reorders.
func (m *Materializer) resolveAttachments(ctx context.Context, medias []media.Media) ([]message.Attachment, error) {
	attachments := make([]message.Attachment, 0, len(medias))
	for _, md := range medias {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		thumb, err := md.ThumbnailURL(ctx)
		if err != nil || thumb == "" {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			m.log.DebugfCtx(ctx, "dropping %s media without thumbnail: %v", md.Kind(), err)
			continue
		}

		switch md.Kind() {
		case media.KindImage:
			attachments = append(attachments, message.Attachment{
				ID:           uuid.New().String(),
				Type:         message.AttachmentImage,
				ThumbnailURL: thumb,
				FullURL:      thumb,
			})
		case media.KindVideo:
			// A video attachment is never emitted with only a thumbnail.
			full, err := md.URL(ctx)
			if err != nil || full == "" {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				m.log.DebugfCtx(ctx, "dropping video media without full resolution: %v", err)
				continue
			}
			attachments = append(attachments, message.Attachment{
				ID:           uuid.New().String(),
				Type:         message.AttachmentVideo,
				ThumbnailURL: thumb,
				FullURL:      full,
			})
		default:
			m.log.DebugfCtx(ctx, "dropping media of unknown kind %q", md.Kind())
		}
	}
	return attachments, nil
}
