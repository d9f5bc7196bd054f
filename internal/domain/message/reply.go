package message

import (
	"time"

	"chatkit/internal/domain/user"
)

// ReplyMessage is a frozen snapshot of the message being replied to, taken at
// reply time. It is an owned copy, never a reference back to the live
// message, so later edits or deletion of the original do not rewrite the
// quote.
type ReplyMessage struct {
	ID        string
	User      user.User
	CreatedAt time.Time

	Text        string
	Attachments []Attachment
	Recording   *Recording
}

func (r ReplyMessage) Equal(other ReplyMessage) bool {
	return r.ID == other.ID &&
		r.User == other.User &&
		r.CreatedAt.Equal(other.CreatedAt) &&
		r.Text == other.Text &&
		attachmentsEqual(r.Attachments, other.Attachments) &&
		recordingPtrEqual(r.Recording, other.Recording)
}

// ToMessage reconstitutes a plain text message from the snapshot. The
// round-trip through ToReply is lossy on purpose: status, reactions and the
// extended payloads come back defaulted, never restored.
func (r ReplyMessage) ToMessage() Message {
	return Message{
		ID:          r.ID,
		User:        r.User,
		CreatedAt:   r.CreatedAt,
		Text:        r.Text,
		Attachments: cloneAttachments(r.Attachments),
		Recording:   r.Recording.clone(),
		Type:        TypeText,
	}
}

// ToReply snapshots the identity and content fields of a message. Status,
// reactions and extended payloads are dropped. Slices are copied so the
// snapshot stays immutable when the original message is patched.
func (m Message) ToReply() ReplyMessage {
	return ReplyMessage{
		ID:          m.ID,
		User:        m.User,
		CreatedAt:   m.CreatedAt,
		Text:        m.Text,
		Attachments: cloneAttachments(m.Attachments),
		Recording:   m.Recording.clone(),
	}
}

func cloneAttachments(attachments []Attachment) []Attachment {
	if attachments == nil {
		return nil
	}
	out := make([]Attachment, len(attachments))
	copy(out, attachments)
	return out
}

func (r *Recording) clone() *Recording {
	if r == nil {
		return nil
	}
	out := *r
	if r.WaveformSamples != nil {
		out.WaveformSamples = make([]float64, len(r.WaveformSamples))
		copy(out.WaveformSamples, r.WaveformSamples)
	}
	return &out
}

func replyPtrEqual(a, b *ReplyMessage) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
