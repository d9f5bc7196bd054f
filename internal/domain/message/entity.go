package message

import (
	"time"

	"chatkit/internal/domain/user"
)

// Type discriminates how a message renders. Exactly one payload matching the
// active type may be populated; the variant constructors below enforce that.
type Type string

const (
	TypeText         Type = "TEXT"
	TypeSystem       Type = "SYSTEM"
	TypeVerification Type = "VERIFICATION"
	TypeCheckin      Type = "CHECKIN"
)

// AttachmentType discriminates finalized attachments.
type AttachmentType string

const (
	AttachmentImage AttachmentType = "IMAGE"
	AttachmentVideo AttachmentType = "VIDEO"
)

// Attachment is a finalized, resolvable media item on a message.
//
// Every attachment carries a thumbnail. A video attachment additionally
// carries a distinct full-resolution URL; one without it is never
// constructed (the materializer drops such media upstream). For images the
// full URL equals the thumbnail.
type Attachment struct {
	ID           string
	Type         AttachmentType
	ThumbnailURL string
	FullURL      string
}

// Recording is a finished voice recording attached to a message.
type Recording struct {
	Duration        float64
	WaveformSamples []float64
	URL             string
}

// Verification is the payload of a TypeVerification message: a request to
// confirm another member's habit completion.
type Verification struct {
	HabitName    string
	IsVerified   bool
	VerifierName string
	CompletionID string
}

// CheckinLine is one habit row on a daily check-in card.
type CheckinLine struct {
	HabitName string
	Completed bool
	Value     string
}

// Checkin is the payload of a TypeCheckin message.
type Checkin struct {
	Date      time.Time
	DayNumber int
	Lines     []CheckinLine
}

// Message is one rendered conversation entry.
//
// A message is created once, then mutated only along Status and Reactions by
// the transport and reaction collaborators; everything else is immutable
// after creation. Deletion never removes a message, it sets IsDeleted, which
// suppresses rendering of every payload field.
//
// ID is caller-assigned and must be unique within a conversation. Duplicate
// ids are a caller precondition violation and are not detected here.
type Message struct {
	ID        string
	User      user.User
	Status    *Status
	CreatedAt time.Time

	Text         string
	Attachments  []Attachment
	Reactions    []Reaction
	GiphyMediaID string
	Recording    *Recording
	ReplyMessage *ReplyMessage

	Type      Type
	IsDeleted bool

	// Extended payloads, populated only when matching Type.
	Verification *Verification
	Checkin      *Checkin
	SystemEvent  string
}

// Time renders the message timestamp the way the bubble footer shows it.
func (m Message) Time() string {
	return m.CreatedAt.Format("15:04")
}

// Equal reports whether two messages render identically. Status is compared
// by kind only (see Status.Equal); extended payload fields follow the same
// field set the render layer diffs on.
func (m Message) Equal(other Message) bool {
	if m.ID != other.ID ||
		m.User != other.User ||
		!m.CreatedAt.Equal(other.CreatedAt) ||
		m.Text != other.Text ||
		m.GiphyMediaID != other.GiphyMediaID ||
		m.Type != other.Type ||
		m.IsDeleted != other.IsDeleted {
		return false
	}
	if !statusPtrEqual(m.Status, other.Status) {
		return false
	}
	if !attachmentsEqual(m.Attachments, other.Attachments) {
		return false
	}
	if !reactionsEqual(m.Reactions, other.Reactions) {
		return false
	}
	if !recordingPtrEqual(m.Recording, other.Recording) {
		return false
	}
	if !replyPtrEqual(m.ReplyMessage, other.ReplyMessage) {
		return false
	}
	return verificationEqual(m.Verification, other.Verification)
}

func statusPtrEqual(a, b *Status) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func attachmentsEqual(a, b []Attachment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func reactionsEqual(a, b []Reaction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func recordingPtrEqual(a, b *Recording) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Duration != b.Duration || a.URL != b.URL || len(a.WaveformSamples) != len(b.WaveformSamples) {
		return false
	}
	for i := range a.WaveformSamples {
		if a.WaveformSamples[i] != b.WaveformSamples[i] {
			return false
		}
	}
	return true
}

// verificationEqual compares the verified/verifier projection the render
// layer diffs on. A nil payload normalizes to the zero payload: an absent
// verification and an all-default one are indistinguishable states.
func verificationEqual(a, b *Verification) bool {
	var av, bv Verification
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av.IsVerified == bv.IsVerified && av.VerifierName == bv.VerifierName
}
