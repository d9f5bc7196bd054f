package message

import (
	"time"

	"chatkit/internal/domain/user"
	chatkit_errors "chatkit/pkg/errors"
)

// Variant constructors. Building messages through these guarantees only the
// payload matching the active type is populated; struct literals bypass that
// guard and make well-formedness the caller's problem.

func NewTextMessage(id string, author user.User, createdAt time.Time, text string) (Message, error) {
	if id == "" {
		return Message{}, chatkit_errors.ErrInvalidInput
	}
	return Message{
		ID:        id,
		User:      author,
		CreatedAt: createdAt,
		Text:      text,
		Type:      TypeText,
	}, nil
}

func NewSystemMessage(id string, author user.User, createdAt time.Time, text, event string) (Message, error) {
	if id == "" || text == "" {
		return Message{}, chatkit_errors.ErrInvalidInput
	}
	return Message{
		ID:          id,
		User:        author,
		CreatedAt:   createdAt,
		Text:        text,
		Type:        TypeSystem,
		SystemEvent: event,
	}, nil
}

func NewVerificationMessage(id string, author user.User, createdAt time.Time, payload Verification, photo *Attachment) (Message, error) {
	if id == "" || payload.HabitName == "" {
		return Message{}, chatkit_errors.ErrInvalidInput
	}
	msg := Message{
		ID:           id,
		User:         author,
		CreatedAt:    createdAt,
		Type:         TypeVerification,
		Verification: &payload,
	}
	if photo != nil {
		msg.Attachments = []Attachment{*photo}
	}
	return msg, nil
}

func NewCheckinMessage(id string, author user.User, createdAt time.Time, payload Checkin) (Message, error) {
	if id == "" || len(payload.Lines) == 0 {
		return Message{}, chatkit_errors.ErrInvalidInput
	}
	return Message{
		ID:        id,
		User:      author,
		CreatedAt: createdAt,
		Type:      TypeCheckin,
		Checkin:   &payload,
	}, nil
}
