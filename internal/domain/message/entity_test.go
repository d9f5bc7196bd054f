package message

import (
	"testing"
	"time"

	"chatkit/internal/domain/user"
	chatkit_errors "chatkit/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageEqual_StatusComparesByKindOnly(t *testing.T) {
	author := user.User{ID: "u1", Name: "Ava"}
	errA := ErrorStatus(Draft{Text: "attempt one"})
	errB := ErrorStatus(Draft{Text: "attempt two"})

	a := Message{ID: "m1", User: author, Status: &errA, CreatedAt: time.Unix(1, 0), Text: "hi", Type: TypeText}
	b := Message{ID: "m1", User: author, Status: &errB, CreatedAt: time.Unix(1, 0), Text: "hi", Type: TypeText}

	assert.True(t, a.Equal(b), "differing retained drafts must not break message equality")

	sent := SentStatus()
	b.Status = &sent
	assert.False(t, a.Equal(b))

	b.Status = nil
	assert.False(t, a.Equal(b))
}

func TestMessageEqual_ReactionListChanges(t *testing.T) {
	author := user.User{ID: "u1"}
	base := Message{ID: "m1", User: author, CreatedAt: time.Unix(1, 0), Type: TypeText}

	withReaction := base
	withReaction.Reactions = []Reaction{{ID: "r1", Emoji: "👍", User: author, CreatedAt: time.Unix(2, 0)}}

	assert.False(t, base.Equal(withReaction))
	assert.True(t, base.Equal(base))
}

func TestMessageEqual_NilVerificationMatchesZeroPayload(t *testing.T) {
	author := user.User{ID: "u1"}
	a := Message{ID: "m1", User: author, CreatedAt: time.Unix(1, 0), Type: TypeVerification}
	b := a
	b.Verification = &Verification{}

	assert.True(t, a.Equal(b), "absent payload and all-default payload are the same state")
	assert.True(t, b.Equal(a))

	b.Verification = &Verification{IsVerified: true}
	assert.False(t, a.Equal(b))

	b.Verification = &Verification{VerifierName: "Ben"}
	assert.False(t, a.Equal(b))
}

func TestVariantConstructors(t *testing.T) {
	author := user.User{ID: "u1", Name: "Ava"}
	at := time.Unix(100, 0)

	t.Run("text", func(t *testing.T) {
		msg, err := NewTextMessage("m1", author, at, "hello")
		require.NoError(t, err)
		assert.Equal(t, TypeText, msg.Type)
		assert.Nil(t, msg.Verification)
		assert.Nil(t, msg.Checkin)
	})

	t.Run("system", func(t *testing.T) {
		msg, err := NewSystemMessage("m2", author, at, "Ava joined the group", "member_joined")
		require.NoError(t, err)
		assert.Equal(t, TypeSystem, msg.Type)
		assert.Equal(t, "member_joined", msg.SystemEvent)
	})

	t.Run("verification carries photo as attachment", func(t *testing.T) {
		photo := Attachment{ID: "a1", Type: AttachmentImage, ThumbnailURL: "t", FullURL: "t"}
		msg, err := NewVerificationMessage("m3", author, at, Verification{HabitName: "run"}, &photo)
		require.NoError(t, err)
		assert.Equal(t, TypeVerification, msg.Type)
		require.NotNil(t, msg.Verification)
		assert.Equal(t, "run", msg.Verification.HabitName)
		require.Len(t, msg.Attachments, 1)
		assert.Nil(t, msg.Checkin, "verification message must not carry check-in payload")
	})

	t.Run("checkin", func(t *testing.T) {
		payload := Checkin{
			Date:      at,
			DayNumber: 12,
			Lines: []CheckinLine{
				{HabitName: "meditate", Completed: true},
				{HabitName: "read", Completed: false, Value: "10 pages"},
			},
		}
		msg, err := NewCheckinMessage("m4", author, at, payload)
		require.NoError(t, err)
		assert.Equal(t, TypeCheckin, msg.Type)
		require.NotNil(t, msg.Checkin)
		assert.Len(t, msg.Checkin.Lines, 2)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewTextMessage("", author, at, "hi")
		assert.ErrorIs(t, err, chatkit_errors.ErrInvalidInput)

		_, err = NewSystemMessage("m5", author, at, "", "event")
		assert.ErrorIs(t, err, chatkit_errors.ErrInvalidInput)

		_, err = NewVerificationMessage("m6", author, at, Verification{}, nil)
		assert.ErrorIs(t, err, chatkit_errors.ErrInvalidInput)

		_, err = NewCheckinMessage("m7", author, at, Checkin{DayNumber: 1})
		assert.ErrorIs(t, err, chatkit_errors.ErrInvalidInput)
	})
}

func TestDisplayText_DeletedSuppressesPayload(t *testing.T) {
	msg := Message{ID: "m1", Text: "secret", Type: TypeText}
	assert.Equal(t, "secret", msg.DisplayText())

	msg.IsDeleted = true
	assert.Equal(t, DeletedPlaceholder, msg.DisplayText())
}

func TestCheckinHeader(t *testing.T) {
	msg := Message{Checkin: &Checkin{DayNumber: 7}}
	assert.Equal(t, "Day 7 - Check In", msg.CheckinHeader())

	msg.Checkin.DayNumber = 0
	assert.Equal(t, "Check In", msg.CheckinHeader())

	assert.Equal(t, "Check In", Message{}.CheckinHeader())
}

func TestMessageTime(t *testing.T) {
	msg := Message{CreatedAt: time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)}
	assert.Equal(t, "09:05", msg.Time())
}
