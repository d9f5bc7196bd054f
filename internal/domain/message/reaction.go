package message

import (
	"time"

	"chatkit/internal/domain/user"
)

// Reaction is one user's emoji response to a message. A user may react with
// several distinct emoji; nothing here caps the count per user.
type Reaction struct {
	ID        string
	Emoji     string // empty when the client supplied none
	User      user.User
	CreatedAt time.Time
	Status    *Status
}

// Equal mirrors Message.Equal semantics: status compares by kind only.
func (r Reaction) Equal(other Reaction) bool {
	return r.ID == other.ID &&
		r.Emoji == other.Emoji &&
		r.User == other.User &&
		r.CreatedAt.Equal(other.CreatedAt) &&
		statusPtrEqual(r.Status, other.Status)
}
