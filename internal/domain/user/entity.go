package user

import "strings"

// User identifies a chat participant.
//
// IsCurrentUser is derived relative to the viewing session, not a stored
// property of the identity. Ownership checks and current-user highlighting
// throughout the library read this flag.
type User struct {
	ID            string
	Name          string
	AvatarURL     string
	IsCurrentUser bool
}

// Initial returns the single-character avatar fallback shown when the user
// has no avatar image.
func (u User) Initial() string {
	for _, r := range u.Name {
		return strings.ToUpper(string(r))
	}
	return ""
}
