package receipt

import (
	"context"

	"chatkit/internal/domain/user"
)

// ReaderProvider supplies, per rendered message, the ordered list of users
// considered caught up to that message. Which users those are is computed
// upstream; this library only renders the list it is handed.
type ReaderProvider interface {
	Readers(ctx context.Context, messageID string) ([]user.User, error)
}
