package receipt

import (
	"context"
	"encoding/json"
	"time"

	"chatkit/internal/domain/user"
	chatkit_errors "chatkit/pkg/errors"

	goredis "github.com/redis/go-redis/v9"
)

// Redis key prefixes for read receipts
const (
	readerOrderKeyPrefix = "receipt:order:" // Sorted set of reader ids by read time
	readerDataKeyPrefix  = "receipt:users:" // Hash of reader id -> identity JSON
)

type readerRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// RedisReaderStore is a ReaderProvider backed by Redis. The session layer
// records who has caught up to which message with MarkRead; the render layer
// reads the ordered list back with Readers.
type RedisReaderStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRedisReaderStore creates a reader store. ttl bounds how long receipt
// data outlives the conversation view; zero defaults to 24h.
func NewRedisReaderStore(client *goredis.Client, ttl time.Duration) *RedisReaderStore {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisReaderStore{client: client, ttl: ttl}
}

// MarkRead records that u has read up to the given message. Re-marking moves
// the user's position in the order to the new read time.
func (s *RedisReaderStore) MarkRead(ctx context.Context, messageID string, u user.User, at time.Time) error {
	if messageID == "" || u.ID == "" {
		return chatkit_errors.ErrInvalidInput
	}

	data, err := json.Marshal(readerRecord{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL})
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.ZAdd(ctx, readerOrderKeyPrefix+messageID, goredis.Z{
		Score:  float64(at.UnixMilli()),
		Member: u.ID,
	})
	pipe.HSet(ctx, readerDataKeyPrefix+messageID, u.ID, data)
	pipe.Expire(ctx, readerOrderKeyPrefix+messageID, s.ttl)
	pipe.Expire(ctx, readerDataKeyPrefix+messageID, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Readers returns the users caught up to the message, ordered by read time.
// IsCurrentUser is always false on the result; it is viewer-relative and the
// caller decorates it against the viewing session.
func (s *RedisReaderStore) Readers(ctx context.Context, messageID string) ([]user.User, error) {
	if messageID == "" {
		return nil, chatkit_errors.ErrInvalidInput
	}

	ids, err := s.client.ZRange(ctx, readerOrderKeyPrefix+messageID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	raw, err := s.client.HMGet(ctx, readerDataKeyPrefix+messageID, ids...).Result()
	if err != nil {
		return nil, err
	}

	readers := make([]user.User, 0, len(ids))
	for i, id := range ids {
		str, ok := raw[i].(string)
		if !ok {
			// Order entry without identity data; skip rather than render a
			// blank avatar.
			continue
		}
		var rec readerRecord
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			return nil, err
		}
		if rec.ID == "" {
			rec.ID = id
		}
		readers = append(readers, user.User{ID: rec.ID, Name: rec.Name, AvatarURL: rec.AvatarURL})
	}
	return readers, nil
}

// Clear drops receipt data for a message.
func (s *RedisReaderStore) Clear(ctx context.Context, messageID string) error {
	if messageID == "" {
		return chatkit_errors.ErrInvalidInput
	}
	return s.client.Del(ctx, readerOrderKeyPrefix+messageID, readerDataKeyPrefix+messageID).Err()
}
