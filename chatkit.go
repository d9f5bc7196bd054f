// Package chatkit is the model layer behind a chat message list: the message
// and reaction data model, draft-to-message materialization, and the
// display-ready reaction summary. Rendering, transport and persistence stay
// with the caller.
package chatkit

import (
	"context"
	"time"

	"chatkit/internal/config"
	"chatkit/internal/domain/message"
	"chatkit/internal/domain/user"
	"chatkit/internal/media"
	"chatkit/internal/receipt"
	"chatkit/internal/redis"
	"chatkit/internal/services"
	"chatkit/internal/storage"
	"chatkit/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

type (
	User         = user.User
	Message      = message.Message
	Status       = message.Status
	Draft        = message.Draft
	Reaction     = message.Reaction
	Attachment   = message.Attachment
	Recording    = message.Recording
	ReplyMessage = message.ReplyMessage
	GiphyMedia   = message.GiphyMedia

	Media   = media.Media
	S3Media = media.S3Media

	GroupedReaction   = services.GroupedReaction
	PreparedReactions = services.PreparedReactions

	ReaderProvider   = receipt.ReaderProvider
	RedisReaderStore = receipt.RedisReaderStore

	Config      = config.Config
	S3Config    = storage.S3Config
	S3Client    = storage.Client
	RedisConfig = redis.Config
)

// Materializer resolves a draft's pending media and produces the finalized
// message. See services.Materializer.
type Materializer = services.Materializer

func NewMaterializer(log *logger.Logger) *Materializer {
	return services.NewMaterializer(log)
}

// Materialize is a convenience wrapper over a throwaway Materializer with no
// logging.
func Materialize(ctx context.Context, id string, author User, status *Status, draft Draft) (Message, error) {
	return services.NewMaterializer(nil).Materialize(ctx, id, author, status, draft)
}

// PrepareReactions aggregates a message's reactions into the bounded,
// recency-ordered summary the reaction row renders.
func PrepareReactions(msg Message, maxVisible int) PreparedReactions {
	return services.PrepareReactions(msg, maxVisible)
}

// LoadConfig reads collaborator settings for the bundled S3 and Redis
// backends from the environment.
func LoadConfig() (*Config, error) {
	return config.LoadConfig()
}

// NewS3Client builds the media storage client backing S3Media resolution.
func NewS3Client(ctx context.Context, cfg S3Config) (*S3Client, error) {
	return storage.NewClient(ctx, cfg)
}

// NewS3Image and NewS3Video wrap uploaded objects as pending media for a
// draft.
func NewS3Image(store *S3Client, thumbKey string) S3Media {
	return media.NewS3Image(store, thumbKey)
}

func NewS3Video(store *S3Client, thumbKey, fullKey string) S3Media {
	return media.NewS3Video(store, thumbKey, fullKey)
}

// NewRedisClient connects the receipt store's Redis backend.
func NewRedisClient(cfg RedisConfig) *goredis.Client {
	return redis.NewClient(cfg)
}

// NewRedisReaderStore builds the bundled Redis-backed ReaderProvider.
func NewRedisReaderStore(client *goredis.Client, ttl time.Duration) *RedisReaderStore {
	return receipt.NewRedisReaderStore(client, ttl)
}
