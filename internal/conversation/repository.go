package conversation

import (
	"context"
	"fmt"
	"time"

	"dealerbot/pkg"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// Repository persists conversation history outside the in-process
// store. The assistant works fine without one; persistence is
// best-effort.
type Repository interface {
	Append(ctx context.Context, sessionID string, turn pkg.ConversationTurn) error
	Load(ctx context.Context, sessionID string) ([]pkg.ConversationTurn, error)
}

// MemoryRepository keeps history in a map. Useful for tests and for
// running the demo without Redis.
type MemoryRepository struct {
	turns map[string][]pkg.ConversationTurn
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{turns: make(map[string][]pkg.ConversationTurn)}
}

func (m *MemoryRepository) Append(_ context.Context, sessionID string, turn pkg.ConversationTurn) error {
	m.turns[sessionID] = append(m.turns[sessionID], turn)
	return nil
}

func (m *MemoryRepository) Load(_ context.Context, sessionID string) ([]pkg.ConversationTurn, error) {
	return m.turns[sessionID], nil
}

// RedisRepository stores each session's history as a JSON blob under
// "conversation:<session-id>", refreshing the TTL on every read.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(ctx context.Context, redisURL string, ttl time.Duration) (*RedisRepository, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL is required")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisRepository) Append(ctx context.Context, sessionID string, turn pkg.ConversationTurn) error {
	turns, err := r.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	turns = append(turns, turn)
	data, err := sonic.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return r.client.Set(ctx, historyKey(sessionID), data, r.ttl).Err()
}

func (r *RedisRepository) Load(ctx context.Context, sessionID string) ([]pkg.ConversationTurn, error) {
	data, err := r.client.Get(ctx, historyKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []pkg.ConversationTurn{}, nil
		}
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var turns []pkg.ConversationTurn
	if err := sonic.Unmarshal([]byte(data), &turns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}

	// Refresh TTL
	r.client.Expire(ctx, historyKey(sessionID), r.ttl)
	return turns, nil
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func historyKey(sessionID string) string {
	return "conversation:" + sessionID
}
