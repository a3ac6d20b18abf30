package cache

import (
	"context"
	"fmt"
	"time"

	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSequencePrefix = "invoicing:docseq:"
	// a day counter is only read during its own day
	defaultSequenceTTL = 48 * time.Hour
)

// RedisSequence allocates Document_ID sequence numbers with INCR on a
// per-type, per-day counter. A missing counter is seeded from the stored
// document count so numbering continues after a redis restart.
type RedisSequence struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSequence connects to redis and verifies the connection
func NewRedisSequence(cfg config.RedisConfig) (*RedisSequence, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisSequenceWithClient(client, ""), nil
}

// NewRedisSequenceWithClient creates a sequence on an existing client
func NewRedisSequenceWithClient(client redis.UniversalClient, keyPrefix string) *RedisSequence {
	if keyPrefix == "" {
		keyPrefix = defaultSequencePrefix
	}
	return &RedisSequence{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       defaultSequenceTTL,
	}
}

// Key returns the counter key of a document type and day
func (s *RedisSequence) Key(t invoice.DocumentType, day time.Time) string {
	return s.keyPrefix + string(t) + ":" + day.Format("2006-01-02")
}

// Next increments the day counter, seeding it with count on first use.
func (s *RedisSequence) Next(ctx context.Context, t invoice.DocumentType, day time.Time, count appinvoice.CountFunc) (int, error) {
	key := s.Key(t, day)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence %s: %w", key, err)
	}
	if exists == 0 {
		n, err := count(ctx)
		if err != nil {
			return 0, err
		}
		// SETNX keeps the first seed when several creators race here
		if err := s.client.SetNX(ctx, key, n, s.ttl).Err(); err != nil {
			return 0, fmt.Errorf("failed to seed sequence %s: %w", key, err)
		}
	}

	next, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence %s: %w", key, err)
	}
	return int(next), nil
}

// Ping checks the redis connection for health reporting
func (s *RedisSequence) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client
func (s *RedisSequence) Close() error {
	return s.client.Close()
}

var _ appinvoice.SequenceAllocator = (*RedisSequence)(nil)
