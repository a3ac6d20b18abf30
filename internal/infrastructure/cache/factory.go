package cache

import (
	"fmt"

	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	"github.com/orgalaser/invoicing/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	SequenceDatabase = "database"
	SequenceRedis    = "redis"
)

// SequenceFactory picks the Document_ID sequence allocator from configuration
type SequenceFactory struct {
	mode          string
	redisConfig   config.RedisConfig
	logger        *zap.Logger
	allowFallback bool
	connect       func(config.RedisConfig) (*RedisSequence, error)
}

// SequenceFactoryOption is a functional option for configuring the factory
type SequenceFactoryOption func(*SequenceFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SequenceFactoryOption {
	return func(f *SequenceFactory) {
		f.logger = logger
	}
}

// WithDatabaseFallback controls whether an unreachable redis falls back to
// database counting. Default is true.
func WithDatabaseFallback(allow bool) SequenceFactoryOption {
	return func(f *SequenceFactory) {
		f.allowFallback = allow
	}
}

// NewSequenceFactory creates a new factory
func NewSequenceFactory(mode string, redisCfg config.RedisConfig, opts ...SequenceFactoryOption) *SequenceFactory {
	f := &SequenceFactory{
		mode:          mode,
		redisConfig:   redisCfg,
		logger:        zap.NewNop(),
		allowFallback: true,
		connect:       NewRedisSequence,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the configured allocator. The closer releases its connection
// and is never nil.
func (f *SequenceFactory) Create() (appinvoice.SequenceAllocator, func() error, error) {
	noop := func() error { return nil }

	switch f.mode {
	case "", SequenceDatabase:
		return appinvoice.DatabaseSequence{}, noop, nil
	case SequenceRedis:
	default:
		return nil, noop, fmt.Errorf("unknown invoice sequence %q", f.mode)
	}

	seq, err := f.connect(f.redisConfig)
	if err == nil {
		f.logger.Info("Using redis Document ID sequence", zap.String("addr", f.redisConfig.Addr()))
		return seq, seq.Close, nil
	}
	if !f.allowFallback {
		return nil, noop, fmt.Errorf("redis required for the Document ID sequence but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, numbering Document IDs from the database count",
		zap.Error(err))
	return appinvoice.DatabaseSequence{}, noop, nil
}
