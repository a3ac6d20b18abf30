package storage

import (
	"context"
	"errors"

	appprinting "github.com/orgalaser/invoicing/internal/application/printing"
	"go.uber.org/zap"
)

// NoopObjectStorage discards uploads. It is used when archiving is disabled.
type NoopObjectStorage struct {
	logger *zap.Logger
}

// NewNoopObjectStorage creates a NoopObjectStorage
func NewNoopObjectStorage(logger *zap.Logger) *NoopObjectStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoopObjectStorage{logger: logger}
}

// Ensure NoopObjectStorage implements DocumentArchive
var _ appprinting.DocumentArchive = (*NoopObjectStorage)(nil)

// Upload validates the key and drops the data
func (s *NoopObjectStorage) Upload(_ context.Context, storageKey string, data []byte, _ string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.logger.Debug("Archive disabled, object dropped",
		zap.String("key", storageKey),
		zap.Int("bytes", len(data)))
	return nil
}
