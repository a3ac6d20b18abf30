package invoice

import (
	"context"
	"time"

	"github.com/orgalaser/invoicing/internal/domain/invoice"
)

// CountFunc counts the stored documents of the type and day being numbered
type CountFunc func(ctx context.Context) (int64, error)

// SequenceAllocator hands out the NN part of a Document_ID for a type and calendar day.
// day is the start of the day in the numbering timezone.
type SequenceAllocator interface {
	Next(ctx context.Context, t invoice.DocumentType, day time.Time, count CountFunc) (int, error)
}

// DatabaseSequence numbers documents as the stored count plus one.
// Concurrent creators may collide; the unique index and the create retry resolve it.
type DatabaseSequence struct{}

// Next returns count + 1
func (DatabaseSequence) Next(ctx context.Context, _ invoice.DocumentType, _ time.Time, count CountFunc) (int, error) {
	n, err := count(ctx)
	if err != nil {
		return 0, err
	}
	return int(n) + 1, nil
}

var _ SequenceAllocator = DatabaseSequence{}
