package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 5, 27, 0, 0, 0, 0, time.FixedZone("+0530", 19800))

func countOf(n int64, calls *int) func(context.Context) (int64, error) {
	return func(context.Context) (int64, error) {
		*calls++
		return n, nil
	}
}

func TestRedisSequence_Key(t *testing.T) {
	seq := NewRedisSequenceWithClient(nil, "")
	assert.Equal(t, "invoicing:docseq:Invoice:2025-05-27", seq.Key(invoice.DocumentInvoice, day))
}

func TestRedisSequence_SeedsFromCount(t *testing.T) {
	client, mock := redismock.NewClientMock()
	seq := NewRedisSequenceWithClient(client, "test:")
	key := "test:Invoice:2025-05-27"

	mock.ExpectExists(key).SetVal(0)
	mock.ExpectSetNX(key, int64(2), defaultSequenceTTL).SetVal(true)
	mock.ExpectIncr(key).SetVal(3)

	calls := 0
	n, err := seq.Next(context.Background(), invoice.DocumentInvoice, day, countOf(2, &calls))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSequence_ExistingCounter(t *testing.T) {
	client, mock := redismock.NewClientMock()
	seq := NewRedisSequenceWithClient(client, "test:")
	key := "test:Quotation:2025-05-27"

	mock.ExpectExists(key).SetVal(1)
	mock.ExpectIncr(key).SetVal(8)

	calls := 0
	n, err := seq.Next(context.Background(), invoice.DocumentQuotation, day, countOf(99, &calls))

	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Zero(t, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSequence_CountError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	seq := NewRedisSequenceWithClient(client, "test:")
	mock.ExpectExists("test:Invoice:2025-05-27").SetVal(0)

	_, err := seq.Next(context.Background(), invoice.DocumentInvoice, day,
		func(context.Context) (int64, error) { return 0, errors.New("db down") })

	assert.EqualError(t, err, "db down")
}

func TestRedisSequence_IncrError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	seq := NewRedisSequenceWithClient(client, "test:")
	key := "test:Invoice:2025-05-27"
	mock.ExpectExists(key).SetVal(1)
	mock.ExpectIncr(key).SetErr(errors.New("READONLY"))

	_, err := seq.Next(context.Background(), invoice.DocumentInvoice, day, nil)

	assert.ErrorContains(t, err, "failed to increment sequence")
}

func TestRedisSequence_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	seq := NewRedisSequenceWithClient(client, "test:")

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, seq.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, seq.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
