package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// SearchCriteria matches invoices by case-insensitive substrings of the
// customer's nickname or phone number. Empty fields are ignored.
type SearchCriteria struct {
	Nickname string
	Phone    string
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindAll finds all invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Search finds invoices by customer nickname or phone
	Search(ctx context.Context, criteria SearchCriteria) ([]Invoice, error)

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByTypeBetween counts documents of a type dated within [from, to]
	CountByTypeBetween(ctx context.Context, docType DocumentType, from, to time.Time) (int64, error)

	// CountByCustomer counts documents referencing a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// Save creates or updates an invoice and replaces its items
	Save(ctx context.Context, invoice *Invoice) error

	// DeleteAll removes every invoice
	DeleteAll(ctx context.Context) error
}
