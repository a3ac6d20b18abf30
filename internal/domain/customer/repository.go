package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByIDs finds customers by IDs; missing IDs are skipped
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Customer, error)

	// FindAll finds all customers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every customer
	DeleteAll(ctx context.Context) error
}

// TypeIndexRepository maintains the per-type lookup tables (nickname or phone to customer).
type TypeIndexRepository interface {
	// Insert adds an entry; a taken key reports shared.ErrAlreadyExists
	Insert(ctx context.Context, entry IndexEntry) error

	// FindCustomerID resolves an external key within one customer type
	FindCustomerID(ctx context.Context, t CustomerType, key string) (uuid.UUID, error)

	// DeleteByCustomer removes the customer's entries from every type table
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error

	// DeleteAll empties every type table
	DeleteAll(ctx context.Context) error
}
