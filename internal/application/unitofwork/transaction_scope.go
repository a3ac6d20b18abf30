package unitofwork

import (
	"context"

	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/product"
)

// TransactionScope provides transactional access to the repositories.
// All repository operations made inside fn share one database transaction
// and are committed or rolled back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories gives access to every repository bound to the current transaction.
type Repositories interface {
	Customers() customer.CustomerRepository
	TypeIndex() customer.TypeIndexRepository
	Products() product.ProductRepository
	Invoices() invoice.InvoiceRepository
}

// NoOpTransactionScope runs functions against plain repositories without a transaction.
// This is useful for testing.
type NoOpTransactionScope struct {
	customers customer.CustomerRepository
	typeIndex customer.TypeIndexRepository
	products  product.ProductRepository
	invoices  invoice.InvoiceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
// Any of them may be nil when the caller never touches it.
func NewNoOpTransactionScope(
	customers customer.CustomerRepository,
	typeIndex customer.TypeIndexRepository,
	products product.ProductRepository,
	invoices invoice.InvoiceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		customers: customers,
		typeIndex: typeIndex,
		products:  products,
		invoices:  invoices,
	}
}

// Execute runs fn without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Customers() customer.CustomerRepository { return s.customers }
func (s *NoOpTransactionScope) TypeIndex() customer.TypeIndexRepository { return s.typeIndex }
func (s *NoOpTransactionScope) Products() product.ProductRepository     { return s.products }
func (s *NoOpTransactionScope) Invoices() invoice.InvoiceRepository     { return s.invoices }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ Repositories = (*NoOpTransactionScope)(nil)
