package persistence

import (
	"context"

	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos unitofwork.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
}

// gormRepositories builds repositories bound to one transaction.
type gormRepositories struct {
	tx *gorm.DB
}

func (r *gormRepositories) Customers() customer.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormRepositories) TypeIndex() customer.TypeIndexRepository {
	return NewGormTypeIndexRepository(r.tx)
}

func (r *gormRepositories) Products() product.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormRepositories) Invoices() invoice.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ unitofwork.TransactionScope = (*GormTransactionScope)(nil)

var _ unitofwork.Repositories = (*gormRepositories)(nil)
