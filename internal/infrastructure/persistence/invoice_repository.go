package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID finds an invoice with its items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&model, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll finds all invoices matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoice.Invoice, error) {
	var rows []models.InvoiceModel
	q := applyPaging(r.filtered(ctx, filter), filter, InvoiceSortFields)
	if err := q.Preload("Items", orderedItems).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toInvoices(rows), nil
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var n int64
	err := r.filtered(ctx, filter).Count(&n).Error
	return n, err
}

func (r *GormInvoiceRepository) filtered(ctx context.Context, filter shared.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.InvoiceModel{})
	if filter.Search != "" {
		q = q.Where(`LOWER(document_id) LIKE ? ESCAPE '\'`, likePattern(filter.Search))
	}
	for _, key := range []string{"document_type", "payment_status", "customer_id"} {
		if v, ok := filter.Filters[key]; ok {
			q = q.Where(key+" = ?", v)
		}
	}
	return q
}

// Search finds invoices whose customer matches every given criterion
func (r *GormInvoiceRepository) Search(ctx context.Context, c invoice.SearchCriteria) ([]invoice.Invoice, error) {
	q := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id")
	if s := strings.TrimSpace(c.Nickname); s != "" {
		q = q.Where(`LOWER(customers.nickname) LIKE ? ESCAPE '\'`, likePattern(s))
	}
	if s := strings.TrimSpace(c.Phone); s != "" {
		q = q.Where(`LOWER(customers.phone_number) LIKE ? ESCAPE '\'`, likePattern(s))
	}

	var rows []models.InvoiceModel
	err := q.Preload("Items", orderedItems).
		Order("invoices.date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toInvoices(rows), nil
}

// CountByTypeBetween counts documents of a type dated within [from, to].
// Dates are stored in UTC, so the bounds are compared in UTC too.
func (r *GormInvoiceRepository) CountByTypeBetween(ctx context.Context, t invoice.DocumentType, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("document_type = ? AND date >= ? AND date <= ?", t, from.UTC(), to.UTC()).
		Count(&n).Error
	return n, err
}

// CountByCustomer counts documents referencing a customer
func (r *GormInvoiceRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("customer_id = ?", customerID).
		Count(&n).Error
	return n, err
}

// Save writes the invoice header and replaces its items.
// A taken Document_ID reports ErrAlreadyExists.
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *invoice.Invoice) error {
	model := models.InvoiceModelFromDomain(inv)
	items := model.Items
	model.Items = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Where("invoice_id = ?", model.ID).Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// DeleteAll removes every invoice and item
func (r *GormInvoiceRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		return all.Delete(&models.InvoiceModel{}).Error
	})
}

func toInvoices(rows []models.InvoiceModel) []invoice.Invoice {
	out := make([]invoice.Invoice, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ invoice.InvoiceRepository = (*GormInvoiceRepository)(nil)
