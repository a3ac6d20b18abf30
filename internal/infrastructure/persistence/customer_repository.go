package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDs finds customers by ID; unknown IDs are skipped
func (r *GormCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]customer.Customer, error) {
	if len(ids) == 0 {
		return []customer.Customer{}, nil
	}
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customer.Customer, error) {
	var rows []models.CustomerModel
	q := applyPaging(r.filtered(ctx, filter), filter, CustomerSortFields)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

// Count counts customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var n int64
	err := r.filtered(ctx, filter).Count(&n).Error
	return n, err
}

func (r *GormCustomerRepository) filtered(ctx context.Context, filter shared.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.CustomerModel{})
	if filter.Search != "" {
		p := likePattern(filter.Search)
		q = q.Where(`LOWER(full_name) LIKE ? ESCAPE '\' OR LOWER(nickname) LIKE ? ESCAPE '\' OR phone_number LIKE ? ESCAPE '\'`, p, p, p)
	}
	if v, ok := filter.Filters["customer_type"]; ok {
		q = q.Where("customer_type = ?", v)
	}
	if v, ok := filter.Filters["status"]; ok {
		q = q.Where("status = ?", v)
	}
	return q
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	return translateError(r.db.WithContext(ctx).Save(models.CustomerModelFromDomain(c)).Error)
}

// Delete deletes a customer. Invoices referencing it make this fail.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every customer
func (r *GormCustomerRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.CustomerModel{}).Error
}

func toCustomers(rows []models.CustomerModel) []customer.Customer {
	out := make([]customer.Customer, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ customer.CustomerRepository = (*GormCustomerRepository)(nil)

// GormTypeIndexRepository maintains the three customer-type lookup tables.
type GormTypeIndexRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormTypeIndexRepository creates a new GormTypeIndexRepository
func NewGormTypeIndexRepository(db *gorm.DB) *GormTypeIndexRepository {
	return &GormTypeIndexRepository{db: db, now: time.Now}
}

// Insert adds the entry to its type table; a taken key reports ErrAlreadyExists.
func (r *GormTypeIndexRepository) Insert(ctx context.Context, e customer.IndexEntry) error {
	row, ok := models.IndexRow(e, r.now())
	if !ok {
		return shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Invalid customer type. Must be In-store, Production, or Wedding Invitation Maker.")
	}
	return translateError(r.db.WithContext(ctx).Create(row).Error)
}

// FindCustomerID resolves a nickname or phone number within one customer type
func (r *GormTypeIndexRepository) FindCustomerID(ctx context.Context, t customer.CustomerType, key string) (uuid.UUID, error) {
	table, column, ok := models.IndexTable(t)
	if !ok {
		return uuid.Nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Invalid customer type. Must be In-store, Production, or Wedding Invitation Maker.")
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Table(table).
		Where(column+" = ?", key).
		Limit(1).
		Pluck("customer_id", &ids).Error
	if err != nil {
		return uuid.Nil, err
	}
	if len(ids) == 0 {
		return uuid.Nil, shared.ErrNotFound
	}
	return ids[0], nil
}

// DeleteByCustomer removes the customer's rows from every type table
func (r *GormTypeIndexRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	for _, t := range customer.AllTypes {
		table, _, _ := models.IndexTable(t)
		if err := r.db.WithContext(ctx).
			Exec("DELETE FROM "+table+" WHERE customer_id = ?", customerID).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll empties every type table
func (r *GormTypeIndexRepository) DeleteAll(ctx context.Context) error {
	for _, t := range customer.AllTypes {
		table, _, _ := models.IndexTable(t)
		if err := r.db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// Ensure GormTypeIndexRepository implements TypeIndexRepository
var _ customer.TypeIndexRepository = (*GormTypeIndexRepository)(nil)
