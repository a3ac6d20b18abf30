package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByBarcodeID finds a product by its exact Barcode_ID
func (r *GormProductRepository) FindByBarcodeID(ctx context.Context, barcodeID string) (*product.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("barcode_id = ?", barcodeID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]product.Product, error) {
	var rows []models.ProductModel
	q := applyPaging(r.filtered(ctx, filter), filter, ProductSortFields)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]product.Product, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var n int64
	err := r.filtered(ctx, filter).Count(&n).Error
	return n, err
}

func (r *GormProductRepository) filtered(ctx context.Context, filter shared.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if filter.Search != "" {
		p := likePattern(filter.Search)
		q = q.Where(`LOWER(product_id) LIKE ? ESCAPE '\' OR LOWER(barcode_id) LIKE ? ESCAPE '\'`, p, p)
	}
	if v, ok := filter.Filters["category"]; ok {
		q = q.Where("category = ?", v)
	}
	if v, ok := filter.Filters["status"]; ok {
		q = q.Where("status = ?", v)
	}
	return q
}

// Save creates or updates a product. A taken Product_ID or Barcode_ID reports ErrAlreadyExists.
func (r *GormProductRepository) Save(ctx context.Context, p *product.Product) error {
	return translateError(r.db.WithContext(ctx).Save(models.ProductModelFromDomain(p)).Error)
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every product
func (r *GormProductRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.ProductModel{}).Error
}

// ExistsByProductID checks whether a Product_ID is taken by another record
func (r *GormProductRepository) ExistsByProductID(ctx context.Context, productID string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("product_id = ?", productID)
	return exists(excluding(q, excludeID))
}

// ExistsByBarcodeID checks whether a Barcode_ID is taken
func (r *GormProductRepository) ExistsByBarcodeID(ctx context.Context, barcodeID string) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("barcode_id = ?", barcodeID))
}

// ExistsByCategory checks whether another product of the category exists
func (r *GormProductRepository) ExistsByCategory(ctx context.Context, c product.Category, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.ProductModel{}).Where("category = ?", c)
	return exists(excluding(q, excludeID))
}

// MaxAutoGeneratedID returns the highest wedding invitation sequence, or "".
// Ordering by length first keeps numeric order once the sequence passes 9999.
func (r *GormProductRepository) MaxAutoGeneratedID(ctx context.Context) (string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("category = ? AND auto_generated_id <> ''", product.CategoryWeddingInvitations).
		Order("LENGTH(auto_generated_id) DESC").
		Order("auto_generated_id DESC").
		Limit(1).
		Pluck("auto_generated_id", &ids).Error
	if err != nil || len(ids) == 0 {
		return "", err
	}
	return ids[0], nil
}

func excluding(q *gorm.DB, id uuid.UUID) *gorm.DB {
	if id == uuid.Nil {
		return q
	}
	return q.Where("id <> ?", id)
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ product.ProductRepository = (*GormProductRepository)(nil)
