package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

var (
	ErrProductNotFound     = shared.NewDomainError("NOT_FOUND", "Product not found. Please check the product ID and try again.")
	ErrLaserCuttingExists  = shared.NewDomainError("ALREADY_EXISTS", "Only one Laser Cutting product is allowed at a time. Please delete the existing one first.")
	ErrDuplicateIdentifier = shared.NewDomainError("ALREADY_EXISTS", "This Product ID or Barcode ID is already in use. Please try again.")
)

// AutoIDMaxAttempts bounds Auto_Generated_ID reassignment when a concurrent
// create stored the same sequence first.
const AutoIDMaxAttempts = 5

// Service handles product use cases: identifier assignment and the catalog rules
// that need the datastore.
type Service struct {
	products product.ProductRepository
	barcodes *BarcodeGenerator
}

// NewService creates a new product Service
func NewService(products product.ProductRepository, barcodes *BarcodeGenerator) *Service {
	return &Service{products: products, barcodes: barcodes}
}

// Create validates a product, assigns its identifiers and stores it.
func (s *Service) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	d := req.Draft()
	if err := product.Validate(d); err != nil {
		return nil, err
	}
	if err := s.checkLaserCuttingSingleton(ctx, d.Category, uuid.Nil); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		autoID, err := s.nextAutoID(ctx, d.Category)
		if err != nil {
			return nil, err
		}
		barcodeID, err := s.barcodes.Generate(ctx, s.products, d.Category)
		if err != nil {
			return nil, err
		}

		p, err := product.NewProduct(d, autoID, barcodeID)
		if err != nil {
			return nil, err
		}
		if err := s.checkProductIDFree(ctx, p.ProductID, uuid.Nil); err != nil {
			return nil, err
		}
		err = s.products.Save(ctx, p)
		if err == nil {
			resp := ToProductResponse(p)
			return &resp, nil
		}
		if !retryAutoID(d.Category, err, attempt) {
			return nil, duplicate(err)
		}
	}
}

// GetByID returns a product
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// List returns products matching the filter and the total count
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// Replace overwrites a product. A wedding invitation keeps its Auto_Generated_ID
// and every product keeps its Barcode_ID while its category is unchanged.
func (s *Service) Replace(ctx context.Context, id uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	d := req.Draft()
	if err := product.Validate(d); err != nil {
		return nil, err
	}
	if err := s.checkLaserCuttingSingleton(ctx, d.Category, p.ID); err != nil {
		return nil, err
	}

	recategorized := d.Category != p.Category()
	autoID := p.AutoGeneratedID()
	barcodeID := p.BarcodeID
	for attempt := 1; ; attempt++ {
		if recategorized {
			if autoID, err = s.nextAutoID(ctx, d.Category); err != nil {
				return nil, err
			}
			if barcodeID, err = s.barcodes.Generate(ctx, s.products, d.Category); err != nil {
				return nil, err
			}
		}

		if err := p.Replace(d, autoID, barcodeID); err != nil {
			return nil, err
		}
		if err := s.checkProductIDFree(ctx, p.ProductID, p.ID); err != nil {
			return nil, err
		}
		err = s.products.Save(ctx, p)
		if err == nil {
			resp := ToProductResponse(p)
			return &resp, nil
		}
		if !recategorized || !retryAutoID(d.Category, err, attempt) {
			return nil, duplicate(err)
		}
	}
}

// Delete removes a product
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(s.products.Delete(ctx, id))
}

// FindByBarcode returns the product carrying a Barcode_ID
func (s *Service) FindByBarcode(ctx context.Context, barcodeID string) (*product.Product, error) {
	return s.products.FindByBarcodeID(ctx, barcodeID)
}

// Get returns the domain product, for renderers that need the variant
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *Service) checkLaserCuttingSingleton(ctx context.Context, c product.Category, self uuid.UUID) error {
	if c != product.CategoryLaserCutting {
		return nil
	}
	exists, err := s.products.ExistsByCategory(ctx, c, self)
	if err != nil {
		return err
	}
	if exists {
		return ErrLaserCuttingExists
	}
	return nil
}

func (s *Service) checkProductIDFree(ctx context.Context, productID string, self uuid.UUID) error {
	taken, err := s.products.ExistsByProductID(ctx, productID, self)
	if err != nil {
		return err
	}
	if taken {
		return shared.NewDomainError("ALREADY_EXISTS", fmt.Sprintf("Product ID %s is already in use. Please use a unique Product ID.", productID))
	}
	return nil
}

func (s *Service) nextAutoID(ctx context.Context, c product.Category) (string, error) {
	if c != product.CategoryWeddingInvitations {
		return "", nil
	}
	max, err := s.products.MaxAutoGeneratedID(ctx)
	if err != nil {
		return "", err
	}
	return product.NextAutoGeneratedID(max)
}

// retryAutoID reports whether a failed save may have lost the race for an
// Auto_Generated_ID and should be retried with a fresh one.
func retryAutoID(c product.Category, err error, attempt int) bool {
	return c == product.CategoryWeddingInvitations &&
		errors.Is(err, shared.ErrAlreadyExists) &&
		attempt < AutoIDMaxAttempts
}

func notFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func duplicate(err error) error {
	if errors.Is(err, shared.ErrAlreadyExists) {
		return ErrDuplicateIdentifier
	}
	return err
}
