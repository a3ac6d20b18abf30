// Package seed resets the datastore to a small set of demo records.
package seed

import (
	"context"

	"github.com/orgalaser/invoicing/internal/application/product"
	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	domainproduct "github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	CustomersSeeded = "Customers seeded"
	ProductsSeeded  = "Products seeded"
)

// DemoCustomers are inserted by SeedCustomers, one per customer type
var DemoCustomers = []customer.Draft{
	{
		Type:        customer.TypeInStore,
		FullName:    "John Doe",
		PhoneNumber: "123456789",
		JobType:     customer.JobWeddingInvitations,
		Status:      customer.StatusActive,
	},
	{
		Type:     customer.TypeProduction,
		FullName: "Jane Smith",
		Nickname: "JSmith",
		JobType:  customer.JobShoeLaserCutting,
		Status:   customer.StatusActive,
	},
	{
		Type:     customer.TypeWeddingMaker,
		FullName: "Wedding Co",
		Nickname: "WeddingCo",
		JobType:  customer.JobLaserCutting,
		Status:   customer.StatusActive,
	},
}

// DemoProducts are inserted by SeedProducts, one per category
var DemoProducts = []domainproduct.Draft{
	{
		Category:         domainproduct.CategoryShoeLaserCutting,
		CustomerNickname: "JSmith",
		MaterialType:     domainproduct.MaterialLeather,
		UniqueCode:       "001",
		Price:            decimal.NewFromInt(5000),
		Status:           domainproduct.StatusActive,
	},
	{
		Category:      domainproduct.CategoryWeddingInvitations,
		MaterialType:  domainproduct.MaterialWood,
		ProductType:   domainproduct.ProductTypeInvitationCard,
		StickerOption: domainproduct.WithSticker,
		StickerType:   domainproduct.StickerNormal,
		StickerColor:  domainproduct.StickerGold,
		Price:         decimal.NewFromInt(2000),
		Status:        domainproduct.StatusActive,
	},
	{
		Category: domainproduct.CategoryLaserCutting,
		Status:   domainproduct.StatusActive,
	},
}

// Service wipes and repopulates customers or products.
// Each call runs in one transaction so a failure leaves the previous data intact.
type Service struct {
	txScope  unitofwork.TransactionScope
	barcodes *product.BarcodeGenerator
	logger   *zap.Logger
}

// NewService creates a new seed Service
func NewService(txScope unitofwork.TransactionScope, barcodes *product.BarcodeGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{txScope: txScope, barcodes: barcodes, logger: logger}
}

// SeedCustomers replaces every customer and type-index row with DemoCustomers.
// Invoices are removed first since they reference customers.
func (s *Service) SeedCustomers(ctx context.Context) (string, error) {
	err := s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Invoices().DeleteAll(ctx); err != nil {
			return err
		}
		if err := repos.TypeIndex().DeleteAll(ctx); err != nil {
			return err
		}
		if err := repos.Customers().DeleteAll(ctx); err != nil {
			return err
		}
		for _, d := range DemoCustomers {
			c, err := customer.NewCustomer(d)
			if err != nil {
				return err
			}
			if err := repos.Customers().Save(ctx, c); err != nil {
				return err
			}
			if err := repos.TypeIndex().Insert(ctx, c.IndexEntry()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed customers", zap.Error(err))
		return "", err
	}
	s.logger.Info("Customers seeded", zap.Int("count", len(DemoCustomers)))
	return CustomersSeeded, nil
}

// SeedProducts replaces every product with DemoProducts, drawing fresh barcodes.
func (s *Service) SeedProducts(ctx context.Context) (string, error) {
	err := s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
		products := repos.Products()
		if err := products.DeleteAll(ctx); err != nil {
			return err
		}
		autoID := ""
		for _, d := range DemoProducts {
			if d.Category == domainproduct.CategoryWeddingInvitations {
				next, err := domainproduct.NextAutoGeneratedID(autoID)
				if err != nil {
					return err
				}
				autoID = next
			}
			barcodeID, err := s.barcodes.Generate(ctx, products, d.Category)
			if err != nil {
				return err
			}
			p, err := domainproduct.NewProduct(d, autoID, barcodeID)
			if err != nil {
				return err
			}
			if err := products.Save(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed products", zap.Error(err))
		return "", err
	}
	s.logger.Info("Products seeded", zap.Int("count", len(DemoProducts)))
	return ProductsSeeded, nil
}
