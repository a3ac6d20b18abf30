package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	appprinting "github.com/orgalaser/invoicing/internal/application/printing"
	appproduct "github.com/orgalaser/invoicing/internal/application/product"
	appseed "github.com/orgalaser/invoicing/internal/application/seed"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// CustomerService is the customer use-case surface the handlers call
type CustomerService interface {
	Create(ctx context.Context, req appcustomer.CustomerRequest) (*appcustomer.CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*appcustomer.CustomerResponse, error)
	List(ctx context.Context, filter shared.Filter) ([]appcustomer.CustomerResponse, int64, error)
	Replace(ctx context.Context, id uuid.UUID, req appcustomer.CustomerRequest) (*appcustomer.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, req appcustomer.SearchRequest) (*appcustomer.CustomerResponse, error)
}

// ProductService is the product use-case surface the handlers call
type ProductService interface {
	Create(ctx context.Context, req appproduct.ProductRequest) (*appproduct.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*appproduct.ProductResponse, error)
	List(ctx context.Context, filter shared.Filter) ([]appproduct.ProductResponse, int64, error)
	Replace(ctx context.Context, id uuid.UUID, req appproduct.ProductRequest) (*appproduct.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceService is the invoice and quotation use-case surface the handlers call
type InvoiceService interface {
	Create(ctx context.Context, req appinvoice.CreateInvoiceRequest) (*appinvoice.InvoiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*appinvoice.InvoiceResponse, error)
	List(ctx context.Context, filter shared.Filter) ([]appinvoice.InvoiceResponse, int64, error)
	Search(ctx context.Context, nickname, phone string) ([]appinvoice.InvoiceResponse, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, req appinvoice.UpdatePaymentRequest) (*appinvoice.InvoiceResponse, error)
	Scan(ctx context.Context, req appinvoice.ScanRequest) (*appinvoice.ItemResponse, error)
	Export(ctx context.Context, filter shared.Filter, writer appinvoice.WorkbookWriter, w io.Writer) error
}

// PrintService renders printable documents
type PrintService interface {
	Print(ctx context.Context, req appprinting.PrintRequest) (*appprinting.Document, error)
	Label(ctx context.Context, productID uuid.UUID) (*appprinting.Document, error)
}

// SeedService loads demo records
type SeedService interface {
	SeedCustomers(ctx context.Context) (string, error)
	SeedProducts(ctx context.Context) (string, error)
}

var (
	_ CustomerService = (*appcustomer.Service)(nil)
	_ ProductService  = (*appproduct.Service)(nil)
	_ InvoiceService  = (*appinvoice.Service)(nil)
	_ PrintService    = (*appprinting.Service)(nil)
	_ SeedService     = (*appseed.Service)(nil)
)
