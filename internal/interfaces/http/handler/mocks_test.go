package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	appprinting "github.com/orgalaser/invoicing/internal/application/printing"
	appproduct "github.com/orgalaser/invoicing/internal/application/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// MockCustomerService implements CustomerService for testing
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, req appcustomer.CustomerRequest) (*appcustomer.CustomerResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcustomer.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id uuid.UUID) (*appcustomer.CustomerResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcustomer.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, filter shared.Filter) ([]appcustomer.CustomerResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appcustomer.CustomerResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerService) Replace(ctx context.Context, id uuid.UUID, req appcustomer.CustomerRequest) (*appcustomer.CustomerResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcustomer.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerService) Search(ctx context.Context, req appcustomer.SearchRequest) (*appcustomer.CustomerResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcustomer.CustomerResponse), args.Error(1)
}

// MockProductService implements ProductService for testing
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req appproduct.ProductRequest) (*appproduct.ProductResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appproduct.ProductResponse), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*appproduct.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appproduct.ProductResponse), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, filter shared.Filter) ([]appproduct.ProductResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appproduct.ProductResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) Replace(ctx context.Context, id uuid.UUID, req appproduct.ProductRequest) (*appproduct.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appproduct.ProductResponse), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockInvoiceService implements InvoiceService for testing
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, req appinvoice.CreateInvoiceRequest) (*appinvoice.InvoiceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinvoice.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*appinvoice.InvoiceResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinvoice.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, filter shared.Filter) ([]appinvoice.InvoiceResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]appinvoice.InvoiceResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceService) Search(ctx context.Context, nickname, phone string) ([]appinvoice.InvoiceResponse, error) {
	args := m.Called(ctx, nickname, phone)
	return args.Get(0).([]appinvoice.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) UpdatePayment(ctx context.Context, id uuid.UUID, req appinvoice.UpdatePaymentRequest) (*appinvoice.InvoiceResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinvoice.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) Scan(ctx context.Context, req appinvoice.ScanRequest) (*appinvoice.ItemResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appinvoice.ItemResponse), args.Error(1)
}

func (m *MockInvoiceService) Export(ctx context.Context, filter shared.Filter, writer appinvoice.WorkbookWriter, w io.Writer) error {
	args := m.Called(ctx, filter, writer, w)
	if err := args.Error(0); err != nil {
		return err
	}
	return writer.WriteInvoices(w, nil)
}

// MockPrintService implements PrintService for testing
type MockPrintService struct {
	mock.Mock
}

func (m *MockPrintService) Print(ctx context.Context, req appprinting.PrintRequest) (*appprinting.Document, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appprinting.Document), args.Error(1)
}

func (m *MockPrintService) Label(ctx context.Context, productID uuid.UUID) (*appprinting.Document, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appprinting.Document), args.Error(1)
}

// MockSeedService implements SeedService for testing
type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) SeedCustomers(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSeedService) SeedProducts(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// stubWorkbook writes a fixed payload instead of a spreadsheet
type stubWorkbook struct{}

func (stubWorkbook) WriteInvoices(w io.Writer, _ []appinvoice.ExportDocument) error {
	_, err := w.Write([]byte("workbook"))
	return err
}

func (stubWorkbook) ContentType() string { return "application/test" }
func (stubWorkbook) Extension() string   { return ".xlsx" }

// stubPinger fails with err when set
type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}
