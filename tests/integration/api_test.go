package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	appprinting "github.com/orgalaser/invoicing/internal/application/printing"
	appproduct "github.com/orgalaser/invoicing/internal/application/product"
	appseed "github.com/orgalaser/invoicing/internal/application/seed"
	"github.com/orgalaser/invoicing/internal/domain/printing"
	"github.com/orgalaser/invoicing/internal/infrastructure/export"
	"github.com/orgalaser/invoicing/internal/infrastructure/persistence"
	infraprinting "github.com/orgalaser/invoicing/internal/infrastructure/printing"
	"github.com/orgalaser/invoicing/internal/infrastructure/storage"
	"github.com/orgalaser/invoicing/internal/interfaces/http/handler"
	"github.com/orgalaser/invoicing/internal/interfaces/http/middleware"
	"github.com/orgalaser/invoicing/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// TestServer wires the real repositories, services and handlers over a TestDB
type TestServer struct {
	engine *gin.Engine
	db     *TestDB
}

func NewTestServer(t *testing.T, db *TestDB) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	log := zap.NewNop()

	customers := persistence.NewGormCustomerRepository(db.DB)
	typeIndex := persistence.NewGormTypeIndexRepository(db.DB)
	products := persistence.NewGormProductRepository(db.DB)
	invoices := persistence.NewGormInvoiceRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	barcodes := appproduct.NewBarcodeGenerator(10)
	renderer := infraprinting.NewFPDFRenderer(log)

	printer := appprinting.NewService(renderer, renderer, storage.NewNoopObjectStorage(log), products,
		printing.Company{Name: "Orgalaser"}, log, appprinting.WithLocation(time.UTC))

	handlers := router.Handlers{
		Health: handler.NewHealthHandler("test", map[string]handler.Pinger{"database": pingDB{db.SqlDB}}),
		Customers: handler.NewCustomerHandler(
			appcustomer.NewService(customers, typeIndex, invoices, txScope)),
		Products: handler.NewProductHandler(appproduct.NewService(products, barcodes), printer),
		Invoices: handler.NewInvoiceHandler(
			appinvoice.NewService(invoices, customers, products, txScope, appinvoice.DatabaseSequence{},
				appinvoice.Options{Location: time.UTC, DocumentIDMaxAttempts: 5}, log),
			printer,
			export.NewXLSXWriter()),
		Seed: handler.NewSeedHandler(appseed.NewService(txScope, barcodes, log), true),
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.NewRouter(engine).RegisterAPI(handlers).Setup()

	return &TestServer{engine: engine, db: db}
}

type pingDB struct{ db *sql.DB }

func (p pingDB) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// Request performs an HTTP request against the server
func (ts *TestServer) Request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body map[string]any
	decode(t, w, &body)
	id, _ := body["_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestInvoicingAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := NewTestDB(t)
	ts := NewTestServer(t, db)

	var inStoreID, productionID, wiBarcode string

	t.Run("health reports the database up", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/api/health", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body handler.HealthResponse
		decode(t, w, &body)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "up", body.Checks["database"])
	})

	t.Run("creates customers of each type", func(t *testing.T) {
		inStoreID = createdID(t, ts.Request(http.MethodPost, "/api/customers", map[string]any{
			"Customer_Type": "In-store",
			"Full_Name":     "Nimal Perera",
			"Phone_Number":  "0712345678",
			"Job_Type":      "Laser Cutting",
		}))
		productionID = createdID(t, ts.Request(http.MethodPost, "/api/customers", map[string]any{
			"Customer_Type": "Production",
			"Full_Name":     "Ruwan Silva",
			"Nickname":      "Ruwan",
			"Tax_ID":        "123456789-7000",
			"Job_Type":      "Shoe Laser Cutting",
		}))
		createdID(t, ts.Request(http.MethodPost, "/api/customers", map[string]any{
			"Customer_Type": "Wedding Invitation Maker",
			"Full_Name":     "Dilani Fernando",
			"Nickname":      "Dilani",
			"Job_Type":      "Wedding Invitations",
		}))

		w := ts.Request(http.MethodGet, "/api/customers", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-Total-Count"))
	})

	t.Run("rejects a nickname taken within the same type", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/customers", map[string]any{
			"Customer_Type": "Production",
			"Full_Name":     "Another Ruwan",
			"Nickname":      "Ruwan",
			"Job_Type":      "Laser Cutting",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		decode(t, w, &body)
		assert.Equal(t, "ALREADY_EXISTS", body["code"])
	})

	t.Run("finds a customer through its type table", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/customers/search", map[string]any{
			"Customer_Type": "In-store",
			"Identifier":    "0712345678",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		decode(t, w, &body)
		assert.Equal(t, inStoreID, body["_id"])
	})

	t.Run("creates products with generated identifiers", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/products", map[string]any{
			"Product_Category": "Laser Cutting",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var lc map[string]any
		decode(t, w, &lc)
		assert.Equal(t, "LC", lc["Product_ID"])

		w = ts.Request(http.MethodPost, "/api/products", map[string]any{
			"Product_Category": "Laser Cutting",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = ts.Request(http.MethodPost, "/api/products", map[string]any{
			"Product_Category": "Wedding Invitations",
			"Material_Type":    "Paper",
			"Product_Type":     "Invitation Card",
			"Sticker_Option":   "Without Sticker",
			"Price":            1500,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var wi map[string]any
		decode(t, w, &wi)
		wiBarcode, _ = wi["Barcode_ID"].(string)
		assert.Regexp(t, `^ORGA-WI-\d{4}$`, wiBarcode)

		w = ts.Request(http.MethodGet, "/api/products/"+wi["_id"].(string)+"/barcode", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	})

	t.Run("scans barcodes into line items", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/invoices/scan", map[string]any{
			"Barcode_ID": wiBarcode,
			"Quantity":   10,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var item map[string]any
		decode(t, w, &item)
		assert.Equal(t, "15000", item["Line_Total"])

		w = ts.Request(http.MethodPost, "/api/invoices/scan", map[string]any{
			"Barcode_ID": "LC",
			"Duration":   30,
			"Quantity":   1,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		decode(t, w, &item)
		assert.Equal(t, "1800", item["Rate"])

		w = ts.Request(http.MethodPost, "/api/invoices/scan", map[string]any{
			"Barcode_ID": "ORGA-SLC-9999",
			"Quantity":   1,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	var firstInvoiceID string

	t.Run("numbers documents per type and day", func(t *testing.T) {
		create := func(docType, customerID string) map[string]any {
			w := ts.Request(http.MethodPost, "/api/invoices", map[string]any{
				"Document_Type":    docType,
				"Customer_ID":      customerID,
				"invoiceDateInput": "2025-05-27",
				"Payment_Method":   "Cash",
				"Discount_Price":   10,
				"Advance_Payment":  500,
				"Items": []map[string]any{
					{"Item_Description": "Invitation Card", "Quantity": 2, "Rate": 1500, "Line_Total": 3000},
				},
			})
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var body map[string]any
			decode(t, w, &body)
			return body
		}

		first := create("Invoice", inStoreID)
		firstInvoiceID = first["_id"].(string)
		assert.Equal(t, "OLCI_2025-05-27_01", first["Document_ID"])
		assert.Equal(t, "None", first["Payment_Term"])
		assert.Equal(t, "3000", first["Total_Amount"])
		assert.Equal(t, "Unpaid", first["Payment_Status"])

		second := create("Invoice", productionID)
		assert.Equal(t, "OLCI_2025-05-27_02", second["Document_ID"])
		assert.Equal(t, "15 days", second["Payment_Term"])

		quote := create("Quotation", productionID)
		assert.Equal(t, "OLCQ_2025-05-27_01", quote["Document_ID"])
	})

	t.Run("populates the customer when fetching a document", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/api/invoices/"+firstInvoiceID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		decode(t, w, &body)
		customer, ok := body["Customer_ID"].(map[string]any)
		require.True(t, ok, "customer should be populated")
		assert.Equal(t, "Nimal Perera", customer["Full_Name"])
	})

	t.Run("updates payment status", func(t *testing.T) {
		w := ts.Request(http.MethodPut, "/api/invoices/"+firstInvoiceID, map[string]any{
			"Payment_Status": "Paid",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		decode(t, w, &body)
		assert.Equal(t, "Paid", body["Payment_Status"])
		assert.Equal(t, "OLCI_2025-05-27_01", body["Document_ID"])
	})

	t.Run("searches documents by customer nickname", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/api/invoices/search?nickname=ruw", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		decode(t, w, &body)
		assert.Len(t, body, 2)
	})

	t.Run("filters documents by type", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/api/invoices?document_type=Quotation", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
	})

	t.Run("exports documents as a workbook", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/api/invoices/export", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(export.SheetInvoices)
		require.NoError(t, err)
		assert.Len(t, rows, 4, "header plus three documents")

		items, err := f.GetRows(export.SheetItems)
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("prints a freeform invoice", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/invoices/print", map[string]any{
			"Document_Type": "Invoice",
			"Customer_Name": "Walk-in",
			"Items": []map[string]any{
				{"Item_Description": "Keytag", "Quantity": "3", "Rate": 250},
			},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("refuses to delete a customer with documents", func(t *testing.T) {
		w := ts.Request(http.MethodDelete, "/api/customers/"+productionID, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		decode(t, w, &body)
		assert.Equal(t, "IN_USE", body["code"])
	})

	t.Run("seeding replaces customers and documents", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/seed-customers", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.Request(http.MethodGet, "/api/customers", nil)
		assert.Equal(t, "3", w.Header().Get("X-Total-Count"))

		w = ts.Request(http.MethodGet, "/api/invoices", nil)
		assert.Equal(t, "0", w.Header().Get("X-Total-Count"))

		w = ts.Request(http.MethodGet, "/api/seed-products", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.Request(http.MethodGet, "/api/products", nil)
		assert.Equal(t, "3", w.Header().Get("X-Total-Count"))
	})
}
