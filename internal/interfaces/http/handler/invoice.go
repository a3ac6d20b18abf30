package handler

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	appprinting "github.com/orgalaser/invoicing/internal/application/printing"
	"github.com/orgalaser/invoicing/internal/interfaces/http/dto"
)

// InvoiceHandler handles invoice and quotation API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoices InvoiceService
	printer  PrintService
	workbook appinvoice.WorkbookWriter
	now      func() time.Time
}

// NewInvoiceHandler creates a new InvoiceHandler. A nil workbook writer
// disables the export endpoint.
func NewInvoiceHandler(invoices InvoiceService, printer PrintService, workbook appinvoice.WorkbookWriter) *InvoiceHandler {
	return &InvoiceHandler{
		invoices: invoices,
		printer:  printer,
		workbook: workbook,
		now:      time.Now,
	}
}

// ListInvoicesQuery filters the invoice list and export
type ListInvoicesQuery struct {
	dto.ListRequest
	DocumentType  string `form:"document_type"`
	PaymentStatus string `form:"payment_status"`
	CustomerID    string `form:"customer_id" binding:"omitempty,uuid"`
}

// SearchInvoicesQuery matches documents by their customer's nickname or phone
type SearchInvoicesQuery struct {
	Nickname string `form:"nickname"`
	Phone    string `form:"phone"`
}

func (h *InvoiceHandler) listQuery(c *gin.Context) (ListInvoicesQuery, bool) {
	var q ListInvoicesQuery
	ok := h.BindQuery(c, &q)
	return q, ok
}

func (q ListInvoicesQuery) filters() map[string]any {
	out := make(map[string]any)
	if q.DocumentType != "" {
		out["document_type"] = q.DocumentType
	}
	if q.PaymentStatus != "" {
		out["payment_status"] = q.PaymentStatus
	}
	if q.CustomerID != "" {
		out["customer_id"] = q.CustomerID
	}
	return out
}

// List godoc
// @ID           listInvoices
// @Summary      List invoices and quotations
// @Description  Documents come with their customer populated. X-Total-Count carries the unpaged total.
// @Tags         invoices
// @Produce      json
// @Param        document_type  query string false "Invoice or Quotation"
// @Param        payment_status query string false "Unpaid, Paid or Partially Paid"
// @Param        customer_id    query string false "Customer ID"
// @Param        search         query string false "Matches Document_ID"
// @Param        page           query int    false "Page number"
// @Param        page_size      query int    false "Rows per page; omitted returns all"
// @Success      200 {array}  appinvoice.InvoiceResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	q, ok := h.listQuery(c)
	if !ok {
		return
	}
	filter := q.Filter()
	filter.Filters = q.filters()

	invoices, total, err := h.invoices.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.ListResult(c, invoices, total)
}

// Create godoc
// @ID           createInvoice
// @Summary      Create an invoice or quotation
// @Description  Numbers the document per type and day and totals its line items server-side
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body appinvoice.CreateInvoiceRequest true "Document"
// @Success      201 {object} appinvoice.InvoiceResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req appinvoice.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	created, err := h.invoices.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// GetByID godoc
// @ID           getInvoice
// @Summary      Get an invoice or quotation
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} appinvoice.InvoiceResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.ParamID(c, appinvoice.ErrInvoiceNotFound)
	if !ok {
		return
	}
	inv, err := h.invoices.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// UpdatePayment godoc
// @ID           updateInvoicePayment
// @Summary      Update payment fields
// @Description  Changes Payment_Status and/or Advance_Payment; other fields are immutable
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Invoice ID"
// @Param        request body appinvoice.UpdatePaymentRequest true "Payment update"
// @Success      200 {object} appinvoice.InvoiceResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.ParamID(c, appinvoice.ErrInvoiceNotFound)
	if !ok {
		return
	}
	var req appinvoice.UpdatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	updated, err := h.invoices.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Search godoc
// @ID           searchInvoices
// @Summary      Search documents by customer
// @Description  Case-insensitive substring match on the customer's nickname and phone number
// @Tags         invoices
// @Produce      json
// @Param        nickname query string false "Nickname fragment"
// @Param        phone    query string false "Phone number fragment"
// @Success      200 {array}  appinvoice.InvoiceResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/search [get]
func (h *InvoiceHandler) Search(c *gin.Context) {
	var q SearchInvoicesQuery
	if !h.BindQuery(c, &q) {
		return
	}
	invoices, err := h.invoices.Search(c.Request.Context(), q.Nickname, q.Phone)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// Scan godoc
// @ID           scanBarcode
// @Summary      Resolve a scanned barcode into a line item
// @Description  LC needs Duration (minutes) and optionally Material_Cost; ORGA-WI-/ORGA-SLC- barcodes use the product price
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body appinvoice.ScanRequest true "Scan"
// @Success      200 {object} appinvoice.ItemResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/scan [post]
func (h *InvoiceHandler) Scan(c *gin.Context) {
	var req appinvoice.ScanRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.invoices.Scan(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Export godoc
// @ID           exportInvoices
// @Summary      Export documents as a workbook
// @Description  One row per document plus an items sheet; accepts the list filters
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        document_type  query string false "Invoice or Quotation"
// @Param        payment_status query string false "Unpaid, Paid or Partially Paid"
// @Param        customer_id    query string false "Customer ID"
// @Success      200 {file} file
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	if h.workbook == nil {
		h.NotFound(c, "Export is not available")
		return
	}
	q, ok := h.listQuery(c)
	if !ok {
		return
	}
	filter := q.Filter()
	filter.Filters = q.filters()

	var buf bytes.Buffer
	if err := h.invoices.Export(c.Request.Context(), filter, h.workbook, &buf); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, appinvoice.ExportFilename(h.now(), h.workbook.Extension()), h.workbook.ContentType(), buf.Bytes())
}

// Print godoc
// @ID           printInvoice
// @Summary      Render a printable invoice
// @Description  Renders the submitted document as a single A5 PDF. Missing fields print as N/A or 0.
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        request body appprinting.PrintRequest true "Printable document"
// @Success      200 {file} file
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /invoices/print [post]
func (h *InvoiceHandler) Print(c *gin.Context) {
	var req appprinting.PrintRequest
	if !h.BindJSON(c, &req) {
		return
	}
	doc, err := h.printer.Print(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, doc.Filename, doc.ContentType, doc.Data)
}
