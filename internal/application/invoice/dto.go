package invoice

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// ItemRequest is one line of a create request. Absent numbers stay nil so
// validation can tell them apart from zero.
type ItemRequest struct {
	ItemDescription string           `json:"Item_Description"`
	Quantity        *decimal.Decimal `json:"Quantity"`
	Rate            *decimal.Decimal `json:"Rate"`
	LineTotal       *decimal.Decimal `json:"Line_Total"`
}

// CreateInvoiceRequest represents a request to create an invoice or quotation.
// A client-sent Total_Amount is ignored.
type CreateInvoiceRequest struct {
	DocumentType     string           `json:"Document_Type"`
	CustomerID       string           `json:"Customer_ID"`
	Items            []ItemRequest    `json:"Items"`
	InvoiceDateInput string           `json:"invoiceDateInput"`
	PurchasingOrder  string           `json:"Purchasing_Order" binding:"max=100"`
	PaymentMethod    string           `json:"Payment_Method"`
	DiscountPrice    *decimal.Decimal `json:"Discount_Price"`
	AdvancePayment   *decimal.Decimal `json:"Advance_Payment"`
}

// UpdatePaymentRequest changes the payment fields; omitted fields are left alone.
type UpdatePaymentRequest struct {
	PaymentStatus  string           `json:"Payment_Status"`
	AdvancePayment *decimal.Decimal `json:"Advance_Payment"`
}

// ScanRequest resolves a scanned barcode into a line item
type ScanRequest struct {
	BarcodeID    string           `json:"Barcode_ID"`
	Duration     *decimal.Decimal `json:"Duration"`
	MaterialCost *decimal.Decimal `json:"Material_Cost"`
	Quantity     *decimal.Decimal `json:"Quantity"`
}

// ItemResponse is one line of a document
type ItemResponse struct {
	ItemDescription string          `json:"Item_Description"`
	Quantity        int             `json:"Quantity"`
	Rate            decimal.Decimal `json:"Rate"`
	LineTotal       decimal.Decimal `json:"Line_Total"`
}

// CustomerRef is the Customer_ID of a response: the bare id, or the whole
// customer once populated.
type CustomerRef struct {
	ID       uuid.UUID
	Customer *appcustomer.CustomerResponse
}

// MarshalJSON writes the populated customer when present, otherwise the id
func (r CustomerRef) MarshalJSON() ([]byte, error) {
	if r.Customer != nil {
		return json.Marshal(r.Customer)
	}
	return json.Marshal(r.ID)
}

// InvoiceResponse represents an invoice or quotation in API responses
type InvoiceResponse struct {
	ID              uuid.UUID       `json:"_id"`
	DocumentType    string          `json:"Document_Type"`
	DocumentID      string          `json:"Document_ID"`
	Customer        CustomerRef     `json:"Customer_ID"`
	Date            time.Time       `json:"Date"`
	Items           []ItemResponse  `json:"Items"`
	TotalAmount     decimal.Decimal `json:"Total_Amount"`
	PurchasingOrder string          `json:"Purchasing_Order,omitempty"`
	PaymentTerm     string          `json:"Payment_Term"`
	PaymentMethod   string          `json:"Payment_Method,omitempty"`
	DiscountPrice   decimal.Decimal `json:"Discount_Price"`
	AdvancePayment  decimal.Decimal `json:"Advance_Payment"`
	PaymentStatus   string          `json:"Payment_Status"`
	CreatedAt       time.Time       `json:"Created_At"`
	UpdatedAt       time.Time       `json:"Updated_At"`
}

// ToInvoiceResponse converts a domain Invoice to a response with an unpopulated customer
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	items := make([]ItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToItemResponse(item)
	}
	return InvoiceResponse{
		ID:              inv.ID,
		DocumentType:    string(inv.DocumentType),
		DocumentID:      inv.DocumentID,
		Customer:        CustomerRef{ID: inv.CustomerID},
		Date:            inv.Date,
		Items:           items,
		TotalAmount:     inv.TotalAmount,
		PurchasingOrder: inv.PurchasingOrder,
		PaymentTerm:     inv.PaymentTerm,
		PaymentMethod:   string(inv.PaymentMethod),
		DiscountPrice:   inv.DiscountPrice,
		AdvancePayment:  inv.AdvancePayment,
		PaymentStatus:   string(inv.PaymentStatus),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// ToItemResponse converts a domain line item
func ToItemResponse(item invoice.LineItem) ItemResponse {
	return ItemResponse{
		ItemDescription: item.Description,
		Quantity:        item.Quantity,
		Rate:            item.Rate,
		LineTotal:       item.LineTotal,
	}
}
