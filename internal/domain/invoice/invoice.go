package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DocumentType distinguishes invoices from quotations
type DocumentType string

const (
	DocumentInvoice   DocumentType = "Invoice"
	DocumentQuotation DocumentType = "Quotation"
)

// IsValid reports whether t is a known document type
func (t DocumentType) IsValid() bool {
	return t == DocumentInvoice || t == DocumentQuotation
}

// Prefix returns the Document_ID prefix of the type
func (t DocumentType) Prefix() string {
	if t == DocumentQuotation {
		return "OLCQ"
	}
	return "OLCI"
}

// PaymentMethod is how the customer pays
type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "Cash"
	PaymentCheque         PaymentMethod = "Cheque"
	PaymentOnlineTransfer PaymentMethod = "Online Transfer"
	PaymentCreditCard     PaymentMethod = "Credit Card"
)

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCheque, PaymentOnlineTransfer, PaymentCreditCard:
		return true
	}
	return false
}

// PaymentStatus tracks settlement of a document.
// Any transition between statuses is accepted.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "Unpaid"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentPartiallyPaid:
		return true
	}
	return false
}

// Payment terms derived from the customer type
const (
	PaymentTermNone        = "None"
	PaymentTermFifteenDays = "15 days"
)

// PaymentTermFor returns the payment term for a customer
func PaymentTermFor(inStore bool) string {
	if inStore {
		return PaymentTermNone
	}
	return PaymentTermFifteenDays
}

// DueInDays returns the number of days until payment is due
func DueInDays(inStore bool) int {
	if inStore {
		return 0
	}
	return 15
}

// Draft carries the raw fields of an invoice create request
type Draft struct {
	DocumentType    DocumentType
	CustomerID      uuid.UUID
	Date            time.Time
	Items           []ItemDraft
	PurchasingOrder string
	PaymentMethod   PaymentMethod
	DiscountPrice   decimal.Decimal
	AdvancePayment  decimal.Decimal
}

// Invoice is the aggregate root for an invoice or quotation
type Invoice struct {
	shared.BaseAggregateRoot
	DocumentType    DocumentType
	DocumentID      string
	CustomerID      uuid.UUID
	Date            time.Time
	Items           []LineItem
	TotalAmount     decimal.Decimal
	PurchasingOrder string
	PaymentTerm     string
	PaymentMethod   PaymentMethod
	DiscountPrice   decimal.Decimal
	AdvancePayment  decimal.Decimal
	PaymentStatus   PaymentStatus
}

// NewInvoice creates an invoice from a validated draft.
// The total is always recomputed from the line totals.
func NewInvoice(d Draft, documentID string, customerInStore bool) (*Invoice, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	if strings.TrimSpace(documentID) == "" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_ID", "Document ID is required")
	}

	items := make([]LineItem, len(d.Items))
	for i, draft := range d.Items {
		items[i] = draft.toLineItem()
	}

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DocumentType:      d.DocumentType,
		DocumentID:        documentID,
		CustomerID:        d.CustomerID,
		Date:              d.Date,
		Items:             items,
		PurchasingOrder:   strings.TrimSpace(d.PurchasingOrder),
		PaymentTerm:       PaymentTermFor(customerInStore),
		PaymentMethod:     d.PaymentMethod,
		DiscountPrice:     d.DiscountPrice,
		AdvancePayment:    d.AdvancePayment,
		PaymentStatus:     PaymentUnpaid,
	}
	inv.recalculateTotal()
	return inv, nil
}

func (i *Invoice) recalculateTotal() {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.LineTotal)
	}
	i.TotalAmount = total
}

// UpdatePayment applies a partial payment update; nil arguments are left unchanged.
func (i *Invoice) UpdatePayment(status *PaymentStatus, advance *decimal.Decimal) error {
	var v shared.Violations
	if status != nil && !status.IsValid() {
		v.Add("Payment status must be one of Unpaid, Paid, Partially Paid")
	}
	if advance != nil {
		v.Check(advance.IsNegative(), "Advance payment cannot be negative")
		v.Check(!shared.IsMoney(*advance), "Advance payment must have at most 2 decimal places")
	}
	if err := v.Err(); err != nil {
		return err
	}

	if status != nil {
		i.PaymentStatus = *status
	}
	if advance != nil {
		i.AdvancePayment = *advance
	}
	i.Touch()
	return nil
}

// Totals returns the presentation figures derived from the stored amounts
func (i *Invoice) Totals() Totals {
	return ComputeTotals(i.TotalAmount, i.DiscountPrice, i.AdvancePayment)
}

// MismatchedLines returns the indexes of items whose Line_Total differs from Quantity x Rate.
func (i *Invoice) MismatchedLines() []int {
	var out []int
	for idx, item := range i.Items {
		if !item.IsConsistent() {
			out = append(out, idx)
		}
	}
	return out
}

// Validate applies the invoice rule set to a draft and reports every failed rule.
// Customer existence needs the datastore and is checked by the caller.
func Validate(d Draft) error {
	var v shared.Violations

	v.Check(!d.DocumentType.IsValid(), "Document type must be either Invoice or Quotation.")
	v.Check(d.CustomerID == uuid.Nil, "Customer ID is required.")
	if len(d.Items) == 0 {
		v.Add("At least one item is required in the invoice/quotation.")
	}
	for idx, item := range d.Items {
		item.validate(idx, &v)
	}
	v.Check(d.PaymentMethod != "" && !d.PaymentMethod.IsValid(), "Payment method must be one of Cash, Cheque, Online Transfer, Credit Card")
	v.Check(d.DiscountPrice.IsNegative(), "Discount cannot be negative")
	v.Check(!shared.IsMoney(d.DiscountPrice), "Discount must have at most 2 decimal places")
	v.Check(d.AdvancePayment.IsNegative(), "Advance payment cannot be negative")
	v.Check(!shared.IsMoney(d.AdvancePayment), "Advance payment must have at most 2 decimal places")
	v.Check(d.Date.IsZero(), "Date is required")

	return v.Err()
}

// FormatDocumentID builds {prefix}_{YYYY-MM-DD}_{NN} for the date's calendar day.
func FormatDocumentID(t DocumentType, date time.Time, seq int) string {
	return fmt.Sprintf("%s_%s_%02d", t.Prefix(), date.Format("2006-01-02"), seq)
}

// DayBounds returns the inclusive start and end instants of the calendar day
// containing date in loc.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}
