package printing

import (
	"fmt"
	"strings"
	"time"

	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// Notes printed under the totals of every sheet
const (
	NoteNotVATInvoice = "This is not a VAT invoice."
	NoteQuestions     = "If you have any questions concerning this Invoice please be kind to inform us."
)

// ClosingLines end every sheet
var ClosingLines = []string{
	"This is a computer generated advice and does not require manual signature.",
	"We look forward to the opportunity of being of service to you",
	"Thank you for your business!",
}

// Company is the issuer block printed in the header and payment section
type Company struct {
	Name              string
	RegistrationNo    string
	Address           string
	Phone             string
	Email             string
	Salesperson       string
	BankName          string
	BankAccountName   string
	BankAccountNumber string
	BankCode          string
}

// SheetItem is one requested line; missing values arrive as zero
type SheetItem struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// SheetInput is the unvalidated content of a print request
type SheetInput struct {
	DocumentType    string
	CustomerName    string
	Address         string
	TaxID           string
	CustomerMobile  string
	CustomerType    string
	PurchasingOrder string
	PaymentMethod   string
	Items           []SheetItem
	TotalAmount     decimal.Decimal
	DiscountPercent decimal.Decimal
	AdvancePayment  decimal.Decimal
}

// BillTo is the billing block
type BillTo struct {
	Name    string
	Address string
	TaxID   string
	Mobile  string
}

// SheetLine is one numbered row of the item table
type SheetLine struct {
	No          int
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// InvoiceSheet is everything an A5 invoice page shows, resolved and defaulted
type InvoiceSheet struct {
	Title           string
	Number          string
	Date            time.Time
	DueDate         time.Time
	PaymentTerm     string
	PaymentMethod   string
	Salesperson     string
	CustomerType    string
	PurchasingOrder string
	BillTo          BillTo
	Lines           []SheetLine
	Totals          invoice.Totals
	Notes           []string
	PayableTo       string
	Closing         []string
	Company         Company
	PaperSize       PaperSize
	Margins         Margins
}

// SheetNumber builds OLH{YYYYMMDD}-{serial}
func SheetNumber(date time.Time, serial int) string {
	return fmt.Sprintf("OLH%s-%d", date.Format("20060102"), serial)
}

// NewInvoiceSheet resolves a print request into a sheet dated today.
// Nothing is validated; absent text falls back to placeholders and
// absent numbers to zero. Line totals are Quantity x Rate while the
// subtotal is the requested Total_Amount.
func NewInvoiceSheet(in SheetInput, company Company, today time.Time, serial int) *InvoiceSheet {
	inStore := in.CustomerType == "In-store"
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	lines := make([]SheetLine, len(in.Items))
	for i, item := range in.Items {
		lines[i] = SheetLine{
			No:          i + 1,
			Description: orDefault(item.Description, "N/A"),
			Quantity:    item.Quantity,
			UnitPrice:   item.Rate,
			Total:       item.Quantity.Mul(item.Rate),
		}
	}

	return &InvoiceSheet{
		Title:           orDefault(in.DocumentType, string(invoice.DocumentInvoice)),
		Number:          SheetNumber(date, serial),
		Date:            date,
		DueDate:         date.AddDate(0, 0, invoice.DueInDays(inStore)),
		PaymentTerm:     invoice.PaymentTermFor(inStore),
		PaymentMethod:   orDefault(in.PaymentMethod, "Not Specified"),
		Salesperson:     company.Salesperson,
		CustomerType:    orDefault(in.CustomerType, "N/A"),
		PurchasingOrder: strings.TrimSpace(in.PurchasingOrder),
		BillTo: BillTo{
			Name:    orDefault(in.CustomerName, "Unknown Customer"),
			Address: orDefault(in.Address, "Unknown"),
			TaxID:   orDefault(in.TaxID, "N/A"),
			Mobile:  orDefault(in.CustomerMobile, "N/A"),
		},
		Lines:     lines,
		Totals:    invoice.ComputeTotals(in.TotalAmount, in.DiscountPercent, in.AdvancePayment),
		Notes:     []string{NoteNotVATInvoice, NoteQuestions},
		PayableTo: payableTo(company),
		Closing:   ClosingLines,
		Company:   company,
		PaperSize: PaperSizeA5,
		Margins:   SheetMargins(),
	}
}

// Filename is the download name of the rendered sheet
func (s *InvoiceSheet) Filename() string {
	return "invoice_" + s.Number + ".pdf"
}

func payableTo(c Company) string {
	name := orDefault(c.BankAccountName, c.Name)
	if name == "" {
		return ""
	}
	return "Please make all cheques payable to " + strings.TrimSuffix(name, ".") + "."
}

func orDefault(s, def string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return def
}
