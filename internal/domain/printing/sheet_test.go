package printing

import (
	"testing"
	"time"

	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 5, 27, 16, 45, 0, 0, time.UTC)

func TestSheetNumber(t *testing.T) {
	assert.Equal(t, "OLH20250527-7", SheetNumber(today, 7))
	assert.Equal(t, "OLH20250527-99", SheetNumber(today, 99))
}

func TestNewInvoiceSheet_Defaults(t *testing.T) {
	sheet := NewInvoiceSheet(SheetInput{}, Company{Salesperson: "Mr. Yuvindu"}, today, 3)

	assert.Equal(t, "Invoice", sheet.Title)
	assert.Equal(t, "OLH20250527-3", sheet.Number)
	assert.Equal(t, "invoice_OLH20250527-3.pdf", sheet.Filename())
	assert.Equal(t, "Unknown Customer", sheet.BillTo.Name)
	assert.Equal(t, "Unknown", sheet.BillTo.Address)
	assert.Equal(t, "N/A", sheet.BillTo.TaxID)
	assert.Equal(t, "N/A", sheet.BillTo.Mobile)
	assert.Equal(t, "Not Specified", sheet.PaymentMethod)
	assert.Equal(t, "Mr. Yuvindu", sheet.Salesperson)
	assert.Empty(t, sheet.PurchasingOrder)
	assert.True(t, sheet.Totals.BalanceDue.IsZero())
	assert.Equal(t, []string{NoteNotVATInvoice, NoteQuestions}, sheet.Notes)
	assert.Equal(t, PaperSizeA5, sheet.PaperSize)
}

func TestNewInvoiceSheet_DueDate(t *testing.T) {
	t.Run("in-store is due today", func(t *testing.T) {
		sheet := NewInvoiceSheet(SheetInput{CustomerType: "In-store"}, Company{}, today, 0)
		assert.Equal(t, "2025-05-27", sheet.DueDate.Format("2006-01-02"))
		assert.Equal(t, "None", sheet.PaymentTerm)
	})

	t.Run("others get fifteen days", func(t *testing.T) {
		sheet := NewInvoiceSheet(SheetInput{CustomerType: "Production"}, Company{}, today, 0)
		assert.Equal(t, "2025-06-11", sheet.DueDate.Format("2006-01-02"))
		assert.Equal(t, "15 days", sheet.PaymentTerm)
	})
}

func TestNewInvoiceSheet_LinesAndTotals(t *testing.T) {
	in := SheetInput{
		DocumentType: "Quotation",
		Items: []SheetItem{
			{Description: "Tag", Quantity: decimal.NewFromInt(4), Rate: decimal.NewFromInt(250)},
			{Quantity: decimal.NewFromInt(2)},
		},
		TotalAmount:     decimal.NewFromInt(2000),
		DiscountPercent: decimal.NewFromInt(10),
		AdvancePayment:  decimal.NewFromInt(500),
	}

	sheet := NewInvoiceSheet(in, Company{}, today, 0)

	require.Len(t, sheet.Lines, 2)
	assert.Equal(t, "Quotation", sheet.Title)
	assert.Equal(t, 1, sheet.Lines[0].No)
	assert.True(t, sheet.Lines[0].Total.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "N/A", sheet.Lines[1].Description)
	assert.True(t, sheet.Lines[1].Total.IsZero())

	assert.True(t, sheet.Totals.Subtotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, sheet.Totals.NetTotal.Equal(decimal.NewFromInt(1800)))
	assert.True(t, sheet.Totals.BalanceDue.Equal(decimal.NewFromInt(1300)))
}

func TestNewLabel(t *testing.T) {
	p := &product.Product{ProductID: "SLC-JSmith-Leather-001", BarcodeID: "ORGA-SLC-0042"}

	label, err := NewLabel(p)

	require.NoError(t, err)
	assert.Equal(t, "barcode_ORGA-SLC-0042.pdf", label.Filename())
	assert.Equal(t, "SLC-JSmith-Leather-001", label.ProductID)

	_, err = NewLabel(&product.Product{ProductID: "x"})
	assert.Error(t, err)
}

func TestNewInvoiceSheet_PayableTo(t *testing.T) {
	sheet := NewInvoiceSheet(SheetInput{}, Company{Name: "Orgalaser", BankAccountName: "Orgalaser Pvt. Ltd."}, today, 0)
	assert.Equal(t, "Please make all cheques payable to Orgalaser Pvt. Ltd.", sheet.PayableTo)

	sheet = NewInvoiceSheet(SheetInput{}, Company{}, today, 0)
	assert.Empty(t, sheet.PayableTo)
	assert.Equal(t, ClosingLines, sheet.Closing)
}
