// Package export writes invoice listings as spreadsheets.
package export

import (
	"fmt"
	"io"

	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	"github.com/xuri/excelize/v2"
)

const (
	SheetInvoices = "Invoices"
	SheetItems    = "Items"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	invoiceHeaders = []string{
		"Document_ID", "Document_Type", "Date", "Customer", "Customer_Type", "Nickname / Phone",
		"Purchasing_Order", "Payment_Term", "Payment_Method", "Payment_Status",
		"Total_Amount", "Discount (%)", "Discount_Amount", "Net_Total", "Advance_Payment", "Balance_Due",
	}
	invoiceWidths = []float64{26, 12, 12, 24, 22, 18, 16, 14, 16, 14, 14, 12, 14, 14, 15, 14}

	itemHeaders = []string{"Document_ID", "Item_Description", "Quantity", "Rate", "Line_Total"}
	itemWidths  = []float64{26, 40, 10, 14, 14}
)

// XLSXWriter renders documents into a two-sheet workbook: one row per
// document, and one row per line item keyed by Document_ID.
type XLSXWriter struct{}

// NewXLSXWriter creates a new XLSXWriter
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// ContentType is the MIME type of the workbook
func (*XLSXWriter) ContentType() string { return xlsxContentType }

// Extension is the file extension of the workbook
func (*XLSXWriter) Extension() string { return ".xlsx" }

// WriteInvoices streams the workbook to w
func (*XLSXWriter) WriteInvoices(w io.Writer, docs []appinvoice.ExportDocument) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetInvoices); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetItems); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return err
	}

	if err := writeHeader(f, SheetInvoices, invoiceHeaders, invoiceWidths, headerStyle); err != nil {
		return err
	}
	if err := writeHeader(f, SheetItems, itemHeaders, itemWidths, headerStyle); err != nil {
		return err
	}

	itemRow := 2
	for i, doc := range docs {
		row := i + 2
		t := doc.Totals
		values := []interface{}{
			doc.DocumentID,
			doc.DocumentType,
			doc.Date.Format("2006-01-02"),
			doc.CustomerName,
			doc.CustomerType,
			doc.CustomerKey,
			doc.PurchasingOrder,
			doc.PaymentTerm,
			doc.PaymentMethod,
			doc.PaymentStatus,
			t.Subtotal.InexactFloat64(),
			t.DiscountPercent.InexactFloat64(),
			t.DiscountAmount.InexactFloat64(),
			t.NetTotal.InexactFloat64(),
			t.Paid.InexactFloat64(),
			t.BalanceDue.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetInvoices, cell("A", row), &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetInvoices, cell("K", row), cell("P", row), moneyStyle); err != nil {
			return err
		}

		for _, item := range doc.Items {
			values := []interface{}{
				doc.DocumentID,
				item.ItemDescription,
				item.Quantity,
				item.Rate.InexactFloat64(),
				item.LineTotal.InexactFloat64(),
			}
			if err := f.SetSheetRow(SheetItems, cell("A", itemRow), &values); err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetItems, cell("D", itemRow), cell("E", itemRow), moneyStyle); err != nil {
				return err
			}
			itemRow++
		}
	}

	if err := f.SetPanes(SheetInvoices, frozenHeader()); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64, style int) error {
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell(col, 1), h); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetCellStyle(sheet, "A1", cell(last, 1), style)
}

func frozenHeader() *excelize.Panes {
	return &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

var _ appinvoice.WorkbookWriter = (*XLSXWriter)(nil)
