package invoice

import (
	"context"
	"io"
	"time"

	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// ExportDocument is one document flattened for a spreadsheet
type ExportDocument struct {
	DocumentType    string
	DocumentID      string
	Date            time.Time
	CustomerName    string
	CustomerType    string
	CustomerKey     string
	PurchasingOrder string
	PaymentTerm     string
	PaymentMethod   string
	PaymentStatus   string
	Totals          invoice.Totals
	Items           []ItemResponse
}

// WorkbookWriter renders exported documents to a spreadsheet stream
type WorkbookWriter interface {
	WriteInvoices(w io.Writer, docs []ExportDocument) error
	ContentType() string
	Extension() string
}

// Export writes every document matching the filter through the workbook writer
func (s *Service) Export(ctx context.Context, filter shared.Filter, writer WorkbookWriter, w io.Writer) error {
	filter.PageSize = 0
	invoices, err := s.invoices.FindAll(ctx, filter)
	if err != nil {
		return err
	}
	responses, err := s.populate(ctx, invoices)
	if err != nil {
		return err
	}

	docs := make([]ExportDocument, len(invoices))
	for i, inv := range invoices {
		doc := ExportDocument{
			DocumentType:    string(inv.DocumentType),
			DocumentID:      inv.DocumentID,
			Date:            inv.Date.In(s.opts.Location),
			PurchasingOrder: inv.PurchasingOrder,
			PaymentTerm:     inv.PaymentTerm,
			PaymentMethod:   string(inv.PaymentMethod),
			PaymentStatus:   string(inv.PaymentStatus),
			Totals:          invoice.ComputeTotals(inv.TotalAmount, inv.DiscountPrice, inv.AdvancePayment),
			Items:           responses[i].Items,
		}
		if c := responses[i].Customer.Customer; c != nil {
			doc.CustomerName = c.FullName
			doc.CustomerType = c.CustomerType
			doc.CustomerKey = c.Nickname
			if doc.CustomerKey == "" {
				doc.CustomerKey = c.InstorePhoneNumber
			}
		}
		docs[i] = doc
	}
	return writer.WriteInvoices(w, docs)
}

// ExportFilename names an export taken at t
func ExportFilename(t time.Time, ext string) string {
	return "invoices_" + t.Format("20060102_150405") + ext
}
