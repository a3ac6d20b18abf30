package printing

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/orgalaser/invoicing/internal/domain/printing"
	"go.uber.org/zap"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 3.6 // mm, fits 8pt text

	labelBarcodeWidth  = 70.6 // mm, 200pt
	labelBarcodeHeight = 17.6 // mm, 50pt
)

// FPDFRenderer draws invoice sheets and barcode labels with gofpdf core fonts.
// Text is converted to cp1252.
type FPDFRenderer struct {
	logger *zap.Logger
}

// NewFPDFRenderer creates a gofpdf renderer
func NewFPDFRenderer(logger *zap.Logger) *FPDFRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FPDFRenderer{logger: logger}
}

// Render draws the sheet on a single page of its paper size
func (r *FPDFRenderer) Render(ctx context.Context, sheet *printing.InvoiceSheet) (*RenderResult, error) {
	if sheet == nil {
		return nil, NewRenderError(ErrCodeInvalidInput, "invoice sheet is nil", nil)
	}
	if err := cancelled(ctx); err != nil {
		return nil, err
	}
	start := time.Now()

	pdf := newDocument(sheet.PaperSize, sheet.Margins)
	pdf.SetTitle(sheet.Title+" "+sheet.Number, true)
	pdf.AddPage()

	d := newSheetDrawer(pdf, sheet.PaperSize, sheet.Margins)
	d.header(sheet)
	d.details(sheet)
	d.billTo(sheet)
	d.items(sheet)
	d.totals(sheet)
	d.notes(sheet)
	d.bank(sheet)
	d.closing(sheet)

	return r.output(pdf, "invoice", start)
}

// RenderLabel draws a Code128 symbol with its value and the Product_ID caption
func (r *FPDFRenderer) RenderLabel(ctx context.Context, label *printing.Label) (*RenderResult, error) {
	if label == nil {
		return nil, NewRenderError(ErrCodeInvalidInput, "label is nil", nil)
	}
	if err := cancelled(ctx); err != nil {
		return nil, err
	}
	start := time.Now()

	png, err := BarcodePNG(label.BarcodeID, 800, 200)
	if err != nil {
		return nil, err
	}

	pdf := newDocument(label.PaperSize, label.Margins)
	pdf.SetTitle("Barcode "+label.BarcodeID, true)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("barcode", opts, bytes.NewReader(png))

	d := newSheetDrawer(pdf, label.PaperSize, label.Margins)
	pageWidth, _ := label.PaperSize.Dimensions()
	y := label.Margins.Top + 7
	pdf.ImageOptions("barcode", (pageWidth-labelBarcodeWidth)/2, y, labelBarcodeWidth, labelBarcodeHeight, false, opts, 0, "")
	pdf.SetXY(d.left, y+labelBarcodeHeight+1)
	d.centered("", 9, label.BarcodeID)
	pdf.Ln(3.5)
	d.centered("", 12, label.ProductID)

	return r.output(pdf, "label", start)
}

// Close releases nothing; gofpdf holds no resources between renders
func (r *FPDFRenderer) Close() error {
	return nil
}

func (r *FPDFRenderer) output(pdf *gofpdf.Fpdf, kind string, start time.Time) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("gofpdf rendering failed", zap.String("kind", kind), zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "gofpdf output failed", err)
	}

	result := &RenderResult{
		PDFData:        buf.Bytes(),
		PageCount:      pdf.PageCount(),
		RenderDuration: time.Since(start),
	}
	r.logger.Debug("PDF rendered",
		zap.String("kind", kind),
		zap.Int("bytes", len(result.PDFData)),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.RenderDuration))
	return result, nil
}

func newDocument(size printing.PaperSize, m printing.Margins) *gofpdf.Fpdf {
	w, h := size.Dimensions()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(true, m.Bottom)
	return pdf
}

// sheetDrawer lays out text blocks top to bottom
type sheetDrawer struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	left  float64
	width float64
}

func newSheetDrawer(pdf *gofpdf.Fpdf, size printing.PaperSize, m printing.Margins) *sheetDrawer {
	w, _ := size.Dimensions()
	return &sheetDrawer{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		left:  m.Left,
		width: w - m.Left - m.Right,
	}
}

func (d *sheetDrawer) font(style string, size float64) {
	d.pdf.SetFont(fontFamily, style, size)
}

func (d *sheetDrawer) centered(style string, size float64, text string) {
	if text == "" {
		return
	}
	d.font(style, size)
	d.pdf.SetX(d.left)
	d.pdf.MultiCell(d.width, size*0.45, d.tr(text), "", "C", false)
}

func (d *sheetDrawer) line(text string) {
	d.pdf.SetX(d.left)
	d.pdf.MultiCell(d.width, lineHeight, d.tr(text), "", "L", false)
}

// columns prints left- and right-aligned text side by side
func (d *sheetDrawer) columns(left, right []string) {
	half := d.width / 2
	rows := max(len(left), len(right))
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		d.pdf.SetX(d.left)
		d.pdf.CellFormat(half, lineHeight, d.tr(l), "", 0, "L", false, 0, "")
		d.pdf.CellFormat(half, lineHeight, d.tr(r), "", 1, "R", false, 0, "")
	}
}

func (d *sheetDrawer) header(s *printing.InvoiceSheet) {
	c := s.Company
	d.centered("B", 12, c.Name)
	d.centered("B", 8, c.RegistrationNo)
	d.pdf.Ln(1.5)
	d.centered("", 8, c.Address)
	if c.Phone != "" {
		d.centered("", 8, "Tel: "+c.Phone)
	}
	if c.Email != "" {
		d.centered("", 8, "Email: "+c.Email)
	}
	d.pdf.Ln(3)
	d.centered("B", 12, s.Title)
	d.pdf.Ln(1.5)
}

func (d *sheetDrawer) details(s *printing.InvoiceSheet) {
	left := []string{
		"Invoice Number: " + s.Number,
		"Invoice Date: " + formatDate(s.Date),
		"Due Date: " + formatDate(s.DueDate),
	}
	if s.PurchasingOrder != "" {
		left = append(left, "Purchasing Order: "+s.PurchasingOrder)
	}
	right := []string{
		"Payment Term: " + s.PaymentTerm,
		"Payment Method: " + s.PaymentMethod,
		"Salesperson: " + s.Salesperson,
		"Customer Type: " + s.CustomerType,
	}
	d.font("", 8)
	d.columns(left, right)
	d.pdf.Ln(3)
}

func (d *sheetDrawer) billTo(s *printing.InvoiceSheet) {
	d.font("B", 8)
	d.line("Billing Address")
	d.font("", 8)
	d.columns(
		[]string{s.BillTo.Name, s.BillTo.Address},
		[]string{"Customer Mobile: " + s.BillTo.Mobile, "TAX ID: " + s.BillTo.TaxID},
	)
	d.pdf.Ln(3)
}

type column struct {
	width float64
	align string
	wrap  bool
}

func (d *sheetDrawer) itemColumns() []column {
	const no, qty, price, total = 8.0, 18.0, 26.0, 26.0
	return []column{
		{width: no, align: "L"},
		{width: d.width - no - qty - price - total, align: "L", wrap: true},
		{width: qty, align: "C"},
		{width: price, align: "C"},
		{width: total, align: "C"},
	}
}

// row prints one table row, growing to fit wrapped columns
func (d *sheetDrawer) row(cols []column, values []string) {
	lines := 1
	for i, c := range cols {
		if c.wrap {
			lines = max(lines, len(d.pdf.SplitLines([]byte(d.tr(values[i])), c.width)))
		}
	}
	x, y := d.left, d.pdf.GetY()
	for i, c := range cols {
		d.pdf.SetXY(x, y)
		if c.wrap {
			d.pdf.MultiCell(c.width, lineHeight, d.tr(values[i]), "", c.align, false)
		} else {
			d.pdf.CellFormat(c.width, lineHeight, d.tr(values[i]), "", 0, c.align, false, 0, "")
		}
		x += c.width
	}
	d.pdf.SetXY(d.left, y+float64(lines)*lineHeight+1.5)
}

func (d *sheetDrawer) rule() {
	y := d.pdf.GetY()
	d.pdf.Line(d.left, y, d.left+d.width, y)
}

func (d *sheetDrawer) items(s *printing.InvoiceSheet) {
	cols := d.itemColumns()

	d.rule()
	d.pdf.Ln(1.5)
	d.font("B", 8)
	d.row(cols, []string{"#", "Name", "Quantity", "Unit Price", "Total"})
	d.rule()
	d.pdf.Ln(1.5)

	d.font("", 7)
	for _, l := range s.Lines {
		d.row(cols, []string{
			strconv.Itoa(l.No),
			l.Description,
			formatQuantity(l.Quantity),
			FormatLKR(l.UnitPrice),
			FormatLKR(l.Total),
		})
	}
	d.rule()
	d.pdf.Ln(4)
}

func (d *sheetDrawer) totals(s *printing.InvoiceSheet) {
	const labelW, valueW = 26.0, 34.0
	x := d.left + d.width - labelW - valueW
	rows := [][2]string{
		{"Subtotal:", FormatLKR(s.Totals.Subtotal)},
		{"Discount:", formatPercent(s.Totals.DiscountPercent)},
		{"Total:", FormatLKR(s.Totals.NetTotal)},
		{"Paid:", FormatLKR(s.Totals.Paid)},
	}
	for _, r := range rows {
		d.totalRow(x, labelW, valueW, r[0], r[1])
	}

	d.pdf.SetAlpha(0.3, "Normal")
	y := d.pdf.GetY() + 0.5
	d.pdf.Line(x, y, x+labelW+valueW, y)
	d.pdf.SetAlpha(1, "Normal")
	d.pdf.Ln(1.5)
	d.totalRow(x, labelW, valueW, "Balance Due:", FormatLKR(s.Totals.BalanceDue))
	d.pdf.SetAlpha(0.3, "Normal")
	y = d.pdf.GetY() + 0.5
	d.pdf.Line(x, y, x+labelW+valueW, y)
	d.pdf.Line(x, y+1, x+labelW+valueW, y+1)
	d.pdf.SetAlpha(1, "Normal")
	d.pdf.Ln(4)
}

func (d *sheetDrawer) totalRow(x, labelW, valueW float64, label, value string) {
	d.pdf.SetX(x)
	d.font("B", 8)
	d.pdf.CellFormat(labelW, lineHeight+1, d.tr(label), "", 0, "L", false, 0, "")
	d.font("", 8)
	d.pdf.CellFormat(valueW, lineHeight+1, d.tr(value), "", 1, "R", false, 0, "")
}

func (d *sheetDrawer) notes(s *printing.InvoiceSheet) {
	for i, note := range s.Notes {
		if i == 0 {
			d.font("I", 8)
			d.pdf.SetTextColor(200, 0, 0)
			d.line(note)
			d.pdf.SetTextColor(0, 0, 0)
			continue
		}
		d.font("I", 7)
		d.line(note)
	}
	d.pdf.Ln(3)
}

func (d *sheetDrawer) bank(s *printing.InvoiceSheet) {
	c := s.Company
	d.font("", 7)
	for _, kv := range [][2]string{
		{"Bank Name: ", c.BankName},
		{"Account Name: ", c.BankAccountName},
		{"Account Number: ", c.BankAccountNumber},
		{"Bank Code: ", c.BankCode},
	} {
		if kv[1] != "" {
			d.line(kv[0] + kv[1])
		}
	}
	d.pdf.Ln(3)
}

func (d *sheetDrawer) closing(s *printing.InvoiceSheet) {
	d.centered("B", 8, s.PayableTo)
	d.pdf.Ln(2)
	for _, l := range s.Closing {
		d.centered("", 7, l)
	}
}

var (
	_ SheetRenderer = (*FPDFRenderer)(nil)
	_ LabelRenderer = (*FPDFRenderer)(nil)
)
