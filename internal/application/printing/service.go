package printing

import (
	"context"
	"errors"
	"math/rand/v2"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/printing"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	infra "github.com/orgalaser/invoicing/internal/infrastructure/printing"
	"github.com/orgalaser/invoicing/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const contentTypePDF = "application/pdf"

var (
	ErrInvoicePDFFailed = shared.NewDomainError("RENDER_FAILED", "Failed to generate invoice PDF")
	ErrLabelPDFFailed   = shared.NewDomainError("RENDER_FAILED", "Failed to generate barcode PDF")
	ErrProductNotFound  = shared.NewDomainError("NOT_FOUND", "Product not found. Please check the product ID and try again.")
)

// DocumentArchive keeps a copy of every printed document
type DocumentArchive interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// Option configures the Service
type Option func(*Service)

// WithClock replaces the wall clock used to date sheets
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSerial replaces the draw of the invoice number suffix, in [0, n)
func WithSerial(intn func(n int) int) Option {
	return func(s *Service) { s.intn = intn }
}

// WithLocation sets the timezone of the printed dates
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

// WithMetrics records render durations
func WithMetrics(m *telemetry.DocumentMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// Service renders printable invoices and product labels
type Service struct {
	sheets   infra.SheetRenderer
	labels   infra.LabelRenderer
	archive  DocumentArchive
	products product.ProductRepository
	company  printing.Company
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
	intn     func(int) int
	metrics  *telemetry.DocumentMetrics
}

// NewService creates a new printing Service. archive may be nil.
func NewService(
	sheets infra.SheetRenderer,
	labels infra.LabelRenderer,
	archive DocumentArchive,
	products product.ProductRepository,
	company printing.Company,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		sheets:   sheets,
		labels:   labels,
		archive:  archive,
		products: products,
		company:  company,
		location: time.Local,
		logger:   logger,
		now:      time.Now,
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Print renders a one-page A5 invoice from a freeform request dated today.
// The number is OLH{YYYYMMDD}-{0..99}; it is not stored and may repeat.
func (s *Service) Print(ctx context.Context, req PrintRequest) (*Document, error) {
	sheet := printing.NewInvoiceSheet(req.sheetInput(), s.company, s.now().In(s.location), s.intn(100))

	ctx, span := telemetry.StartServiceSpan(ctx, "printing", "print", telemetry.AttrSheetNumber.String(sheet.Number))
	defer span.End()

	started := time.Now()
	result, err := s.sheets.Render(ctx, sheet)
	s.metrics.PDFRendered(ctx, "invoice", time.Since(started), err)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to render invoice",
			zap.String("number", sheet.Number),
			zap.Error(err))
		return nil, ErrInvoicePDFFailed
	}

	doc := &Document{
		Filename:    sheet.Filename(),
		ContentType: contentTypePDF,
		Data:        result.PDFData,
	}
	s.archiveCopy(ctx, path.Join("invoices", sheet.Date.Format("2006/01/02"), doc.Filename), doc)

	s.logger.Info("Invoice printed",
		zap.String("number", sheet.Number),
		zap.Int("items", len(sheet.Lines)),
		zap.Duration("render", result.RenderDuration))
	return doc, nil
}

// Label renders the Code128 barcode label of a product
func (s *Service) Label(ctx context.Context, productID uuid.UUID) (*Document, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	label, err := printing.NewLabel(p)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "printing", "label", telemetry.AttrBarcodeID.String(label.BarcodeID))
	defer span.End()

	started := time.Now()
	result, err := s.labels.RenderLabel(ctx, label)
	s.metrics.PDFRendered(ctx, "label", time.Since(started), err)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to render label",
			zap.String("barcode_id", label.BarcodeID),
			zap.Error(err))
		return nil, ErrLabelPDFFailed
	}
	return &Document{
		Filename:    label.Filename(),
		ContentType: contentTypePDF,
		Data:        result.PDFData,
	}, nil
}

// archiveCopy stores the document; a failed upload is logged and does not fail the print.
func (s *Service) archiveCopy(ctx context.Context, key string, doc *Document) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Upload(ctx, key, doc.Data, doc.ContentType); err != nil {
		s.logger.Warn("Failed to archive printed document",
			zap.String("key", key),
			zap.Error(err))
	}
}
