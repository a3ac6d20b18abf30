package invoice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultDocumentIDMaxAttempts bounds create retries on Document_ID collisions
const DefaultDocumentIDMaxAttempts = 5

var (
	ErrInvoiceNotFound    = shared.NewDomainError("NOT_FOUND", "Invoice/Quotation not found. Please check the ID and try again.")
	ErrCustomerNotFound   = shared.NewDomainError("NOT_FOUND", "Customer not found. Please check the customer ID.")
	ErrDocumentIDConflict = shared.NewDomainError("CONFLICT", "This Document ID is already in use. Please try again.")
	ErrInvalidDate        = shared.NewDomainError("INVALID_DATE", `Invalid date format provided. Please use a valid date string (e.g., "2025-05-27").`)
)

// Options tunes document numbering
type Options struct {
	// Location is the timezone whose calendar day scopes Document_ID numbering
	Location              *time.Location
	DocumentIDMaxAttempts int
	// WarnLineTotalMismatch logs lines whose Line_Total differs from Quantity x Rate
	WarnLineTotalMismatch bool
	// Metrics is optional
	Metrics *telemetry.DocumentMetrics
}

// Service handles invoice and quotation use cases
type Service struct {
	invoices  invoice.InvoiceRepository
	customers customer.CustomerRepository
	products  product.ProductRepository
	txScope   unitofwork.TransactionScope
	sequence  SequenceAllocator
	opts      Options
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new invoice Service
func NewService(
	invoices invoice.InvoiceRepository,
	customers customer.CustomerRepository,
	products product.ProductRepository,
	txScope unitofwork.TransactionScope,
	sequence SequenceAllocator,
	opts Options,
	logger *zap.Logger,
) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.DocumentIDMaxAttempts < 1 {
		opts.DocumentIDMaxAttempts = DefaultDocumentIDMaxAttempts
	}
	if sequence == nil {
		sequence = DatabaseSequence{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		invoices:  invoices,
		customers: customers,
		products:  products,
		txScope:   txScope,
		sequence:  sequence,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// Create numbers and stores a new invoice or quotation.
// Total_Amount is recomputed from the line totals; Payment_Term follows the customer type.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	date, err := s.parseDate(req.InvoiceDateInput)
	if err != nil {
		return nil, err
	}

	rawID := strings.TrimSpace(req.CustomerID)
	customerID, idErr := uuid.Parse(rawID)
	if idErr != nil && rawID != "" {
		// a malformed id cannot name a stored customer
		customerID = uuid.Max
	}
	draft := invoice.Draft{
		DocumentType:    invoice.DocumentType(req.DocumentType),
		CustomerID:      customerID,
		Date:            date,
		Items:           toItemDrafts(req.Items),
		PurchasingOrder: req.PurchasingOrder,
		PaymentMethod:   invoice.PaymentMethod(req.PaymentMethod),
		DiscountPrice:   valueOrZero(req.DiscountPrice),
		AdvancePayment:  valueOrZero(req.AdvancePayment),
	}
	if err := invoice.Validate(draft); err != nil {
		return nil, err
	}
	if customerID == uuid.Max {
		return nil, ErrCustomerNotFound
	}

	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	from, to := invoice.DayBounds(date, s.opts.Location)
	for attempt := 1; attempt <= s.opts.DocumentIDMaxAttempts; attempt++ {
		var created *invoice.Invoice
		err := s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
			seq, err := s.sequence.Next(ctx, draft.DocumentType, from, func(ctx context.Context) (int64, error) {
				return repos.Invoices().CountByTypeBetween(ctx, draft.DocumentType, from, to)
			})
			if err != nil {
				return err
			}
			documentID := invoice.FormatDocumentID(draft.DocumentType, date.In(s.opts.Location), seq)
			inv, err := invoice.NewInvoice(draft, documentID, c.IsInStore())
			if err != nil {
				return err
			}
			if err := repos.Invoices().Save(ctx, inv); err != nil {
				return err
			}
			created = inv
			return nil
		})
		if err == nil {
			s.warnMismatches(created)
			s.opts.Metrics.DocumentCreated(ctx, string(created.DocumentType))
			resp := ToInvoiceResponse(created)
			return &resp, nil
		}
		if !errors.Is(err, shared.ErrAlreadyExists) {
			return nil, err
		}
		s.logger.Warn("Document ID collision, retrying",
			zap.String("document_type", string(draft.DocumentType)),
			zap.Int("attempt", attempt))
	}
	return nil, ErrDocumentIDConflict
}

// List returns documents matching the filter with customers populated
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]InvoiceResponse, int64, error) {
	invoices, err := s.invoices.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoices.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.populate(ctx, invoices)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByID returns a document with its customer populated
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	out, err := s.populate(ctx, []invoice.Invoice{*inv})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// Search finds documents whose customer nickname and phone contain the given
// fragments, ignoring case. Empty fragments match everything.
func (s *Service) Search(ctx context.Context, nickname, phone string) ([]InvoiceResponse, error) {
	invoices, err := s.invoices.Search(ctx, invoice.SearchCriteria{Nickname: nickname, Phone: phone})
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, invoices)
}

// UpdatePayment changes Payment_Status and/or Advance_Payment.
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*InvoiceResponse, error) {
	var updated *invoice.Invoice
	err := s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
		inv, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		var status *invoice.PaymentStatus
		if req.PaymentStatus != "" {
			ps := invoice.PaymentStatus(req.PaymentStatus)
			status = &ps
		}
		if err := inv.UpdatePayment(status, req.AdvancePayment); err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(updated)
	return &resp, nil
}

// populate attaches customers to responses with one batched lookup.
// Documents whose customer is gone keep the bare id.
func (s *Service) populate(ctx context.Context, invoices []invoice.Invoice) ([]InvoiceResponse, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, inv := range invoices {
		if !seen[inv.CustomerID] {
			seen[inv.CustomerID] = true
			ids = append(ids, inv.CustomerID)
		}
	}
	customers, err := s.customers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*appcustomer.CustomerResponse, len(customers))
	for i := range customers {
		resp := appcustomer.ToCustomerResponse(&customers[i])
		byID[customers[i].ID] = &resp
	}

	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
		out[i].Customer.Customer = byID[invoices[i].CustomerID]
	}
	return out, nil
}

// parseDate accepts YYYY-MM-DD in the numbering timezone or RFC 3339; empty means now.
func (s *Service) parseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return s.now().In(s.opts.Location), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", input, s.opts.Location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.In(s.opts.Location), nil
	}
	return time.Time{}, ErrInvalidDate
}

func (s *Service) warnMismatches(inv *invoice.Invoice) {
	if !s.opts.WarnLineTotalMismatch {
		return
	}
	if lines := inv.MismatchedLines(); len(lines) > 0 {
		s.logger.Warn("Line_Total differs from Quantity x Rate",
			zap.String("document_id", inv.DocumentID),
			zap.Ints("items", lines))
	}
}

func toItemDrafts(items []ItemRequest) []invoice.ItemDraft {
	out := make([]invoice.ItemDraft, len(items))
	for i, item := range items {
		out[i] = invoice.ItemDraft{
			Description: item.ItemDescription,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			LineTotal:   item.LineTotal,
		}
	}
	return out
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func notFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return ErrInvoiceNotFound
	}
	return err
}
