package printing

import (
	"bytes"
	"context"
	"time"

	"github.com/orgalaser/invoicing/internal/domain/printing"
)

// RenderResult contains the output from PDF rendering
type RenderResult struct {
	// PDFData is the raw PDF file content
	PDFData []byte
	// PageCount is the number of pages in the PDF
	PageCount int
	// RenderDuration is how long the rendering took
	RenderDuration time.Duration
}

// SheetRenderer turns an invoice sheet into a PDF
type SheetRenderer interface {
	Render(ctx context.Context, sheet *printing.InvoiceSheet) (*RenderResult, error)
	// Close releases any resources held by the renderer
	Close() error
}

// LabelRenderer turns a barcode label into a PDF
type LabelRenderer interface {
	RenderLabel(ctx context.Context, label *printing.Label) (*RenderResult, error)
}

// RenderError represents an error during PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeInvalidInput  = "INVALID_RENDER_INPUT"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// estimatePageCount counts page objects in a PDF
func estimatePageCount(pdf []byte) int {
	n := bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
	if n < 1 {
		return 1
	}
	return n
}

func cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return NewRenderError(ErrCodeRenderTimeout, "PDF rendering was cancelled", err)
	}
	return nil
}
