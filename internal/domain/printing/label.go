package printing

import (
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// Label is a printable Code128 barcode with its Product_ID caption
type Label struct {
	BarcodeID string
	ProductID string
	PaperSize PaperSize
	Margins   Margins
}

// NewLabel builds the label of a stored product
func NewLabel(p *product.Product) (*Label, error) {
	if p == nil || strings.TrimSpace(p.BarcodeID) == "" {
		return nil, shared.NewDomainError("INVALID_BARCODE", "This product has no Barcode ID to print.")
	}
	return &Label{
		BarcodeID: p.BarcodeID,
		ProductID: p.ProductID,
		PaperSize: PaperSizeA4,
		Margins:   LabelMargins(),
	}, nil
}

// Filename is the download name of the rendered label
func (l *Label) Filename() string {
	return "barcode_" + l.BarcodeID + ".pdf"
}
