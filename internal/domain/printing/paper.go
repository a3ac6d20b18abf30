package printing

// PaperSize represents the paper size for printing
type PaperSize string

const (
	PaperSizeA4 PaperSize = "A4" // 210mm x 297mm
	PaperSizeA5 PaperSize = "A5" // 148mm x 210mm
)

// IsValid checks if the PaperSize is a valid value
func (p PaperSize) IsValid() bool {
	return p == PaperSizeA4 || p == PaperSizeA5
}

// Dimensions returns the paper dimensions in millimeters (width, height)
func (p PaperSize) Dimensions() (width, height float64) {
	if p == PaperSizeA5 {
		return 148, 210
	}
	return 210, 297
}

// Margins represents the page margins in millimeters
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns equal margins on every side
func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

// SheetMargins are the margins of the invoice sheet, about 15pt
func SheetMargins() Margins {
	return UniformMargins(5.3)
}

// LabelMargins are the margins of a barcode label page, about 20pt
func LabelMargins() Margins {
	return UniformMargins(7)
}
