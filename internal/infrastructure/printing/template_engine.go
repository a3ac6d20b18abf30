package printing

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/printing"
)

//go:embed templates/*.html
var templateFS embed.FS

const sheetTemplate = "invoice_a5.html"

// TemplateEngine fills the HTML invoice template used by the chromedp engine
type TemplateEngine struct {
	tmpl *template.Template
}

// NewTemplateEngine parses the embedded templates
func NewTemplateEngine() (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"formatLKR":      FormatLKR,
		"formatPercent":  formatPercent,
		"formatQuantity": formatQuantity,
		"formatDate":     formatDate,
		"upper":          strings.ToUpper,
	}
	tmpl, err := template.New("sheets").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to parse templates", err)
	}
	return &TemplateEngine{tmpl: tmpl}, nil
}

// RenderSheet returns the complete HTML document of a sheet
func (e *TemplateEngine) RenderSheet(sheet *printing.InvoiceSheet) (string, error) {
	if sheet == nil {
		return "", NewRenderError(ErrCodeInvalidInput, "invoice sheet is nil", nil)
	}
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, sheetTemplate, sheet); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}
	return buf.String(), nil
}
