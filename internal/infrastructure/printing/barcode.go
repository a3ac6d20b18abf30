package printing

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// BarcodePNG encodes value as a Code128 symbol scaled to width x height pixels
func BarcodePNG(value string, width, height int) ([]byte, error) {
	if value == "" {
		return nil, NewRenderError(ErrCodeInvalidInput, "barcode value is empty", nil)
	}
	symbol, err := code128.Encode(value)
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidInput, "cannot encode barcode "+value, err)
	}
	scaled, err := barcode.Scale(symbol, width, height)
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "cannot scale barcode "+value, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "cannot encode barcode image", err)
	}
	return buf.Bytes(), nil
}
