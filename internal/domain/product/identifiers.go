package product

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/shared"
)

const (
	// LaserCuttingID is both the Product_ID and the Barcode_ID of the laser cutting service.
	LaserCuttingID = "LC"

	barcodeOrgPrefix = "ORGA-"
	// BarcodeSpace is the number of distinct random barcode suffixes per category.
	BarcodeSpace = 10000
)

var autoIDPattern = regexp.MustCompile(`^\d{4,}$`)

// BarcodePrefix returns the category code used in barcodes and product IDs
func BarcodePrefix(c Category) string {
	switch c {
	case CategoryShoeLaserCutting:
		return "SLC"
	case CategoryWeddingInvitations:
		return "WI"
	case CategoryLaserCutting:
		return LaserCuttingID
	}
	return ""
}

// FormatBarcode builds ORGA-{prefix}-{dddd} from a draw in [0, BarcodeSpace).
// Laser cutting always gets the constant LC.
func FormatBarcode(c Category, n int) string {
	if c == CategoryLaserCutting {
		return LaserCuttingID
	}
	return fmt.Sprintf("%s%s-%04d", barcodeOrgPrefix, BarcodePrefix(c), n)
}

// CategoryOfBarcode resolves the category encoded in a scanned barcode
func CategoryOfBarcode(barcodeID string) (Category, bool) {
	switch {
	case barcodeID == LaserCuttingID:
		return CategoryLaserCutting, true
	case strings.HasPrefix(barcodeID, barcodeOrgPrefix+"WI-"):
		return CategoryWeddingInvitations, true
	case strings.HasPrefix(barcodeID, barcodeOrgPrefix+"SLC-"):
		return CategoryShoeLaserCutting, true
	}
	return "", false
}

// NextAutoGeneratedID returns the zero-padded successor of the current maximum
// wedding invitation sequence; an empty maximum starts at 0001.
func NextAutoGeneratedID(currentMax string) (string, error) {
	if currentMax == "" {
		return "0001", nil
	}
	n, err := strconv.Atoi(currentMax)
	if err != nil || n < 0 {
		return "", shared.NewDomainError("INVALID_AUTO_ID", fmt.Sprintf("Stored Auto-generated ID %q is not numeric", currentMax))
	}
	return fmt.Sprintf("%04d", n+1), nil
}
