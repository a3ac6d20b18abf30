package product

import (
	"fmt"
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category is the product line a product belongs to
type Category string

const (
	CategoryShoeLaserCutting   Category = "Shoe Laser Cutting"
	CategoryWeddingInvitations Category = "Wedding Invitations"
	CategoryLaserCutting       Category = "Laser Cutting"
)

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryShoeLaserCutting, CategoryWeddingInvitations, CategoryLaserCutting:
		return true
	}
	return false
}

// IsPriced reports whether products of this category carry their own price
func (c Category) IsPriced() bool {
	return c == CategoryShoeLaserCutting || c == CategoryWeddingInvitations
}

// MaterialType is the sheet material a product is cut from
type MaterialType string

const (
	MaterialAcrylic MaterialType = "Acrylic"
	MaterialLeather MaterialType = "Leather"
	MaterialRexine  MaterialType = "Rexine"
	MaterialWood    MaterialType = "Wood"
	MaterialPaper   MaterialType = "Paper"
)

// IsValid reports whether m is a known material
func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialAcrylic, MaterialLeather, MaterialRexine, MaterialWood, MaterialPaper:
		return true
	}
	return false
}

// ProductType is the kind of wedding stationery item
type ProductType string

const (
	ProductTypeInvitationCard ProductType = "Invitation Card"
	ProductTypeCakeBox        ProductType = "Cake Box"
	ProductTypeTag            ProductType = "Tag"
)

// IsValid reports whether t is a known product type
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeInvitationCard, ProductTypeCakeBox, ProductTypeTag:
		return true
	}
	return false
}

// StickerOption says whether a wedding invitation carries a sticker
type StickerOption string

const (
	WithSticker    StickerOption = "With Sticker"
	WithoutSticker StickerOption = "Without Sticker"
)

// IsValid reports whether o is a known sticker option
func (o StickerOption) IsValid() bool {
	return o == WithSticker || o == WithoutSticker
}

// StickerType is the sticker finish
type StickerType string

const (
	StickerNormal  StickerType = "Normal"
	StickerGlitter StickerType = "Glitter"
)

// IsValid reports whether t is a known sticker finish
func (t StickerType) IsValid() bool {
	return t == StickerNormal || t == StickerGlitter
}

// StickerColor is the sticker colour
type StickerColor string

const (
	StickerGold   StickerColor = "Gold"
	StickerSilver StickerColor = "Silver"
	StickerGreen  StickerColor = "Green"
	StickerRed    StickerColor = "Red"
	StickerBlue   StickerColor = "Blue"
)

// IsValid reports whether c is a known sticker colour
func (c StickerColor) IsValid() bool {
	switch c {
	case StickerGold, StickerSilver, StickerGreen, StickerRed, StickerBlue:
		return true
	}
	return false
}

// Status represents the status of a product
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Draft carries the raw fields of a product create or replace request
type Draft struct {
	Category         Category
	CustomerNickname string
	MaterialType     MaterialType
	UniqueCode       string
	ProductType      ProductType
	StickerOption    StickerOption
	StickerType      StickerType
	StickerColor     StickerColor
	Price            decimal.Decimal
	Status           Status
}

// Product is the aggregate root for a catalog product
type Product struct {
	shared.BaseAggregateRoot
	ProductID string
	Variant   Variant
	Price     decimal.Decimal
	BarcodeID string
	Status    Status
}

// NewProduct creates a product from a validated draft.
// autoID is only used for wedding invitations; barcodeID must already be unique.
func NewProduct(d Draft, autoID, barcodeID string) (*Product, error) {
	d = d.normalized()
	if err := Validate(d); err != nil {
		return nil, err
	}
	variant, err := BuildVariant(d, autoID)
	if err != nil {
		return nil, err
	}
	if err := validateBarcode(variant.Category(), barcodeID); err != nil {
		return nil, err
	}

	p := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BarcodeID:         barcodeID,
	}
	p.apply(d, variant)
	return p, nil
}

// Replace overwrites the product from a full draft.
func (p *Product) Replace(d Draft, autoID, barcodeID string) error {
	d = d.normalized()
	if err := Validate(d); err != nil {
		return err
	}
	variant, err := BuildVariant(d, autoID)
	if err != nil {
		return err
	}
	if err := validateBarcode(variant.Category(), barcodeID); err != nil {
		return err
	}

	p.BarcodeID = barcodeID
	p.apply(d, variant)
	p.Touch()
	return nil
}

func (p *Product) apply(d Draft, variant Variant) {
	p.Variant = variant
	p.ProductID = variant.ProductID()
	p.Status = d.Status
	if d.Category.IsPriced() {
		p.Price = d.Price
	} else {
		p.Price = decimal.Zero
	}
}

// Category returns the category of the product variant
func (p *Product) Category() Category {
	return p.Variant.Category()
}

// AutoGeneratedID returns the wedding invitation sequence number, or ""
func (p *Product) AutoGeneratedID() string {
	if wi, ok := p.Variant.(WeddingInvitation); ok {
		return wi.AutoGeneratedID
	}
	return ""
}

func (d Draft) normalized() Draft {
	d.CustomerNickname = strings.TrimSpace(d.CustomerNickname)
	d.UniqueCode = strings.TrimSpace(d.UniqueCode)
	if d.Status == "" {
		d.Status = StatusActive
	}
	if d.StickerOption != WithSticker {
		d.StickerType = ""
		d.StickerColor = ""
	}
	return d
}

// Validate applies the product rule set to a draft and reports every failed rule.
// The Laser Cutting singleton rule needs the datastore and is checked by the caller.
func Validate(d Draft) error {
	var v shared.Violations

	if !d.Category.IsValid() {
		v.Add("Please select a product category (Shoe Laser Cutting, Wedding Invitations, or Laser Cutting)")
		return v.Err()
	}

	switch d.Category {
	case CategoryShoeLaserCutting:
		v.Check(strings.TrimSpace(d.CustomerNickname) == "", "Customer nickname is required for Shoe Laser Cutting products")
		checkMaterial(&v, d.MaterialType)
		v.Check(strings.TrimSpace(d.UniqueCode) == "", "Unique code is required for Shoe Laser Cutting products")
	case CategoryWeddingInvitations:
		switch {
		case d.ProductType == "":
			v.Add("Product type is required for Wedding Invitations products")
		case !d.ProductType.IsValid():
			v.Add("Product type must be one of Invitation Card, Cake Box, Tag")
		}
		checkMaterial(&v, d.MaterialType)
		switch {
		case d.StickerOption == "":
			v.Add("Sticker option is required for Wedding Invitations products")
		case !d.StickerOption.IsValid():
			v.Add("Sticker option must be With Sticker or Without Sticker")
		case d.StickerOption == WithSticker:
			switch {
			case d.StickerType == "":
				v.Add("Sticker type is required when With Sticker is selected")
			case !d.StickerType.IsValid():
				v.Add("Sticker type must be Normal or Glitter")
			}
			switch {
			case d.StickerColor == "":
				v.Add("Sticker color is required when With Sticker is selected")
			case !d.StickerColor.IsValid():
				v.Add("Sticker color must be one of Gold, Silver, Green, Red, Blue")
			}
		}
	}

	if d.Category.IsPriced() {
		v.Check(!d.Price.IsPositive(), fmt.Sprintf("Price must be greater than 0 for %s products", d.Category))
		v.Check(!shared.IsMoney(d.Price), "Price must have at most 2 decimal places")
	}

	if d.Status != "" && !d.Status.IsValid() {
		v.Add("Status must be Active or Inactive")
	}

	return v.Err()
}

// Validation functions

func checkMaterial(v *shared.Violations, m MaterialType) {
	switch {
	case m == "":
		v.Add("Material type is required for Shoe Laser Cutting and Wedding Invitations products")
	case !m.IsValid():
		v.Add("Material type must be one of Acrylic, Leather, Rexine, Wood, Paper")
	}
}

func validateBarcode(c Category, barcodeID string) error {
	if strings.TrimSpace(barcodeID) == "" {
		return shared.NewDomainError("INVALID_BARCODE", "Failed to generate a valid Barcode ID. Please try again.")
	}
	if cat, ok := CategoryOfBarcode(barcodeID); !ok || cat != c {
		return shared.NewDomainError("INVALID_BARCODE", fmt.Sprintf("Barcode ID %s does not match category %s", barcodeID, c))
	}
	return nil
}
