package product

import (
	"fmt"

	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// Variant holds the category-specific attributes of a product.
type Variant interface {
	Category() Category
	// ProductID derives the catalog identifier from the variant's attributes.
	ProductID() string
	isVariant()
}

// ShoeLaserCutting is a customer-specific shoe cutting pattern
type ShoeLaserCutting struct {
	CustomerNickname string
	Material         MaterialType
	UniqueCode       string
}

func (ShoeLaserCutting) Category() Category { return CategoryShoeLaserCutting }
func (ShoeLaserCutting) isVariant()         {}

// ProductID is SLC-{nickname}-{material}-{code}
func (v ShoeLaserCutting) ProductID() string {
	return fmt.Sprintf("SLC-%s-%s-%s", v.CustomerNickname, v.Material, v.UniqueCode)
}

// Sticker is the optional sticker of a wedding invitation
type Sticker struct {
	Type  StickerType
	Color StickerColor
}

// WeddingInvitation is a stock wedding stationery design
type WeddingInvitation struct {
	ProductType     ProductType
	Material        MaterialType
	StickerOption   StickerOption
	Sticker         *Sticker
	AutoGeneratedID string
}

func (WeddingInvitation) Category() Category { return CategoryWeddingInvitations }
func (WeddingInvitation) isVariant()         {}

// ProductID is WI-{material}-{type}-{With|Without Sticker}-{autoID}
func (v WeddingInvitation) ProductID() string {
	option := WithoutSticker
	if v.StickerOption == WithSticker {
		option = WithSticker
	}
	return fmt.Sprintf("WI-%s-%s-%s-%s", v.Material, v.ProductType, option, v.AutoGeneratedID)
}

// LaserCutting is the single time-billed laser cutting service
type LaserCutting struct{}

func (LaserCutting) Category() Category { return CategoryLaserCutting }
func (LaserCutting) ProductID() string  { return LaserCuttingID }
func (LaserCutting) isVariant()         {}

// BuildVariant builds the variant for a validated draft
func BuildVariant(d Draft, autoID string) (Variant, error) {
	switch d.Category {
	case CategoryShoeLaserCutting:
		return ShoeLaserCutting{
			CustomerNickname: d.CustomerNickname,
			Material:         d.MaterialType,
			UniqueCode:       d.UniqueCode,
		}, nil
	case CategoryWeddingInvitations:
		if !autoIDPattern.MatchString(autoID) {
			return nil, shared.NewDomainError("INVALID_AUTO_ID", "Auto-generated ID is required for Wedding Invitations products")
		}
		v := WeddingInvitation{
			ProductType:     d.ProductType,
			Material:        d.MaterialType,
			StickerOption:   d.StickerOption,
			AutoGeneratedID: autoID,
		}
		if d.StickerOption == WithSticker {
			v.Sticker = &Sticker{Type: d.StickerType, Color: d.StickerColor}
		}
		return v, nil
	case CategoryLaserCutting:
		return LaserCutting{}, nil
	}
	return nil, shared.NewDomainError("INVALID_CATEGORY", "Please select a product category (Shoe Laser Cutting, Wedding Invitations, or Laser Cutting)")
}
