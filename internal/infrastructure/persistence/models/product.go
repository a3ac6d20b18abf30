package models

import (
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product aggregate.
// Variant attributes are flattened into nullable-by-convention columns;
// columns a category does not use hold "".
type ProductModel struct {
	AggregateModel
	ProductID        string                `gorm:"type:varchar(200);not null;uniqueIndex"`
	Category         product.Category      `gorm:"type:varchar(40);not null;index"`
	CustomerNickname string                `gorm:"type:varchar(100)"`
	MaterialType     product.MaterialType  `gorm:"type:varchar(20)"`
	UniqueCode       string                `gorm:"type:varchar(100)"`
	ProductType      product.ProductType   `gorm:"type:varchar(40)"`
	StickerOption    product.StickerOption `gorm:"type:varchar(20)"`
	StickerType      product.StickerType   `gorm:"type:varchar(20)"`
	StickerColor     product.StickerColor  `gorm:"type:varchar(20)"`
	AutoGeneratedID  string                `gorm:"type:varchar(20);uniqueIndex:idx_products_auto_generated_id,where:category = 'Wedding Invitations'"`
	Price            decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0"`
	BarcodeID        string                `gorm:"type:varchar(40);not null;uniqueIndex"`
	Status           product.Status        `gorm:"type:varchar(20);not null;default:'Active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *product.Product {
	return &product.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ProductID:         m.ProductID,
		Variant:           m.variant(),
		Price:             m.Price,
		BarcodeID:         m.BarcodeID,
		Status:            m.Status,
	}
}

func (m *ProductModel) variant() product.Variant {
	switch m.Category {
	case product.CategoryShoeLaserCutting:
		return product.ShoeLaserCutting{
			CustomerNickname: m.CustomerNickname,
			Material:         m.MaterialType,
			UniqueCode:       m.UniqueCode,
		}
	case product.CategoryWeddingInvitations:
		v := product.WeddingInvitation{
			ProductType:     m.ProductType,
			Material:        m.MaterialType,
			StickerOption:   m.StickerOption,
			AutoGeneratedID: m.AutoGeneratedID,
		}
		if m.StickerOption == product.WithSticker {
			v.Sticker = &product.Sticker{Type: m.StickerType, Color: m.StickerColor}
		}
		return v
	default:
		return product.LaserCutting{}
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *product.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.ProductID = p.ProductID
	m.Category = p.Category()
	m.Price = p.Price
	m.BarcodeID = p.BarcodeID
	m.Status = p.Status

	m.CustomerNickname, m.MaterialType, m.UniqueCode = "", "", ""
	m.ProductType, m.StickerOption, m.StickerType, m.StickerColor = "", "", "", ""
	m.AutoGeneratedID = ""

	switch v := p.Variant.(type) {
	case product.ShoeLaserCutting:
		m.CustomerNickname = v.CustomerNickname
		m.MaterialType = v.Material
		m.UniqueCode = v.UniqueCode
	case product.WeddingInvitation:
		m.ProductType = v.ProductType
		m.MaterialType = v.Material
		m.StickerOption = v.StickerOption
		m.AutoGeneratedID = v.AutoGeneratedID
		if v.Sticker != nil {
			m.StickerType = v.Sticker.Type
			m.StickerColor = v.Sticker.Color
		}
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *product.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
