package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest is the full body of a product create or replace request.
// Auto_Generated_ID and Barcode_ID are assigned by the server.
type ProductRequest struct {
	Category         string          `json:"Product_Category"`
	CustomerNickname string          `json:"Customer_Nickname" binding:"max=100"`
	MaterialType     string          `json:"Material_Type"`
	UniqueCode       string          `json:"Unique_Code" binding:"max=100"`
	ProductType      string          `json:"Product_Type"`
	StickerOption    string          `json:"Sticker_Option"`
	StickerType      string          `json:"Sticker_Type"`
	StickerColor     string          `json:"Sticker_Color"`
	Price            decimal.Decimal `json:"Price"`
	Status           string          `json:"Status"`
}

// Draft converts the request into a domain draft
func (r ProductRequest) Draft() product.Draft {
	return product.Draft{
		Category:         product.Category(r.Category),
		CustomerNickname: r.CustomerNickname,
		MaterialType:     product.MaterialType(r.MaterialType),
		UniqueCode:       r.UniqueCode,
		ProductType:      product.ProductType(r.ProductType),
		StickerOption:    product.StickerOption(r.StickerOption),
		StickerType:      product.StickerType(r.StickerType),
		StickerColor:     product.StickerColor(r.StickerColor),
		Price:            r.Price,
		Status:           product.Status(r.Status),
	}
}

// ProductResponse represents a product in API responses.
// Category-specific fields are omitted when the category does not use them.
type ProductResponse struct {
	ID               uuid.UUID       `json:"_id"`
	Category         string          `json:"Product_Category"`
	ProductID        string          `json:"Product_ID"`
	CustomerNickname string          `json:"Customer_Nickname,omitempty"`
	MaterialType     string          `json:"Material_Type,omitempty"`
	UniqueCode       string          `json:"Unique_Code,omitempty"`
	ProductType      string          `json:"Product_Type,omitempty"`
	StickerOption    string          `json:"Sticker_Option,omitempty"`
	StickerType      string          `json:"Sticker_Type,omitempty"`
	StickerColor     string          `json:"Sticker_Color,omitempty"`
	AutoGeneratedID  string          `json:"Auto_Generated_ID,omitempty"`
	Price            decimal.Decimal `json:"Price"`
	BarcodeID        string          `json:"Barcode_ID"`
	Status           string          `json:"Status"`
	CreatedAt        time.Time       `json:"Created_At"`
	UpdatedAt        time.Time       `json:"Updated_At"`
}

// ToProductResponse converts a domain Product to a response
func ToProductResponse(p *product.Product) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID,
		Category:  string(p.Category()),
		ProductID: p.ProductID,
		Price:     p.Price,
		BarcodeID: p.BarcodeID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	switch v := p.Variant.(type) {
	case product.ShoeLaserCutting:
		resp.CustomerNickname = v.CustomerNickname
		resp.MaterialType = string(v.Material)
		resp.UniqueCode = v.UniqueCode
	case product.WeddingInvitation:
		resp.ProductType = string(v.ProductType)
		resp.MaterialType = string(v.Material)
		resp.StickerOption = string(v.StickerOption)
		resp.AutoGeneratedID = v.AutoGeneratedID
		if v.Sticker != nil {
			resp.StickerType = string(v.Sticker.Type)
			resp.StickerColor = string(v.Sticker.Color)
		}
	}
	return resp
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []product.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
