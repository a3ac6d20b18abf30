package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	AggregateModel
	DocumentType    invoice.DocumentType  `gorm:"type:varchar(20);not null;index:idx_invoice_type_date,priority:1"`
	DocumentID      string                `gorm:"type:varchar(40);not null;uniqueIndex"`
	CustomerID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	Date            time.Time             `gorm:"not null;index:idx_invoice_type_date,priority:2"`
	Items           []InvoiceItemModel    `gorm:"foreignKey:InvoiceID;references:ID"`
	TotalAmount     decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0"`
	PurchasingOrder string                `gorm:"type:varchar(100)"`
	PaymentTerm     string                `gorm:"type:varchar(20);not null"`
	PaymentMethod   invoice.PaymentMethod `gorm:"type:varchar(20)"`
	DiscountPrice   decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0"`
	AdvancePayment  decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0"`
	PaymentStatus   invoice.PaymentStatus `gorm:"type:varchar(20);not null;default:'Unpaid'"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice.
// Items must be preloaded in position order.
func (m *InvoiceModel) ToDomain() *invoice.Invoice {
	items := make([]invoice.LineItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = item.ToDomain()
	}
	return &invoice.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		DocumentType:      m.DocumentType,
		DocumentID:        m.DocumentID,
		CustomerID:        m.CustomerID,
		Date:              m.Date,
		Items:             items,
		TotalAmount:       m.TotalAmount,
		PurchasingOrder:   m.PurchasingOrder,
		PaymentTerm:       m.PaymentTerm,
		PaymentMethod:     m.PaymentMethod,
		DiscountPrice:     m.DiscountPrice,
		AdvancePayment:    m.AdvancePayment,
		PaymentStatus:     m.PaymentStatus,
	}
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(inv *invoice.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.DocumentType = inv.DocumentType
	m.DocumentID = inv.DocumentID
	m.CustomerID = inv.CustomerID
	m.Date = inv.Date.UTC()
	m.TotalAmount = inv.TotalAmount
	m.PurchasingOrder = inv.PurchasingOrder
	m.PaymentTerm = inv.PaymentTerm
	m.PaymentMethod = inv.PaymentMethod
	m.DiscountPrice = inv.DiscountPrice
	m.AdvancePayment = inv.AdvancePayment
	m.PaymentStatus = inv.PaymentStatus
	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = InvoiceItemModel{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			LineTotal:   item.LineTotal,
		}
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(inv *invoice.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemModel is one line of an invoice. Position keeps request order.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_invoice_item_position,priority:1"`
	Position    int             `gorm:"not null;index:idx_invoice_item_position,priority:2"`
	Description string          `gorm:"type:text;not null"`
	Quantity    int             `gorm:"not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the item model to a domain LineItem
func (m InvoiceItemModel) ToDomain() invoice.LineItem {
	return invoice.LineItem{
		Description: m.Description,
		Quantity:    m.Quantity,
		Rate:        m.Rate,
		LineTotal:   m.LineTotal,
	}
}
