package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// AggregateModel provides the persistence fields shared by aggregate roots.
type AggregateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	Version   int       `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from a domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.ID = a.ID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
	m.Version = a.Version
}

// ToDomainAggregateRoot converts the persistence fields back to the domain root
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Version: m.Version,
	}
}

// All lists every model for AutoMigrate, parents first.
func All() []any {
	return []any{
		&CustomerModel{},
		&ProductionCustomerModel{},
		&InStoreCustomerModel{},
		&WeddingInvitationMakerModel{},
		&ProductModel{},
		&InvoiceModel{},
		&InvoiceItemModel{},
	}
}
