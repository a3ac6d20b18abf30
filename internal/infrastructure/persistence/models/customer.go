package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/customer"
)

// CustomerModel is the persistence model for the Customer aggregate.
// Nickname duplicates the type-index key so lists and invoice search need no join.
type CustomerModel struct {
	AggregateModel
	CustomerType  customer.CustomerType `gorm:"type:varchar(40);not null;index"`
	FullName      string                `gorm:"type:varchar(200);not null"`
	ContactPerson string                `gorm:"type:varchar(200)"`
	Email         string                `gorm:"type:varchar(200)"`
	PhoneNumber   string                `gorm:"type:varchar(20);index"`
	Address       string                `gorm:"type:text"`
	TaxID         string                `gorm:"type:varchar(20)"`
	Nickname      string                `gorm:"type:varchar(100);index"`
	JobType       customer.JobType      `gorm:"type:varchar(40);not null"`
	Status        customer.Status       `gorm:"type:varchar(20);not null;default:'Active'"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
// A row whose type no longer yields a valid channel is returned with a nil Channel.
func (m *CustomerModel) ToDomain() *customer.Customer {
	channel, _ := customer.NewChannel(m.CustomerType, m.Nickname, m.PhoneNumber)
	return &customer.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Channel:           channel,
		FullName:          m.FullName,
		ContactPerson:     m.ContactPerson,
		Email:             m.Email,
		PhoneNumber:       m.PhoneNumber,
		Address:           m.Address,
		TaxID:             m.TaxID,
		JobType:           m.JobType,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CustomerType = c.Type()
	m.FullName = c.FullName
	m.ContactPerson = c.ContactPerson
	m.Email = c.Email
	m.PhoneNumber = c.PhoneNumber
	m.Address = c.Address
	m.TaxID = c.TaxID
	m.Nickname = c.Nickname()
	m.JobType = c.JobType
	m.Status = c.Status
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// ProductionCustomerModel maps a production nickname to its customer.
type ProductionCustomerModel struct {
	Nickname   string    `gorm:"type:varchar(100);primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductionCustomerModel) TableName() string {
	return "production_customers"
}

// InStoreCustomerModel maps a walk-in phone number to its customer.
type InStoreCustomerModel struct {
	PhoneNumber string    `gorm:"type:varchar(20);primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InStoreCustomerModel) TableName() string {
	return "in_store_customers"
}

// WeddingInvitationMakerModel maps a wedding maker nickname to its customer.
type WeddingInvitationMakerModel struct {
	Nickname   string    `gorm:"type:varchar(100);primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WeddingInvitationMakerModel) TableName() string {
	return "wedding_invitation_makers"
}

// IndexTable returns the table and key column of a customer type's index.
func IndexTable(t customer.CustomerType) (table, keyColumn string, ok bool) {
	switch t {
	case customer.TypeProduction:
		return ProductionCustomerModel{}.TableName(), "nickname", true
	case customer.TypeInStore:
		return InStoreCustomerModel{}.TableName(), "phone_number", true
	case customer.TypeWeddingMaker:
		return WeddingInvitationMakerModel{}.TableName(), "nickname", true
	}
	return "", "", false
}

// IndexRow builds the model row for a type-index entry
func IndexRow(e customer.IndexEntry, now time.Time) (any, bool) {
	switch e.Type {
	case customer.TypeProduction:
		return &ProductionCustomerModel{Nickname: e.Key, CustomerID: e.CustomerID, CreatedAt: now}, true
	case customer.TypeInStore:
		return &InStoreCustomerModel{PhoneNumber: e.Key, CustomerID: e.CustomerID, CreatedAt: now}, true
	case customer.TypeWeddingMaker:
		return &WeddingInvitationMakerModel{Nickname: e.Key, CustomerID: e.CustomerID, CreatedAt: now}, true
	}
	return nil, false
}
