package customer

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// Channel is the type-specific identity of a customer.
// Each variant holds exactly the fields its customer type requires.
type Channel interface {
	Type() CustomerType
	// LookupKey is the human-chosen identifier stored in the type index.
	LookupKey() string
	isChannel()
}

// ProductionChannel identifies a production customer by nickname
type ProductionChannel struct {
	Nickname string
}

func (ProductionChannel) Type() CustomerType  { return TypeProduction }
func (c ProductionChannel) LookupKey() string { return c.Nickname }
func (ProductionChannel) isChannel()          {}

// WeddingMakerChannel identifies a wedding invitation maker by nickname
type WeddingMakerChannel struct {
	Nickname string
}

func (WeddingMakerChannel) Type() CustomerType  { return TypeWeddingMaker }
func (c WeddingMakerChannel) LookupKey() string { return c.Nickname }
func (WeddingMakerChannel) isChannel()          {}

// InStoreChannel identifies a walk-in customer by phone number
type InStoreChannel struct {
	PhoneNumber string
}

func (InStoreChannel) Type() CustomerType  { return TypeInStore }
func (c InStoreChannel) LookupKey() string { return c.PhoneNumber }
func (InStoreChannel) isChannel()          {}

// NewChannel builds the channel variant for a customer type
func NewChannel(t CustomerType, nickname, phone string) (Channel, error) {
	switch t {
	case TypeProduction:
		if nickname == "" {
			return nil, shared.NewDomainError("INVALID_NICKNAME", "Nickname is required for Production customers")
		}
		return ProductionChannel{Nickname: nickname}, nil
	case TypeWeddingMaker:
		if nickname == "" {
			return nil, shared.NewDomainError("INVALID_NICKNAME", "Nickname is required for Wedding Invitation Maker customers")
		}
		return WeddingMakerChannel{Nickname: nickname}, nil
	case TypeInStore:
		if phone == "" {
			return nil, shared.NewDomainError("INVALID_PHONE", "Phone number is required for In-store customers")
		}
		return InStoreChannel{PhoneNumber: phone}, nil
	}
	return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Invalid customer type. Must be In-store, Production, or Wedding Invitation Maker.")
}

// IndexEntry is one row of a customer-type index: an external key mapped to a customer.
type IndexEntry struct {
	Type       CustomerType
	Key        string
	CustomerID uuid.UUID
}

// Validation functions

var (
	phonePattern = regexp.MustCompile(`^\d{9,10}$`)
	taxIDPattern = regexp.MustCompile(`^\d{9}(-7000)?$`)

	fieldValidator = validator.New()
)

func isEmail(s string) bool {
	return fieldValidator.Var(s, "required,email") == nil
}
