package customer

import (
	"fmt"
	"strings"

	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// CustomerType is the acquisition channel of a customer
type CustomerType string

const (
	TypeProduction   CustomerType = "Production"
	TypeInStore      CustomerType = "In-store"
	TypeWeddingMaker CustomerType = "Wedding Invitation Maker"
)

// AllTypes lists every customer type in display order
var AllTypes = []CustomerType{TypeProduction, TypeInStore, TypeWeddingMaker}

// IsValid reports whether t is a known customer type
func (t CustomerType) IsValid() bool {
	switch t {
	case TypeProduction, TypeInStore, TypeWeddingMaker:
		return true
	}
	return false
}

// UsesNickname reports whether customers of this type are looked up by nickname
func (t CustomerType) UsesNickname() bool {
	return t == TypeProduction || t == TypeWeddingMaker
}

// JobType is the kind of work a customer orders
type JobType string

const (
	JobWeddingInvitations JobType = "Wedding Invitations"
	JobShoeLaserCutting   JobType = "Shoe Laser Cutting"
	JobLaserCutting       JobType = "Laser Cutting"
)

// IsValid reports whether j is a known job type
func (j JobType) IsValid() bool {
	switch j {
	case JobWeddingInvitations, JobShoeLaserCutting, JobLaserCutting:
		return true
	}
	return false
}

// Status represents the status of a customer
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Draft carries the raw, unvalidated fields of a customer create or replace request.
type Draft struct {
	Type          CustomerType
	FullName      string
	ContactPerson string
	Email         string
	PhoneNumber   string
	Address       string
	TaxID         string
	Nickname      string
	JobType       JobType
	Status        Status
}

// Customer is the aggregate root for a customer and its channel identity.
type Customer struct {
	shared.BaseAggregateRoot
	Channel       Channel
	FullName      string
	ContactPerson string
	Email         string
	PhoneNumber   string
	Address       string
	TaxID         string
	JobType       JobType
	Status        Status
}

// NewCustomer validates a draft and creates a customer from it
func NewCustomer(d Draft) (*Customer, error) {
	d = d.normalized()
	if err := Validate(d); err != nil {
		return nil, err
	}
	channel, err := NewChannel(d.Type, d.Nickname, d.PhoneNumber)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Channel:           channel,
	}
	c.apply(d)
	return c, nil
}

// Replace overwrites every mutable field from a full draft.
// The customer type may change; callers must move the type-index row accordingly.
func (c *Customer) Replace(d Draft) error {
	d = d.normalized()
	if err := Validate(d); err != nil {
		return err
	}
	channel, err := NewChannel(d.Type, d.Nickname, d.PhoneNumber)
	if err != nil {
		return err
	}

	c.Channel = channel
	c.apply(d)
	c.Touch()
	return nil
}

func (c *Customer) apply(d Draft) {
	c.FullName = d.FullName
	c.ContactPerson = d.ContactPerson
	c.Email = d.Email
	c.PhoneNumber = d.PhoneNumber
	c.Address = d.Address
	c.TaxID = d.TaxID
	c.JobType = d.JobType
	c.Status = d.Status
}

// Type returns the customer type carried by the channel
func (c *Customer) Type() CustomerType {
	return c.Channel.Type()
}

// Nickname returns the nickname for nickname-keyed channels, or ""
func (c *Customer) Nickname() string {
	switch ch := c.Channel.(type) {
	case ProductionChannel:
		return ch.Nickname
	case WeddingMakerChannel:
		return ch.Nickname
	}
	return ""
}

// IsInStore reports whether the customer walks in to the store
func (c *Customer) IsInStore() bool {
	return c.Type() == TypeInStore
}

// IndexEntry returns the type-index row identifying this customer
func (c *Customer) IndexEntry() IndexEntry {
	return IndexEntry{
		Type:       c.Type(),
		Key:        c.Channel.LookupKey(),
		CustomerID: c.ID,
	}
}

func (d Draft) normalized() Draft {
	d.FullName = strings.TrimSpace(d.FullName)
	d.ContactPerson = strings.TrimSpace(d.ContactPerson)
	d.Email = strings.TrimSpace(d.Email)
	d.PhoneNumber = strings.TrimSpace(d.PhoneNumber)
	d.Address = strings.TrimSpace(d.Address)
	d.TaxID = strings.TrimSpace(d.TaxID)
	d.Nickname = strings.TrimSpace(d.Nickname)
	if d.Status == "" {
		d.Status = StatusActive
	}
	return d
}

// Validate applies the customer rule set to a draft and reports every failed rule.
func Validate(d Draft) error {
	var v shared.Violations

	v.Check(!d.Type.IsValid(), "Please select a customer type (Production, In-store, or Wedding Invitation Maker)")
	v.Check(strings.TrimSpace(d.FullName) == "", "Full name is required")
	v.Check(!d.JobType.IsValid(), "Please select a job type (Wedding Invitations, Shoe Laser Cutting, or Laser Cutting)")

	if email := strings.TrimSpace(d.Email); email != "" && !isEmail(email) {
		v.Add("Please enter a valid email address")
	}

	phone := strings.TrimSpace(d.PhoneNumber)
	switch {
	case phone == "" && d.Type == TypeInStore:
		v.Add("Phone number is required for In-store customers")
	case phone != "" && !phonePattern.MatchString(phone):
		v.Add("Phone number must be 9 or 10 digits")
	}

	if taxID := strings.TrimSpace(d.TaxID); taxID != "" && !taxIDPattern.MatchString(taxID) {
		v.Add("Tax ID must be 9 digits, optionally followed by -7000")
	}

	if d.Type.UsesNickname() && strings.TrimSpace(d.Nickname) == "" {
		v.Add(fmt.Sprintf("Nickname is required for %s customers", d.Type))
	}

	if d.Status != "" && !d.Status.IsValid() {
		v.Add("Status must be Active or Inactive")
	}

	return v.Err()
}
