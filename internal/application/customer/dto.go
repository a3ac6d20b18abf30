package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/customer"
)

// CustomerRequest is the full body of a customer create or replace request.
// Field rules are enforced by the domain so every violation is reported at once.
type CustomerRequest struct {
	CustomerType  string `json:"Customer_Type"`
	FullName      string `json:"Full_Name" binding:"max=200"`
	ContactPerson string `json:"Contact_Person" binding:"max=200"`
	Email         string `json:"Email" binding:"max=200"`
	PhoneNumber   string `json:"Phone_Number" binding:"max=20"`
	Address       string `json:"Address" binding:"max=500"`
	TaxID         string `json:"Tax_ID" binding:"max=20"`
	Nickname      string `json:"Nickname" binding:"max=100"`
	JobType       string `json:"Job_Type"`
	Status        string `json:"Status"`
}

// Draft converts the request into a domain draft
func (r CustomerRequest) Draft() customer.Draft {
	return customer.Draft{
		Type:          customer.CustomerType(r.CustomerType),
		FullName:      r.FullName,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		PhoneNumber:   r.PhoneNumber,
		Address:       r.Address,
		TaxID:         r.TaxID,
		Nickname:      r.Nickname,
		JobType:       customer.JobType(r.JobType),
		Status:        customer.Status(r.Status),
	}
}

// SearchRequest looks a customer up by its type-specific identifier
type SearchRequest struct {
	CustomerType string `json:"Customer_Type"`
	Identifier   string `json:"Identifier"`
}

// CustomerResponse represents a customer in API responses.
// Nickname and Instore_Phone_Number carry the type-index key.
type CustomerResponse struct {
	ID                 uuid.UUID `json:"_id"`
	CustomerType       string    `json:"Customer_Type"`
	FullName           string    `json:"Full_Name"`
	ContactPerson      string    `json:"Contact_Person,omitempty"`
	Email              string    `json:"Email,omitempty"`
	PhoneNumber        string    `json:"Phone_Number,omitempty"`
	Address            string    `json:"Address,omitempty"`
	TaxID              string    `json:"Tax_ID,omitempty"`
	Nickname           string    `json:"Nickname,omitempty"`
	JobType            string    `json:"Job_Type"`
	Status             string    `json:"Status"`
	InstorePhoneNumber string    `json:"Instore_Phone_Number,omitempty"`
	CreatedAt          time.Time `json:"Created_At"`
	UpdatedAt          time.Time `json:"Updated_At"`
}

// ToCustomerResponse converts a domain Customer to a response
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:            c.ID,
		FullName:      c.FullName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		Address:       c.Address,
		TaxID:         c.TaxID,
		JobType:       string(c.JobType),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	switch ch := c.Channel.(type) {
	case customer.ProductionChannel:
		resp.CustomerType = string(ch.Type())
		resp.Nickname = ch.Nickname
	case customer.WeddingMakerChannel:
		resp.CustomerType = string(ch.Type())
		resp.Nickname = ch.Nickname
	case customer.InStoreChannel:
		resp.CustomerType = string(ch.Type())
		resp.InstorePhoneNumber = ch.PhoneNumber
	}
	return resp
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}
