package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/application/unitofwork"
	"github.com/orgalaser/invoicing/internal/domain/customer"
	"github.com/orgalaser/invoicing/internal/domain/invoice"
	"github.com/orgalaser/invoicing/internal/domain/shared"
)

var (
	ErrCustomerNotFound = shared.NewDomainError("NOT_FOUND", "Customer not found. Please check the ID and try again.")
	ErrDuplicateKey     = shared.NewDomainError("ALREADY_EXISTS", "This phone number or nickname is already in use. Please use a unique value.")
	ErrCustomerInUse    = shared.NewDomainError("IN_USE", "This customer has invoices or quotations and cannot be deleted.")
)

// Service handles customer use cases, keeping the type index in step with the customer row.
type Service struct {
	customers customer.CustomerRepository
	typeIndex customer.TypeIndexRepository
	invoices  invoice.InvoiceRepository
	txScope   unitofwork.TransactionScope
}

// NewService creates a new customer Service
func NewService(
	customers customer.CustomerRepository,
	typeIndex customer.TypeIndexRepository,
	invoices invoice.InvoiceRepository,
	txScope unitofwork.TransactionScope,
) *Service {
	return &Service{
		customers: customers,
		typeIndex: typeIndex,
		invoices:  invoices,
		txScope:   txScope,
	}
}

// Create validates and stores a customer together with its type-index row.
func (s *Service) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	c, err := customer.NewCustomer(req.Draft())
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Customers().Save(ctx, c); err != nil {
			return err
		}
		return repos.TypeIndex().Insert(ctx, c.IndexEntry())
	})
	if err != nil {
		return nil, duplicateKey(err)
	}

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// GetByID returns a customer
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

// List returns customers matching the filter and the total count
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]CustomerResponse, int64, error) {
	customers, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customers.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToCustomerResponses(customers), total, nil
}

// Replace overwrites a customer. A changed type or key moves the type-index row.
func (s *Service) Replace(ctx context.Context, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	var updated *customer.Customer
	err := s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
		c, err := repos.Customers().FindByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if err := c.Replace(req.Draft()); err != nil {
			return err
		}
		if err := repos.Customers().Save(ctx, c); err != nil {
			return err
		}
		if err := repos.TypeIndex().DeleteByCustomer(ctx, c.ID); err != nil {
			return err
		}
		if err := repos.TypeIndex().Insert(ctx, c.IndexEntry()); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, duplicateKey(err)
	}

	resp := ToCustomerResponse(updated)
	return &resp, nil
}

// Delete removes a customer and its type-index row.
// Customers still referenced by documents are kept.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if _, err := repos.Customers().FindByID(ctx, id); err != nil {
			return notFound(err)
		}
		n, err := repos.Invoices().CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCustomerInUse
		}
		if err := repos.TypeIndex().DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		if err := repos.Customers().Delete(ctx, id); err != nil {
			if errors.Is(err, shared.ErrInUse) {
				return ErrCustomerInUse
			}
			return notFound(err)
		}
		return nil
	})
}

// Search resolves a customer through the index of its type.
// In-store lookups use the phone number, the other types the nickname.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*CustomerResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if req.CustomerType == "" || identifier == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer type and identifier (Phone Number or Nickname) are required.")
	}
	t := customer.CustomerType(req.CustomerType)
	if !t.IsValid() {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Invalid customer type. Must be In-store, Production, or Wedding Invitation Maker.")
	}

	id, err := s.typeIndex.FindCustomerID(ctx, t, identifier)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			what := "nickname"
			if t == customer.TypeInStore {
				what = "phone number"
			}
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("No customer found with this %s.", what))
		}
		return nil, err
	}

	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Customer not found.")
		}
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

func notFound(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return ErrCustomerNotFound
	}
	return err
}

func duplicateKey(err error) error {
	if errors.Is(err, shared.ErrAlreadyExists) {
		return ErrDuplicateKey
	}
	return err
}
