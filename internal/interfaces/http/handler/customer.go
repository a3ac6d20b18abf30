package handler

import (
	"github.com/gin-gonic/gin"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	"github.com/orgalaser/invoicing/internal/interfaces/http/dto"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customers CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// ListCustomersQuery filters the customer list
type ListCustomersQuery struct {
	dto.ListRequest
	CustomerType string `form:"customer_type"`
	Status       string `form:"status"`
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Lists customers with their nickname or in-store phone number. X-Total-Count carries the unpaged total.
// @Tags         customers
// @Produce      json
// @Param        search        query string false "Matches name, nickname or phone"
// @Param        customer_type query string false "Production, In-store or Wedding Invitation Maker"
// @Param        status        query string false "Active or Inactive"
// @Param        page          query int    false "Page number"
// @Param        page_size     query int    false "Rows per page; omitted returns all"
// @Success      200 {array}  appcustomer.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var q ListCustomersQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter := q.Filter()
	if q.CustomerType != "" {
		filter.Filters["customer_type"] = q.CustomerType
	}
	if q.Status != "" {
		filter.Filters["status"] = q.Status
	}

	customers, total, err := h.customers.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.ListResult(c, customers, total)
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a customer
// @Description  Creates a customer and its type-index entry in one transaction
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body appcustomer.CustomerRequest true "Customer"
// @Success      201 {object} appcustomer.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req appcustomer.CustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}
	created, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// GetByID godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} appcustomer.CustomerResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.ParamID(c, appcustomer.ErrCustomerNotFound)
	if !ok {
		return
	}
	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Replace a customer
// @Description  Replaces every field; a type or key change moves the type-index entry
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Customer ID"
// @Param        request body appcustomer.CustomerRequest true "Customer"
// @Success      200 {object} appcustomer.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.ParamID(c, appcustomer.ErrCustomerNotFound)
	if !ok {
		return
	}
	var req appcustomer.CustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}
	updated, err := h.customers.Replace(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Deletes a customer and its type-index entry. Customers with documents are kept.
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.ParamID(c, appcustomer.ErrCustomerNotFound)
	if !ok {
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Customer deleted successfully")
}

// Search godoc
// @ID           searchCustomer
// @Summary      Find a customer by type and identifier
// @Description  In-store customers are found by phone number, the other types by nickname
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body appcustomer.SearchRequest true "Lookup"
// @Success      200 {object} appcustomer.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /customers/search [post]
func (h *CustomerHandler) Search(c *gin.Context) {
	var req appcustomer.SearchRequest
	if !h.BindJSON(c, &req) {
		return
	}
	customer, err := h.customers.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}
