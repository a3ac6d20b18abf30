package handler

import (
	"github.com/gin-gonic/gin"
)

// SeedHandler loads demo customers and products. Both endpoints wipe the
// tables they fill, so they answer 404 unless seeding is enabled.
type SeedHandler struct {
	BaseHandler
	seeder  SeedService
	enabled bool
}

// NewSeedHandler creates a new SeedHandler
func NewSeedHandler(seeder SeedService, enabled bool) *SeedHandler {
	return &SeedHandler{seeder: seeder, enabled: enabled}
}

// Customers godoc
// @ID           seedCustomers
// @Summary      Replace every customer with demo data
// @Description  Deletes all documents, customers and type-table rows, then inserts the demo customers
// @Tags         seed
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /seed-customers [post]
func (h *SeedHandler) Customers(c *gin.Context) {
	if !h.enabled {
		h.NotFound(c, "Seeding is disabled")
		return
	}
	msg, err := h.seeder.SeedCustomers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, msg)
}

// Products godoc
// @ID           seedProducts
// @Summary      Replace every product with demo data
// @Tags         seed
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /seed-products [post]
func (h *SeedHandler) Products(c *gin.Context) {
	if !h.enabled {
		h.NotFound(c, "Seeding is disabled")
		return
	}
	msg, err := h.seeder.SeedProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, msg)
}
