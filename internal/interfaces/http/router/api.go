package router

import (
	"github.com/orgalaser/invoicing/internal/interfaces/http/handler"
)

// Handlers bundles the endpoint handlers mounted under the API prefix
type Handlers struct {
	Health    *handler.HealthHandler
	Customers *handler.CustomerHandler
	Products  *handler.ProductHandler
	Invoices  *handler.InvoiceHandler
	Seed      *handler.SeedHandler
}

// Groups builds the route groups for every non-nil handler.
// Static segments such as /invoices/search are matched before /:id.
func (h Handlers) Groups() []*DomainGroup {
	groups := make([]*DomainGroup, 0, 5)

	if h.Health != nil {
		groups = append(groups, NewDomainGroup("health", "").
			GET("/health", h.Health.Check))
	}

	if h.Customers != nil {
		groups = append(groups, NewDomainGroup("customers", "/customers").
			GET("", h.Customers.List).
			POST("", h.Customers.Create).
			POST("/search", h.Customers.Search).
			GET("/:id", h.Customers.GetByID).
			PUT("/:id", h.Customers.Update).
			DELETE("/:id", h.Customers.Delete))
	}

	if h.Products != nil {
		groups = append(groups, NewDomainGroup("products", "/products").
			GET("", h.Products.List).
			POST("", h.Products.Create).
			GET("/:id", h.Products.GetByID).
			PUT("/:id", h.Products.Update).
			DELETE("/:id", h.Products.Delete).
			GET("/:id/barcode", h.Products.Barcode))
	}

	if h.Invoices != nil {
		groups = append(groups, NewDomainGroup("invoices", "/invoices").
			GET("", h.Invoices.List).
			POST("", h.Invoices.Create).
			GET("/search", h.Invoices.Search).
			GET("/export", h.Invoices.Export).
			POST("/scan", h.Invoices.Scan).
			POST("/print", h.Invoices.Print).
			GET("/:id", h.Invoices.GetByID).
			PUT("/:id", h.Invoices.UpdatePayment))
	}

	if h.Seed != nil {
		// Both verbs stay registered for browser-triggered seeding.
		groups = append(groups, NewDomainGroup("seed", "").
			GET("/seed-customers", h.Seed.Customers).
			POST("/seed-customers", h.Seed.Customers).
			GET("/seed-products", h.Seed.Products).
			POST("/seed-products", h.Seed.Products))
	}

	return groups
}

// RegisterAPI registers every handler group on the router
func (r *Router) RegisterAPI(h Handlers) *Router {
	for _, g := range h.Groups() {
		r.Register(g)
	}
	return r
}
