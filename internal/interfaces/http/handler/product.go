package handler

import (
	"github.com/gin-gonic/gin"
	appproduct "github.com/orgalaser/invoicing/internal/application/product"
	"github.com/orgalaser/invoicing/internal/interfaces/http/dto"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	products ProductService
	labels   PrintService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products ProductService, labels PrintService) *ProductHandler {
	return &ProductHandler{products: products, labels: labels}
}

// ListProductsQuery filters the product list
type ListProductsQuery struct {
	dto.ListRequest
	Category string `form:"category"`
	Status   string `form:"status"`
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search    query string false "Matches Product_ID or Barcode_ID"
// @Param        category  query string false "Product category"
// @Param        status    query string false "Active or Inactive"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Rows per page; omitted returns all"
// @Success      200 {array}  appproduct.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q ListProductsQuery
	if !h.BindQuery(c, &q) {
		return
	}
	filter := q.Filter()
	if q.Category != "" {
		filter.Filters["category"] = q.Category
	}
	if q.Status != "" {
		filter.Filters["status"] = q.Status
	}

	products, total, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.ListResult(c, products, total)
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Description  Assigns Product_ID and Barcode_ID from the category fields
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body appproduct.ProductRequest true "Product"
// @Success      201 {object} appproduct.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req appproduct.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	created, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// GetByID godoc
// @ID           getProduct
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} appproduct.ProductResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.ParamID(c, appproduct.ErrProductNotFound)
	if !ok {
		return
	}
	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Update godoc
// @ID           updateProduct
// @Summary      Replace a product
// @Description  Recomputes Product_ID; the barcode is kept unless the category changes
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Product ID"
// @Param        request body appproduct.ProductRequest true "Product"
// @Success      200 {object} appproduct.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParamID(c, appproduct.ErrProductNotFound)
	if !ok {
		return
	}
	var req appproduct.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	updated, err := h.products.Replace(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParamID(c, appproduct.ErrProductNotFound)
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Product deleted successfully")
}

// Barcode godoc
// @ID           getProductBarcode
// @Summary      Barcode label PDF
// @Description  Renders the product's Code128 barcode with its Product_ID caption
// @Tags         products
// @Produce      application/pdf
// @Param        id path string true "Product ID"
// @Success      200 {file} file
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /products/{id}/barcode [get]
func (h *ProductHandler) Barcode(c *gin.Context) {
	id, ok := h.ParamID(c, appproduct.ErrProductNotFound)
	if !ok {
		return
	}
	doc, err := h.labels.Label(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, doc.Filename, doc.ContentType, doc.Data)
}
