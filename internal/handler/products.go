package handler

import (
	"net/http"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary  Register a new product
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body dto.CreateProductRequest true "Product data"
// @Success  201 {object} dto.CreateProductResponse
// @Failure  400 {object} apierror.Error
// @Router   /products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	product, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateProductResponse{
		Success: true,
		Product: *product,
		Message: "product created successfully",
	})
}

// List returns a paginated list of products, optionally filtered by name.
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PriceCheck serves the public price/stock lookup.
func (h *ProductsHandler) PriceCheck(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("id must be a valid UUID"))
		return
	}
	resp, err := h.svc.PriceCheck(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
