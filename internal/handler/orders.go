package handler

import (
	"net/http"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/middleware"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// Create godoc
// @Summary      Create a new order
// @Description  Validates product existence and stock, computes the total with discount, then atomically decrements stock and inserts the order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateOrderRequest true "Order data"
// @Success      201 {object} dto.CreateOrderResponse
// @Failure      400 {object} apierror.Error
// @Router       /orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID := middleware.GetUserID(c)

	order, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		Order:   *order,
		Message: "order created successfully",
	})
}

// Get returns one order with its items.
func (h *OrdersHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("id must be a valid UUID"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
