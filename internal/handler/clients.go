package handler

import (
	"net/http"

	"orderdesk/internal/apierror"
	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientsHandler struct{ svc service.ClientService }

func NewClientsHandler(svc service.ClientService) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

// Create godoc
// @Summary  Register a new client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body dto.CreateClientRequest true "Client data"
// @Success  201 {object} dto.CreateClientResponse
// @Failure  400 {object} apierror.Error
// @Failure  409 {object} apierror.Error
// @Router   /clients [post]
func (h *ClientsHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	client, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateClientResponse{
		Success: true,
		Client:  *client,
		Message: "client created successfully",
	})
}

// List returns a paginated list of clients.
func (h *ClientsHandler) List(c *gin.Context) {
	var filter dto.ClientFilter
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
