package handler

import (
	"net/http"

	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionsHandler struct{ svc service.AuthService }

func NewSessionsHandler(svc service.AuthService) *SessionsHandler {
	return &SessionsHandler{svc: svc}
}

// Authenticate godoc
// @Summary  Authenticate and obtain an access token
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    body body dto.AuthenticateRequest true "Credentials"
// @Success  201 {object} dto.AuthenticateResponse
// @Failure  401 {object} apierror.Error
// @Router   /sessions [post]
func (h *SessionsHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
