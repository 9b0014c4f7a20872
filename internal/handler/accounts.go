package handler

import (
	"net/http"

	"orderdesk/internal/dto"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountsHandler struct{ svc service.AccountService }

func NewAccountsHandler(svc service.AccountService) *AccountsHandler {
	return &AccountsHandler{svc: svc}
}

// Register godoc
// @Summary  Register a new account
// @Tags     accounts
// @Accept   json
// @Param    body body dto.CreateAccountRequest true "Account data"
// @Success  201
// @Failure  400 {object} apierror.Error
// @Failure  409 {object} apierror.Error
// @Router   /accounts [post]
func (h *AccountsHandler) Register(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
