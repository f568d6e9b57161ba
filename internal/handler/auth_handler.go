package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maplewood/student-portal/internal/dto"
	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
	"github.com/maplewood/student-portal/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req dto.LoginRequest) (bool, error)
	CheckStatus(ctx context.Context) models.AuthStatus
	Status() models.AuthStatus
}

// AuthHandler exposes login and session status to the portal UI.
type AuthHandler struct {
	service authService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Sign in with portal credentials
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid login payload"))
		return
	}

	ok, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid username or password"))
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"authenticated": true})
}

// Me godoc
// @Summary Current session status
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}

	status := h.service.CheckStatus(c.Request.Context())
	response.JSON(c, http.StatusOK, gin.H{
		"authenticated": status == models.AuthStatusAuthenticated,
		"status":        status,
	})
}
