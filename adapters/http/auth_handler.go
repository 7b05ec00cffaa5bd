package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/config"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/auth"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// AuthHandler authenticates the single owner account configured via
// environment; there is no user store.
type AuthHandler struct {
	cfg    config.Config
	jwtSvc *auth.JWTService
	logger logger.Logger
}

func NewAuthHandler(cfg config.Config, jwtSvc *auth.JWTService, log logger.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtSvc: jwtSvc, logger: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	if !strings.EqualFold(req.Email, h.cfg.Auth.OwnerEmail) ||
		!auth.CheckPassword(req.Password, h.cfg.Auth.OwnerPasswordHash) {
		c.Error(apperror.NewUnauthorized("owner credentials do not match", nil))
		return
	}

	token, err := h.jwtSvc.GenerateToken(req.Email)
	if err != nil {
		c.Error(apperror.NewInternal("failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: token})
}
