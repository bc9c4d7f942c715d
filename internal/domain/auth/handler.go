package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/pkg/response"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, log: log}
}

// Login godoc
// @Summary Admin login
// @Description Exchange username and password for a bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "username and password are required")
		return
	}

	token, err := h.service.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Incorrect username or password")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.JSON(c, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me godoc
// @Summary Current admin
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]string
// @Router /admin/me [get]
func (h *Handler) Me(c *gin.Context) {
	identity, ok := CurrentAdmin(c)
	if !ok {
		unauthorized(c, "Not authenticated")
		return
	}
	response.JSON(c, http.StatusOK, MeResponse{Username: identity.Username, ID: identity.ID})
}
