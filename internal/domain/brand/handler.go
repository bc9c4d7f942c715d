package brand

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/pkg/binding"
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

// List godoc
// @Summary List brands
// @Tags Brands
// @Produce json
// @Success 200 {array} Brand
// @Router /brands [get]
func (h *Handler) List(c *gin.Context) {
	brands, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, brands)
}

// Create godoc
// @Summary Create brand
// @Tags Brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BrandInput true "Brand"
// @Success 201 {object} Brand
// @Router /brands [post]
func (h *Handler) Create(c *gin.Context) {
	var req BrandInput
	if !binding.JSON(c, &req) {
		return
	}
	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, b)
}

// Update godoc
// @Summary Replace brand
// @Tags Brands
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param request body BrandInput true "Brand"
// @Success 200 {object} Brand
// @Failure 404 {object} map[string]string
// @Router /brands/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req BrandInput
	if !binding.JSON(c, &req) {
		return
	}
	b, err := h.service.Replace(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, b)
}

// Delete godoc
// @Summary Delete brand
// @Tags Brands
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /brands/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrBrandNotFound) {
		response.Error(c, http.StatusNotFound, "BRAND_NOT_FOUND", "Brand not found")
		return
	}
	h.log.Error("brand request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
