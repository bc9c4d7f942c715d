package catalog

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
// @Summary List catalogs
// @Tags Catalogs
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} Catalog
// @Router /catalogs [get]
func (h *Handler) List(c *gin.Context) {
	catalogs, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, catalogs)
}

func (h *Handler) Create(c *gin.Context) {
	var req CatalogInput
	if !binding.JSON(c, &req) {
		return
	}
	cat, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, cat)
}

func (h *Handler) Update(c *gin.Context) {
	var req CatalogInput
	if !binding.JSON(c, &req) {
		return
	}
	cat, err := h.service.Replace(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cat)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Catalog deleted successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrCatalogNotFound) {
		response.Error(c, http.StatusNotFound, "CATALOG_NOT_FOUND", "Catalog not found")
		return
	}
	h.log.Error("catalog request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
