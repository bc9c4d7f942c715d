package linkpage

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

func (h *Handler) List(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pages)
}

// Get godoc
// @Summary Get a brand's link page
// @Tags LinkPages
// @Produce json
// @Param brand_slug path string true "Brand slug"
// @Success 200 {object} LinkPage
// @Failure 404 {object} map[string]string
// @Router /link-pages/{brand_slug} [get]
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("brand_slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInput
	if !binding.JSON(c, &req) {
		return
	}
	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, p)
}

// Update godoc
// @Summary Partially update a link page
// @Tags LinkPages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param brand_slug path string true "Brand slug"
// @Param request body Patch true "Fields to change"
// @Success 200 {object} LinkPage
// @Failure 404 {object} map[string]string
// @Router /link-pages/{brand_slug} [put]
func (h *Handler) Update(c *gin.Context) {
	var req Patch
	if !binding.JSON(c, &req) {
		return
	}
	p, err := h.service.Update(c.Request.Context(), c.Param("brand_slug"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("brand_slug")); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Link page deleted successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLinkPageNotFound):
		response.Error(c, http.StatusNotFound, "LINK_PAGE_NOT_FOUND", "Link page not found")
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A link page for this brand already exists")
	default:
		h.log.Error("link page request failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
