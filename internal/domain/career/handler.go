package career

import (
	"errors"
	"net/http"
	"strconv"

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
// @Summary List job openings
// @Tags Careers
// @Produce json
// @Param active_only query bool false "Only active openings"
// @Success 200 {array} Career
// @Router /careers [get]
func (h *Handler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	careers, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, careers)
}

// Create godoc
// @Summary Create a job opening
// @Tags Careers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CareerInput true "Opening; requirements may be a string or list"
// @Success 201 {object} Career
// @Router /careers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CareerInput
	if !binding.JSON(c, &req) {
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, out)
}

func (h *Handler) Update(c *gin.Context) {
	var req CareerInput
	if !binding.JSON(c, &req) {
		return
	}
	out, err := h.service.Replace(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Career deleted successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrCareerNotFound) {
		response.Error(c, http.StatusNotFound, "CAREER_NOT_FOUND", "Career not found")
		return
	}
	h.log.Error("career request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
