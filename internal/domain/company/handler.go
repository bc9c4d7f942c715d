package company

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/docstore"
	"miswa/internal/domain/singleton"
	"miswa/internal/pkg/binding"
	"miswa/internal/pkg/response"
)

type Handler struct {
	info *singleton.Store[CompanyInfo]
	log  *zap.Logger
}

func NewStore(store docstore.Store) *singleton.Store[CompanyInfo] {
	return singleton.New(store, collectionName, documentKey, Defaults)
}

func NewHandler(info *singleton.Store[CompanyInfo], log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{info: info, log: log}
}

// Get godoc
// @Summary Get company information
// @Tags CompanyInfo
// @Produce json
// @Success 200 {object} CompanyInfo
// @Router /company-info [get]
func (h *Handler) Get(c *gin.Context) {
	info, err := h.info.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

// Update godoc
// @Summary Update company information
// @Description Only the fields present in the body are changed
// @Tags CompanyInfo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body Patch true "Fields to change"
// @Success 200 {object} CompanyInfo
// @Router /company-info [put]
func (h *Handler) Update(c *gin.Context) {
	var req Patch
	if !binding.JSON(c, &req) {
		return
	}
	info, err := h.info.Update(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error("company info request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
