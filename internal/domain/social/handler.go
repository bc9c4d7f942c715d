package social

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
	info *singleton.Store[SocialMediaInfo]
	log  *zap.Logger
}

func NewStore(store docstore.Store) *singleton.Store[SocialMediaInfo] {
	return singleton.New(store, collectionName, documentKey, Defaults)
}

func NewHandler(info *singleton.Store[SocialMediaInfo], log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{info: info, log: log}
}

func (h *Handler) Get(c *gin.Context) {
	info, err := h.info.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if info.Links == nil {
		info.Links = []Link{}
	}
	response.JSON(c, http.StatusOK, info)
}

// Update replaces the link list when "links" is present.
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
	h.log.Error("social media info request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
