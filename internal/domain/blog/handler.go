package blog

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
// @Summary List blog posts
// @Tags Blogs
// @Produce json
// @Param published_only query bool false "Only published posts"
// @Success 200 {array} Blog
// @Router /blogs [get]
func (h *Handler) List(c *gin.Context) {
	publishedOnly, _ := strconv.ParseBool(c.DefaultQuery("published_only", "false"))
	blogs, err := h.service.List(c.Request.Context(), publishedOnly)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, blogs)
}

// GetBySlug godoc
// @Summary Get a blog post by slug
// @Tags Blogs
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} Blog
// @Failure 404 {object} map[string]string
// @Router /blogs/{slug} [get]
func (h *Handler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req BlogInput
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

func (h *Handler) Update(c *gin.Context) {
	var req BlogInput
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

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrBlogNotFound) {
		response.Error(c, http.StatusNotFound, "BLOG_NOT_FOUND", "Blog not found")
		return
	}
	h.log.Error("blog request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
