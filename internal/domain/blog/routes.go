package blog

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /blogs. gin needs one wildcard name per segment, so the public
// read takes the slug from :id.
func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	blogs := api.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/:id", h.GetBySlug)
		blogs.POST("", requireAdmin, h.Create)
		blogs.PUT("/:id", requireAdmin, h.Update)
		blogs.DELETE("/:id", requireAdmin, h.Delete)
	}
}
