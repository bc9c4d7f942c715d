package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts files management under /uploads. Listing, uploading and
// deleting require an admin; downloading public classes does not.
func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	uploads := api.Group("/uploads")
	{
		uploads.POST("", requireAdmin, h.Upload)
		uploads.GET("", requireAdmin, h.List)
		uploads.GET("/:category/:filename", h.Serve)
		uploads.DELETE("/:category/:filename", requireAdmin, h.Delete)
	}
}
