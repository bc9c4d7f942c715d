package linkpage

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	pages := api.Group("/link-pages")
	{
		pages.GET("", h.List)
		pages.GET("/:brand_slug", h.Get)
		pages.POST("", requireAdmin, h.Create)
		pages.PUT("/:brand_slug", requireAdmin, h.Update)
		pages.DELETE("/:brand_slug", requireAdmin, h.Delete)
	}
}
