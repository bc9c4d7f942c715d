package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	catalogs := api.Group("/catalogs")
	{
		catalogs.GET("", h.List)
		catalogs.POST("", requireAdmin, h.Create)
		catalogs.PUT("/:id", requireAdmin, h.Update)
		catalogs.DELETE("/:id", requireAdmin, h.Delete)
	}
}
