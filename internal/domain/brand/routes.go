package brand

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	brands := api.Group("/brands")
	{
		brands.GET("", h.List)
		brands.POST("", requireAdmin, h.Create)
		brands.PUT("/:id", requireAdmin, h.Update)
		brands.DELETE("/:id", requireAdmin, h.Delete)
	}
}
