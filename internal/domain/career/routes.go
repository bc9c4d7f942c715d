package career

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	careers := api.Group("/careers")
	{
		careers.GET("", h.List)
		careers.POST("", requireAdmin, h.Create)
		careers.PUT("/:id", requireAdmin, h.Update)
		careers.DELETE("/:id", requireAdmin, h.Delete)
	}
}
