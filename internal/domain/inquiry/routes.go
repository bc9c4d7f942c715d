package inquiry

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	inquiries := api.Group("/inquiries")
	{
		inquiries.POST("", h.Create)
		inquiries.GET("", requireAdmin, h.List)
		inquiries.GET("/export", requireAdmin, h.Export)
		inquiries.GET("/:id/cv", requireAdmin, h.DownloadCV)
		inquiries.DELETE("/:id", requireAdmin, h.Delete)
	}
}
