package social

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	api.GET("/social-media-info", h.Get)
	api.PUT("/social-media-info", requireAdmin, h.Update)
}
