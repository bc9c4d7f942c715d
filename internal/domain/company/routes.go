package company

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	api.GET("/company-info", h.Get)
	api.PUT("/company-info", requireAdmin, h.Update)
}
