package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	admin := api.Group("/admin")
	admin.POST("/login", h.Login)
	admin.GET("/me", requireAdmin, h.Me)
}
