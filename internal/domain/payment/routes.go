package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	upi := api.Group("/upi-payment-info")
	{
		upi.GET("", h.Get)
		upi.PUT("", requireAdmin, h.Update)
		upi.POST("/logo", requireAdmin, h.UploadLogo)
		upi.POST("/qr-code", requireAdmin, h.UploadQRCode)
	}
}
