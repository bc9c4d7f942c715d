package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/domain/upload"
	"miswa/internal/pkg/binding"
	"miswa/internal/pkg/response"
)

type Handler struct {
	service *Service
	uploads *upload.Handler
	log     *zap.Logger
}

func NewHandler(service *Service, uploads *upload.Handler, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, uploads: uploads, log: log}
}

// Get godoc
// @Summary Get UPI payment information
// @Tags UPIPaymentInfo
// @Produce json
// @Success 200 {object} UPIPaymentInfo
// @Router /upi-payment-info [get]
func (h *Handler) Get(c *gin.Context) {
	info, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

func (h *Handler) Update(c *gin.Context) {
	var req Patch
	if !binding.JSON(c, &req) {
		return
	}
	info, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

// UploadLogo godoc
// @Summary Upload the UPI logo
// @Tags UPIPaymentInfo
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 200 {object} UPIPaymentInfo
// @Failure 400,413 {object} map[string]string
// @Router /upi-payment-info/logo [post]
func (h *Handler) UploadLogo(c *gin.Context) {
	h.replaceImage(c, ImageLogo)
}

// UploadQRCode godoc
// @Summary Upload the UPI QR code
// @Tags UPIPaymentInfo
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 200 {object} UPIPaymentInfo
// @Failure 400,413 {object} map[string]string
// @Router /upi-payment-info/qr-code [post]
func (h *Handler) UploadQRCode(c *gin.Context) {
	h.replaceImage(c, ImageQRCode)
}

func (h *Handler) replaceImage(c *gin.Context, img Image) {
	ref, ok := h.uploads.AcceptForm(c, upload.ClassUPI, "file")
	if !ok {
		return
	}
	info, err := h.service.ReplaceImage(c.Request.Context(), img, ref)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error("upi payment info request failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
