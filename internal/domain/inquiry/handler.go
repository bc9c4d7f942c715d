package inquiry

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

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

// Create godoc
// @Summary Submit an inquiry
// @Description Public contact form. Accepts JSON, or multipart with an optional cv file
// @Tags Inquiries
// @Accept json,mpfd
// @Produce json
// @Param request body CreateInput true "Inquiry"
// @Param cv formData file false "CV (.pdf, .doc, .docx)"
// @Success 201 {object} Inquiry
// @Failure 400,413,422 {object} map[string]string
// @Router /inquiries [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInput
	var cv *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if !h.uploads.ParseForm(c) || !binding.Form(c, &req) {
			return
		}
		fh, err := c.FormFile("cv")
		switch {
		case err == nil:
			cv = fh
		case !errors.Is(err, http.ErrMissingFile):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid cv field")
			return
		}
	} else if !binding.JSON(c, &req) {
		return
	}

	inq, err := h.service.Create(c.Request.Context(), req, cv)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, inq)
}

func (h *Handler) List(c *gin.Context) {
	inquiries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, inquiries)
}

// Export godoc
// @Summary Export inquiries as CSV
// @Tags Inquiries
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {file} file
// @Router /inquiries/export [get]
func (h *Handler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Request.Context(), &buf); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=inquiries.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}

// DownloadCV godoc
// @Summary Download the CV attached to an inquiry
// @Tags Inquiries
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id}/cv [get]
func (h *Handler) DownloadCV(c *gin.Context) {
	filename, err := h.service.CVFilename(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.uploads.Stream(c, upload.ClassCV, filename, true)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInquiryNotFound):
		response.Error(c, http.StatusNotFound, "INQUIRY_NOT_FOUND", "Inquiry not found")
	case errors.Is(err, ErrNoCV):
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "No CV attached to this inquiry")
	case errors.Is(err, upload.ErrInvalidFileType),
		errors.Is(err, upload.ErrEmptyFile),
		errors.Is(err, upload.ErrFileTooLarge):
		upload.WriteError(c, err)
	default:
		h.log.Error("inquiry request failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
