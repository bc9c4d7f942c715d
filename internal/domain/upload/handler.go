package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/pkg/response"
)

// Handler serves the files management endpoints and public file downloads.
type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, log: log}
}

// Upload godoc
// @Summary Upload a site asset
// @Description Store an image or PDF and return its public URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} Reference
// @Failure 400,401,413 {object} map[string]string
// @Router /uploads [post]
func (h *Handler) Upload(c *gin.Context) {
	ref, ok := h.AcceptForm(c, ClassAssets, "file")
	if !ok {
		return
	}
	response.JSON(c, http.StatusCreated, ref)
}

// AcceptForm stores the multipart field as class and writes the error response on
// failure. Other domains use it for their own upload endpoints.
func (h *Handler) AcceptForm(c *gin.Context, class Class, field string) (*Reference, bool) {
	if !h.ParseForm(c) {
		return nil, false
	}
	fh, err := c.FormFile(field)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "no file provided")
		return nil, false
	}
	ref, err := h.service.AcceptMultipart(c.Request.Context(), class, fh)
	if err != nil {
		h.writeServiceError(c, err)
		return nil, false
	}
	return ref, true
}

// formOverhead is the room left for non-file fields and multipart framing.
const formOverhead = 1 << 20

// ParseForm caps the request body at the upload limit and parses the multipart
// form. It writes 413 when the body is over the cap and 400 when it is malformed.
func (h *Handler) ParseForm(c *gin.Context) bool {
	limit := h.service.MaxSize() + formOverhead
	if c.Request.ContentLength > limit {
		WriteError(c, ErrFileTooLarge)
		return false
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	if _, err := c.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(c, ErrFileTooLarge)
		} else {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid form body")
		}
		return false
	}
	return true
}

// List godoc
// @Summary List uploaded files
// @Tags Uploads
// @Security BearerAuth
// @Produce json
// @Param category query string false "cv, upi or assets"
// @Success 200 {array} FileInfo
// @Router /uploads [get]
func (h *Handler) List(c *gin.Context) {
	var classes []Class
	if raw := c.Query("category"); raw != "" {
		class, err := ParseClass(raw)
		if err != nil {
			WriteError(c, err)
			return
		}
		classes = append(classes, class)
	}

	files, err := h.service.List(c.Request.Context(), classes...)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, files)
}

// Delete godoc
// @Summary Delete an uploaded file
// @Tags Uploads
// @Security BearerAuth
// @Param category path string true "cv, upi or assets"
// @Param filename path string true "Stored filename"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /uploads/{category}/{filename} [delete]
func (h *Handler) Delete(c *gin.Context) {
	class, err := ParseClass(c.Param("category"))
	if err != nil {
		WriteError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), class, c.Param("filename")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// Serve streams a public file. CVs are never served here.
func (h *Handler) Serve(c *gin.Context) {
	class, err := ParseClass(c.Param("category"))
	if err != nil || !class.Public() {
		WriteError(c, ErrFileNotFound)
		return
	}
	h.Stream(c, class, c.Param("filename"), false)
}

// Stream writes a stored file with its content type. attachment asks the browser to
// download rather than display it.
func (h *Handler) Stream(c *gin.Context, class Class, filename string, attachment bool) {
	rc, info, err := h.service.Retrieve(c.Request.Context(), class, filename)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
	}
	if attachment {
		headers["Content-Disposition"] = `attachment; filename="` + filename + `"`
	}
	c.DataFromReader(http.StatusOK, info.Size, ContentTypeFor(filename), rc, headers)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	if !isKnown(err) {
		h.log.Error("upload operation failed", zap.Error(err))
	}
	WriteError(c, err)
}

func isKnown(err error) bool {
	for _, known := range []error{ErrEmptyFile, ErrFileTooLarge, ErrInvalidFileType, ErrFileNotFound, ErrUnknownCategory} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

// WriteError maps upload errors onto HTTP responses.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidFileType):
		response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Invalid file type")
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "File is empty")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			"File exceeds the maximum upload size")
	case errors.Is(err, ErrUnknownCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown file category")
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed")
	}
}
