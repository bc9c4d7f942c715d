package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miswa/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	st, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	svc := NewService(st, "/api/uploads", 1024, nil)

	router := gin.New()
	allow := func(c *gin.Context) { c.Next() }
	RegisterRoutes(router.Group("/api"), NewHandler(svc, nil), allow)
	return router, svc
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestHandler_UploadServeDelete(t *testing.T) {
	router, _ := setupRouter(t)

	body, ct := multipartBody(t, "file", "banner.PNG", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ref Reference
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ref))
	assert.True(t, strings.HasPrefix(ref.URL, "/api/uploads/assets/"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, ref.URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/uploads", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var files []FileInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, ClassAssets, files[0].Category)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/uploads/assets/"+ref.Filename, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, ref.URL, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UploadRejectsWrongType(t *testing.T) {
	router, _ := setupRouter(t)

	body, ct := multipartBody(t, "file", "run.exe", "MZ")
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FILE_TYPE")
}

func TestHandler_UploadTooLarge(t *testing.T) {
	router, _ := setupRouter(t)

	body, ct := multipartBody(t, "file", "big.png", strings.Repeat("x", 2048))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandler_CVsAreNotPublic(t *testing.T) {
	router, svc := setupRouter(t)

	ref, err := svc.Accept(t.Context(), ClassCV, strings.NewReader("%PDF"), 4, "cv.pdf")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, ref.URL, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/uploads/secrets/x.pdf", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
