package company

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miswa/internal/docstore/docstoretest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCompanyInfo_DefaultsThenPatch(t *testing.T) {
	router := gin.New()
	allow := func(c *gin.Context) { c.Next() }
	RegisterRoutes(router.Group("/api"), NewHandler(NewStore(docstoretest.NewSQLite(t)), nil), allow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/company-info", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var info CompanyInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, Defaults().Phone, info.Phone)

	req := httptest.NewRequest(http.MethodPut, "/api/company-info", strings.NewReader(`{"phone":"+91 11 5555"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "+91 11 5555", info.Phone)
	assert.Equal(t, Defaults().Email, info.Email)
	assert.Equal(t, documentKey, info.ID)

	req = httptest.NewRequest(http.MethodPut, "/api/company-info", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
