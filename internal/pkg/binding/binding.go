// Package binding decodes request bodies and runs struct validation, writing the
// error response itself when either step fails.
package binding

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miswa/internal/pkg/response"
	"miswa/internal/pkg/validator"
)

// JSON binds the body into req. It reports false after writing a 400 for a malformed
// body or a 422 for a body that fails validation.
func JSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return false
	}
	return Validate(c, req)
}

// Form binds multipart or urlencoded fields into req.
func Form(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid form body")
		return false
	}
	return Validate(c, req)
}

func Validate(c *gin.Context, req any) bool {
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return false
	}
	return true
}
