package response

import "github.com/gin-gonic/gin"

// JSON writes data as the bare response body.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, code string, detail string) {
	c.JSON(statusCode, gin.H{
		"detail": detail,
		"code":   code,
	})
}

func AbortError(c *gin.Context, statusCode int, code string, detail string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"detail": detail,
		"code":   code,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, detail string, fields any) {
	c.JSON(statusCode, gin.H{
		"detail": detail,
		"code":   code,
		"fields": fields,
	})
}

// ValidationError reports per-field validation failures with 422.
func ValidationError(c *gin.Context, fields map[string]string) {
	ErrorWithDetails(c, 422, "VALIDATION_ERROR", "Validation failed", fields)
}
