package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/pkg/response"
)

const (
	ctxAdminKey = "auth.admin"
	// CtxUsernameKey is read by the request logger.
	CtxUsernameKey = "admin_username"
)

// RequireAdmin rejects the request with 401 unless it carries a valid bearer token
// for an existing admin.
func RequireAdmin(svc *Service, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			unauthorized(c, "Authorization header must be 'Bearer <token>'")
			return
		}

		identity, err := svc.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			log.Debug("authentication failed", zap.Error(err))
			unauthorized(c, "Invalid authentication credentials")
			return
		}

		c.Set(ctxAdminKey, identity)
		c.Set(CtxUsernameKey, identity.Username)
		c.Next()
	}
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", detail)
}

// CurrentAdmin returns the identity stored by RequireAdmin.
func CurrentAdmin(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(ctxAdminKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}
