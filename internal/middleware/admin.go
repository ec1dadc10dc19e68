package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"insurance-orchestrator/pkg/response"
)

// HeaderAdminSecret authenticates the admin-only endpoints.
const HeaderAdminSecret = "X-Admin-Secret"

// AdminSecret rejects requests that do not present the shared admin
// secret. An unset secret disables the surface entirely rather than
// leaving it open.
func (m Middleware) AdminSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(HeaderAdminSecret)
		if m.admin.SharedSecret == "" ||
			subtle.ConstantTimeCompare([]byte(secret), []byte(m.admin.SharedSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.AdminSecret: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
