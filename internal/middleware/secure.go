package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard security headers. HTTPS redirects are only
// enforced in production.
func SecureHeaders(isProduction bool) gin.HandlerFunc {
	s := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        isProduction,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !isProduction,
	})

	return func(c *gin.Context) {
		if err := s.Process(c.Writer, c.Request); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Request rejected by security middleware")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "request rejected"})
			return
		}
		// Process wrote a redirect
		if status := c.Writer.Status(); status >= 300 && status < 400 {
			c.Abort()
			return
		}
		c.Next()
	}
}
