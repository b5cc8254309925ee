package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func whoAmI(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{"userID": userID, "name": middleware.GetUserNameFromContext(c)})
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret, "contabilidad-app"), whoAmI)

	token, err := utils.GenerateJWT("user-1", "Luis Peña", secret, time.Minute, "contabilidad-app")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["userID"])
	assert.Equal(t, "Luis Peña", body["name"])
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired, err := utils.GenerateJWT("user-1", "", secret, -time.Minute, "")
	require.NoError(t, err)
	wrongSecret, err := utils.GenerateJWT("user-1", "", "other-secret", time.Minute, "")
	require.NoError(t, err)
	noSubject, err := utils.GenerateJWT("", "", secret, time.Minute, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		msg    string
	}{
		{name: "missing header", header: "", msg: "Authorization header required"},
		{name: "not bearer", header: "Basic abc", msg: "Authorization header format must be Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, msg: "Token has expired"},
		{name: "wrong secret", header: "Bearer " + wrongSecret, msg: "Invalid token"},
		{name: "no subject", header: "Bearer " + noSubject, msg: "Invalid token claims"},
	}

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret, ""), whoAmI)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}

func TestRateLimit_MemoryStore(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M", nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots", nil)
	assert.Error(t, err)
}

func TestSecureHeaders_Development(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecureHeaders(false))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestStructuredLogging_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromContext(c).Info("inside handler")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := serve(r, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "req-42", entry["request_id"])
	}
}
