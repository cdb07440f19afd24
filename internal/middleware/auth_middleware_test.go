package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-jwt-secret")
	os.Exit(m.Run())
}

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("userID"),
			"username": c.GetString("username"),
			"role":     c.GetString("userRole"),
		})
	})
	engine.GET("/protected", chain...)
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateAccessToken(7, "admin", "admin")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	engine := newProtectedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_SetsClaimsInContext(t *testing.T) {
	token, err := utils.GenerateAccessToken(7, "manager", "manager")
	require.NoError(t, err)

	engine := newProtectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"username":"manager","role":"manager"}`, rec.Body.String())
}

func TestRoleAuthMiddleware(t *testing.T) {
	adminToken, err := utils.GenerateAccessToken(1, "admin", "admin")
	require.NoError(t, err)
	staffToken, err := utils.GenerateAccessToken(3, "staff", "staff")
	require.NoError(t, err)

	engine := newProtectedRouter(RoleAuthMiddleware("admin", "manager"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})

	t.Run("generates an ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, rec.Header().Get("X-Request-ID"), rec.Body.String())
	})

	t.Run("honors an incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "trace-123")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "trace-123", rec.Body.String())
	})
}
