package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeline/internal/infrastructure/auth"
	"lifeline/internal/shared/constants"
	"lifeline/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newAuthTestEngine(t *testing.T, jwtService *auth.JWTService, adminOnly bool) *gin.Engine {
	t.Helper()
	engine := gin.New()
	m := NewAuthMiddleware(jwtService, nopLogger{})

	group := engine.Group("/protected")
	group.Use(m.RequireAuth())
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := c.Get(constants.ContextKeyUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return engine
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	engine := newAuthTestEngine(t, auth.NewJWTService("test-secret", 60), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	engine := newAuthTestEngine(t, jwtService, false)

	token, err := jwtService.Generate(7, constants.RoleMember)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthMiddleware_WrongSecretRejected(t *testing.T) {
	engine := newAuthTestEngine(t, auth.NewJWTService("test-secret", 60), false)

	other := auth.NewJWTService("other-secret", 60)
	token, err := other.Generate(7, constants.RoleMember)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_MemberForbidden(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	engine := newAuthTestEngine(t, jwtService, true)

	token, err := jwtService.Generate(7, constants.RoleMember)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	engine := newAuthTestEngine(t, jwtService, true)

	token, err := jwtService.Generate(1, constants.RoleAdmin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
