package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arlab_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/", AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RoleAuthMiddleware(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("userID"),
			"role":    c.MustGet("userRole"),
		})
	})
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	recorder := doRequest(t, newProtectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	recorder := doRequest(t, newProtectedRouter(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	recorder := doRequest(t, newProtectedRouter(), "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_ValidTokenExposesIdentity(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	token, err := utils.GenerateAccessToken(7, "reception@lab.test", "reception")
	require.NoError(t, err)

	recorder := doRequest(t, newProtectedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user_id":7`)
	assert.Contains(t, recorder.Body.String(), `"role":"reception"`)
}

func TestRoleAuthMiddleware_AllowsListedRole(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	token, err := utils.GenerateAccessToken(7, "reception@lab.test", "reception")
	require.NoError(t, err)

	recorder := doRequest(t, newProtectedRouter("admin", "reception"), "Bearer "+token)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRoleAuthMiddleware_RejectsUnlistedRole(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	token, err := utils.GenerateAccessToken(7, "reception@lab.test", "reception")
	require.NoError(t, err)

	recorder := doRequest(t, newProtectedRouter("admin"), "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
