package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	claims := NewGroup("claims", "/claims")
	claims.GET("", ok)
	claims.POST("/:id/accept", ok)
	r.Register(claims)
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/claims", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/claims/abc/accept", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterVersionPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	group := NewGroup("ledger", "/ledger")
	group.GET("/health", ok)
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/ledger/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/health", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterMiddlewareApplied(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	var touched bool
	r.Use(func(c *gin.Context) {
		touched = true
		c.Next()
	})

	group := NewGroup("session", "/session")
	group.GET("", ok)
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, touched)
}

func TestGroupName(t *testing.T) {
	assert.Equal(t, "claims", NewGroup("claims", "/claims").Name())
}
