package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSwaggerProtection(t *testing.T) {
	serve := func(cfg SwaggerConfig, remote string) int {
		router := gin.New()
		router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
			c.String(http.StatusOK, "docs")
		})
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNotFound, serve(SwaggerConfig{Enabled: false}, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, serve(SwaggerConfig{Enabled: true}, "10.0.0.1:1234"))

	restricted := SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.1.0/24", "10.0.0.7"}}
	assert.Equal(t, http.StatusOK, serve(restricted, "192.168.1.20:5000"))
	assert.Equal(t, http.StatusOK, serve(restricted, "10.0.0.7:5000"))
	assert.Equal(t, http.StatusForbidden, serve(restricted, "10.0.0.8:5000"))
}
