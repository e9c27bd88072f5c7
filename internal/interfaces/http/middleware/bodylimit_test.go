package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newBodyLimitRouter(maxBytes int64) *gin.Engine {
	r := gin.New()
	r.Use(BodyLimit(maxBytes))
	r.POST("/upload", func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad body"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestBodyLimitUnderLimit(t *testing.T) {
	r := newBodyLimitRouter(1024)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/upload", bytes.NewReader([]byte(`{"key":"value"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodyLimitOverLimit(t *testing.T) {
	r := newBodyLimitRouter(64)

	body := `{"data":"` + strings.Repeat("x", 256) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/upload", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
}
