package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCustomErrorMiddleware(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := gin.New()
	router.Use(CustomErrorMiddleware(zap.New(core)))
	router.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(errors.New("boom")).SetMeta("unwritten")
	})
	router.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("late"))
		c.String(http.StatusTeapot, "already sent")
	})
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unwritten", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "already sent", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("Handler error").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "unwritten", entries[0].ContextMap()["meta"])
	assert.Equal(t, "/written", entries[1].ContextMap()["path"])
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)

	none := corsConfig(nil)
	assert.True(t, none.AllowAllOrigins)

	listed := corsConfig([]string{"https://a.example", "https://b.example"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, listed.AllowOrigins)
	assert.NoError(t, listed.Validate())
}
