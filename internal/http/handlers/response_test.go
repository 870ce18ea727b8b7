package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_EnvelopeAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-123")
		Fail(c, http.StatusNotFound, ErrCodeNotFound, "reminder not found")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.RequestID != "rid-123" {
		t.Fatalf("request id = %q, want rid-123", er.RequestID)
	}
	if er.Code != ErrCodeNotFound || er.Message != "reminder not found" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}

func TestFail_AbortsHandlerChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	called := false
	r.GET("/x",
		func(c *gin.Context) { Fail(c, http.StatusForbidden, ErrCodeForbidden, "nope") },
		func(c *gin.Context) { called = true },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if called {
		t.Fatalf("fail must abort the chain")
	}
}
