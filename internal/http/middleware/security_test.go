package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serveWith(t *testing.T, opt SecurityOptions, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	w := serveWith(t, SecurityOptions{EnablePolicy: true}, nil)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("X-Frame-Options = %q", got)
	}
	if got := w.Header().Get("Referrer-Policy"); got != "no-referrer" {
		t.Fatalf("Referrer-Policy = %q", got)
	}
	if got := w.Header().Get("Permissions-Policy"); got == "" {
		t.Fatalf("expected Permissions-Policy when EnablePolicy")
	}
}

func TestSecurityHeaders_NoHSTSOnPlainHTTP(t *testing.T) {
	w := serveWith(t, SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour}, nil)
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Fatalf("HSTS must not be set on plain HTTP, got %q", got)
	}
}

func TestSecurityHeaders_HSTSBehindProxy(t *testing.T) {
	w := serveWith(t, SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour}, func(req *http.Request) {
		req.Header.Set("X-Forwarded-Proto", "https")
	})
	got := w.Header().Get("Strict-Transport-Security")
	if !strings.HasPrefix(got, "max-age=3600") {
		t.Fatalf("HSTS = %q", got)
	}
}

func TestSecurityHeaders_NoStore(t *testing.T) {
	w := serveWith(t, SecurityOptions{NoStore: true}, nil)
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q", got)
	}
}
