package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
		"MAX_HEADER_BYTES", "GIN_MODE", "LOG_LEVEL", "LOG_PRETTY", "API_BASE_PATH",
		"DB_PATH", "REMINDER_FREE_LIMIT", "REMINDER_PREMIUM_LIMIT", "REMINDER_NOTIFY_HOUR",
		"REMINDER_ORIGIN_COUNTRY", "CORS_ALLOWED_ORIGINS", "ENABLE_HSTS", "HSTS_MAX_AGE",
		"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q", cfg.GinMode)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Errorf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.DBPath != "reminders.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Reminders.FreeLimit != 5 || cfg.Reminders.PremiumLimit != 999 {
		t.Errorf("limits = %d/%d", cfg.Reminders.FreeLimit, cfg.Reminders.PremiumLimit)
	}
	if cfg.Reminders.NotifyHour != 10 {
		t.Errorf("NotifyHour = %d", cfg.Reminders.NotifyHour)
	}
	if cfg.Reminders.DefaultOriginCountry != "KR" {
		t.Errorf("DefaultOriginCountry = %q", cfg.Reminders.DefaultOriginCountry)
	}
	if cfg.Security.HSTSMaxAge != 180*24*time.Hour {
		t.Errorf("HSTSMaxAge = %v", cfg.Security.HSTSMaxAge)
	}
	if cfg.OTEL.SampleRatio != 1.0 {
		t.Errorf("SampleRatio = %v", cfg.OTEL.SampleRatio)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "DEBUG")
	t.Setenv("LOG_LEVEL", "warning")
	t.Setenv("API_BASE_PATH", "v2/")
	t.Setenv("REMINDER_FREE_LIMIT", "3")
	t.Setenv("REMINDER_PREMIUM_LIMIT", "50")
	t.Setenv("REMINDER_NOTIFY_HOUR", "21")
	t.Setenv("REMINDER_ORIGIN_COUNTRY", "jp")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	t.Setenv("READ_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GinMode != "debug" {
		t.Errorf("GinMode = %q", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("warning alias not normalized: %q", cfg.LogLevel)
	}
	if cfg.APIBasePath != "/v2" {
		t.Errorf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.Reminders.FreeLimit != 3 || cfg.Reminders.PremiumLimit != 50 {
		t.Errorf("limits = %d/%d", cfg.Reminders.FreeLimit, cfg.Reminders.PremiumLimit)
	}
	if cfg.Reminders.NotifyHour != 21 {
		t.Errorf("NotifyHour = %d", cfg.Reminders.NotifyHour)
	}
	if cfg.Reminders.DefaultOriginCountry != "JP" {
		t.Errorf("country not upper-cased: %q", cfg.Reminders.DefaultOriginCountry)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != "https://a.example" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "loud"},
		{"free limit zero", "REMINDER_FREE_LIMIT", "0"},
		{"premium below free", "REMINDER_PREMIUM_LIMIT", "1"},
		{"notify hour high", "REMINDER_NOTIFY_HOUR", "24"},
		{"notify hour negative", "REMINDER_NOTIFY_HOUR", "-1"},
		{"country too long", "REMINDER_ORIGIN_COUNTRY", "KOR"},
		{"sample ratio out of range", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_InvalidGinModeFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "turbo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q, want release", cfg.GinMode)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"/api/v1": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
