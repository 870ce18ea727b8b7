package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/seriestrack/go-reminder-backend/internal/config"
)

func TestSetupOTel_DisabledIsNoop(t *testing.T) {
	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Enabled: false}, "test")
	if err != nil {
		t.Fatalf("SetupOTel: %v", err)
	}
	if shutdown == nil {
		t.Fatalf("expected non-nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupOTel_ExporterError(t *testing.T) {
	orig := newOTLPExporterFn
	defer func() { newOTLPExporterFn = orig }()
	newOTLPExporterFn = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return nil, errors.New("dial failed")
	}

	_, err := SetupOTel(context.Background(), config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "test",
		SampleRatio: 1,
	}, "test")
	if err == nil {
		t.Fatalf("expected exporter error to propagate")
	}
}

func TestSetupOTel_ResourceError(t *testing.T) {
	origExp := newOTLPExporterFn
	origRes := newServiceResourceFn
	defer func() {
		newOTLPExporterFn = origExp
		newServiceResourceFn = origRes
	}()
	newOTLPExporterFn = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return &otlptrace.Exporter{}, nil
	}
	newServiceResourceFn = func(ctx context.Context, serviceName, version string) (*resource.Resource, error) {
		return nil, errors.New("bad resource")
	}

	_, err := SetupOTel(context.Background(), config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "test",
		SampleRatio: 1,
	}, "test")
	if err == nil {
		t.Fatalf("expected resource error to propagate")
	}
}
