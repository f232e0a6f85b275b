// Package telemetry exports game spans over OTLP and hands out tracers.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	scopePrefix       = "zyveria/"
	honeycombEndpoint = "https://api.honeycomb.io"
)

// Config names the running game in exported spans.
type Config struct {
	ServiceName string
	Version     string
	Environment string
}

// Setup installs a tracer provider that batches spans to an OTLP HTTP
// collector chosen by the OTEL_EXPORTER_OTLP_* variables. The returned
// function flushes pending spans and should run on exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	return install(ctx, cfg, sdktrace.WithBatcher(exporter))
}

// install registers a global provider fed by the given span pipeline.
func install(ctx context.Context, cfg Config, pipeline sdktrace.TracerProviderOption) (func(context.Context) error, error) {
	res, err := Resource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(pipeline, sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

// Resource describes this game process. It is built without
// resource.Default() so its schema URL never conflicts with the SDK's.
func Resource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	if cfg.ServiceName == "" {
		return nil, errors.New("telemetry: service name is required")
	}
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.Version),
			attribute.String("deployment.environment", cfg.Environment),
			attribute.String("host.name", host),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// ExportEnv points the OTLP exporter at Honeycomb when HONEYCOMB_API_KEY is
// set, using HONEYCOMB_DATASET or dataset. OTEL_* variables that are already
// set are left alone. It reports whether a Honeycomb key was found.
func ExportEnv(dataset string) bool {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}
	if d := os.Getenv("HONEYCOMB_DATASET"); d != "" {
		dataset = d
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
	return true
}

// Tracer returns the tracer for one game component, such as "combat".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(scopePrefix + component)
}

// Disable installs a no-op tracer provider, for runs without telemetry.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}
