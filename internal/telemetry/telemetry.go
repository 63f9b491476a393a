package telemetry

import (
	"context"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName identifies this service in exported spans.
const DefaultServiceName = "scout-agent"

const tracerName = "github.com/ChamsBouzaiene/scout"

// Config controls trace export.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string // OTLP/gRPC collector endpoint, host:port
	Insecure       bool
	Exporter       string // "otlp" (default), "stdout", "none"
}

// ConfigFromEnv builds a Config from the standard OTEL_* variables.
func ConfigFromEnv() Config {
	cfg := Config{
		ServiceName: os.Getenv("OTEL_SERVICE_NAME"),
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Exporter:    os.Getenv("OTEL_TRACES_EXPORTER"),
		Insecure:    true,
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	return cfg
}

// Init sets up the global tracer provider and returns a tracer plus a
// shutdown function. Telemetry never blocks the agent: when no endpoint is
// configured, or the exporter cannot be built, Init logs a warning and
// returns a no-op tracer with a no-op shutdown.
func Init(ctx context.Context, cfg Config) (trace.Tracer, func(context.Context) error) {
	noShutdown := func(context.Context) error { return nil }

	exporter, ok := buildExporter(ctx, cfg)
	if !ok {
		return noop.NewTracerProvider().Tracer(tracerName), noShutdown
	}

	attrs := []attribute.KeyValue{
		attribute.String("service.name", cfg.ServiceName),
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, attribute.String("service.version", cfg.ServiceVersion))
	}
	res := resource.NewWithAttributes("", attrs...)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Tracer(tracerName), tp.Shutdown
}

func buildExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, bool) {
	switch cfg.Exporter {
	case "none":
		return nil, false

	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Printf("⚠️  stdout trace exporter failed, tracing disabled: %v", err)
			return nil, false
		}
		return exporter, true

	default:
		if cfg.Endpoint == "" {
			log.Printf("⚠️  OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
			return nil, false
		}
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		exporter, err := otlptracegrpc.New(ctx, opts...)
		if err != nil {
			log.Printf("⚠️  OTLP trace exporter failed, tracing disabled: %v", err)
			return nil, false
		}
		return exporter, true
	}
}
