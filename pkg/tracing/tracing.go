// Package tracing wires the global OpenTelemetry trace pipeline. Spans are
// exported over OTLP/HTTP; when tracing is disabled the pipeline is never
// built and span creation stays a no-op.
package tracing

import (
	"context"

	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Config describes the trace pipeline for one service instance.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// OTLPEndpoint is the host:port of an OTLP/HTTP collector,
	// e.g. "localhost:4318". The connection is plaintext.
	OTLPEndpoint string
	// SampleRate is a ratio in [0, 1] applied to trace IDs.
	SampleRate float64
	Enabled    bool
}

// noopShutdown stands in for the provider shutdown when tracing is off.
func noopShutdown(context.Context) error { return nil }

// InitTracer builds the exporter, resource and tracer provider from cfg and
// installs them as the process-wide defaults, including a W3C trace-context
// plus baggage propagator. The caller must invoke the returned shutdown on
// exit so buffered spans are flushed.
func InitTracer(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create OTLP exporter")
	}

	res, err := serviceResource(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(cfg.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// serviceResource tags every span with the service identity plus host and
// runtime detail, so one collector can tell instances apart.
func serviceResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithProcessRuntimeDescription(),
		resource.WithHost(),
	)
}

// samplerFor maps the configured ratio to a sampler. The endpoints get the
// dedicated always/never samplers so head sampling stays deterministic there.
func samplerFor(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0.0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Tracer returns a named tracer from the global provider:
//
//	ctx, span := tracing.Tracer("catalog").Start(ctx, "ListProducts")
//	defer span.End()
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
