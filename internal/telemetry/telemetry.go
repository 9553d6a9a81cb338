package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Options struct {
	Name           string
	Version        string
	Env            string
	TracesAddress  string
	MetricsAddress string
}

// Setup installs the global tracer, meter and logger providers. Trace and
// metric export stay off when their address is empty. The returned func
// flushes and stops everything that was started.
func Setup(ctx context.Context, options Options) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(options.Name),
		semconv.ServiceVersion(options.Version),
		semconv.DeploymentEnvironment(options.Env),
	)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	// logs
	logExporter, err := stdoutlog.New()
	if err != nil {
		return shutdown, err
	}

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
	)

	shutdowns = append(shutdowns, loggerProvider.Shutdown)

	global.SetLoggerProvider(loggerProvider)

	slog.SetDefault(otelslog.NewLogger(options.Name, otelslog.WithLoggerProvider(loggerProvider)))

	// traces
	if len(options.TracesAddress) > 0 {
		traceExporter, err := otlptracehttp.New(
			ctx,
			otlptracehttp.WithEndpoint(options.TracesAddress),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return shutdown, err
		}

		tracerProvider := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(traceExporter),
		)

		shutdowns = append(shutdowns, tracerProvider.Shutdown)

		otel.SetTracerProvider(tracerProvider)
	}

	// metrics
	if len(options.MetricsAddress) > 0 {
		metricExporter, err := otlpmetrichttp.New(
			ctx,
			otlpmetrichttp.WithEndpoint(options.MetricsAddress),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return shutdown, err
		}

		meterProvider := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(15*time.Second))),
		)

		shutdowns = append(shutdowns, meterProvider.Shutdown)

		otel.SetMeterProvider(meterProvider)

		if err := host.Start(host.WithMeterProvider(meterProvider)); err != nil {
			return shutdown, err
		}

		if err := runtime.Start(runtime.WithMeterProvider(meterProvider)); err != nil {
			return shutdown, err
		}
	}

	return shutdown, nil
}
