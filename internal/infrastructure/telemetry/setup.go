package telemetry

import (
	"context"
	"errors"

	"github.com/orgalaser/invoicing/internal/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Telemetry bundles every provider started for the process
type Telemetry struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler
	Metrics  *DocumentMetrics
	// Logger is the application logger, bridged to OTLP when enabled
	Logger *zap.Logger
}

// Setup starts tracing, metrics, log export and profiling from cfg.
// Providers already started are shut down when a later one fails.
func Setup(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger, level zapcore.LevelEnabler) (*Telemetry, error) {
	t := &Telemetry{Logger: logger}
	fail := func(err error) (*Telemetry, error) {
		_ = t.Shutdown(context.Background())
		return nil, err
	}

	var err error
	if t.Tracer, err = NewTracerProvider(ctx, cfg, logger); err != nil {
		return fail(err)
	}
	if t.Meter, err = NewMeterProvider(ctx, cfg, logger); err != nil {
		return fail(err)
	}
	if t.Logs, err = NewLoggerProvider(ctx, cfg, logger); err != nil {
		return fail(err)
	}
	if t.Profiler, err = NewProfiler(cfg, logger); err != nil {
		return fail(err)
	}
	if t.Profiler.IsEnabled() {
		t.Tracer.EnableSpanProfiles()
	}
	if t.Metrics, err = NewDocumentMetrics(t.Meter.Meter(TracerName)); err != nil {
		return fail(err)
	}
	t.Logger = t.Logs.Bridge(logger, level)
	return t, nil
}

// Shutdown stops every started provider, joining their errors
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.Profiler != nil {
		errs = append(errs, t.Profiler.Stop())
	}
	if t.Tracer != nil {
		errs = append(errs, t.Tracer.Shutdown(ctx))
	}
	if t.Meter != nil {
		errs = append(errs, t.Meter.Shutdown(ctx))
	}
	if t.Logs != nil {
		errs = append(errs, t.Logs.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
