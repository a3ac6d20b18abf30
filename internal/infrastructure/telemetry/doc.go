// Package telemetry wires OpenTelemetry traces, metrics and logs, GORM
// tracing and Pyroscope profiling. Every provider degrades to a no-op
// when telemetry is disabled.
package telemetry
