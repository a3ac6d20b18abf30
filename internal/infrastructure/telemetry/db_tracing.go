package telemetry

import (
	"fmt"
	"time"

	"github.com/orgalaser/invoicing/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSlowQuery  = 200 * time.Millisecond
	queryStartSetting = "telemetry:query_start"
)

// RegisterDBTracing installs the otelgorm plugin and a slow query logger.
// Query variables stay out of spans unless DBLogFullSQL is set.
func RegisterDBTracing(db *gorm.DB, cfg config.TelemetryConfig, logger *zap.Logger) error {
	if !cfg.Enabled || !cfg.DBTraceEnabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(db.Dialector.Name())}
	if !cfg.DBLogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	threshold := cfg.DBSlowQueryThresh
	if threshold <= 0 {
		threshold = defaultSlowQuery
	}
	if err := registerSlowQueryLog(db, threshold, logger); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.DBLogFullSQL),
		zap.Duration("slow_query_threshold", threshold))
	return nil
}

func registerSlowQueryLog(db *gorm.DB, threshold time.Duration, logger *zap.Logger) error {
	start := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartSetting, time.Now())
	}
	finish := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(queryStartSetting)
		if !ok {
			return
		}
		elapsed := time.Since(v.(time.Time))
		if elapsed < threshold {
			return
		}
		logger.Warn("Slow database query",
			zap.String("table", tx.Statement.Table),
			zap.Duration("elapsed", elapsed),
			zap.Int64("rows", tx.RowsAffected),
			zap.String("trace_id", TraceID(tx.Statement.Context)))
	}

	cb := db.Callback()
	registrations := []struct {
		name string
		err  error
	}{
		{"create", cb.Create().Before("gorm:create").Register("telemetry:before_create", start)},
		{"query", cb.Query().Before("gorm:query").Register("telemetry:before_query", start)},
		{"update", cb.Update().Before("gorm:update").Register("telemetry:before_update", start)},
		{"delete", cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", start)},
		{"row", cb.Row().Before("gorm:row").Register("telemetry:before_row", start)},
		{"raw", cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", start)},
		{"create", cb.Create().After("gorm:create").Register("telemetry:after_create", finish)},
		{"query", cb.Query().After("gorm:query").Register("telemetry:after_query", finish)},
		{"update", cb.Update().After("gorm:update").Register("telemetry:after_update", finish)},
		{"delete", cb.Delete().After("gorm:delete").Register("telemetry:after_delete", finish)},
		{"row", cb.Row().After("gorm:row").Register("telemetry:after_row", finish)},
		{"raw", cb.Raw().After("gorm:raw").Register("telemetry:after_raw", finish)},
	}
	for _, r := range registrations {
		if r.err != nil {
			return fmt.Errorf("failed to register %s timing callback: %w", r.name, r.err)
		}
	}
	return nil
}
