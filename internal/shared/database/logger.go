package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts slog for GORM. Inside a request the request logger from
// the context is used, so SQL lines carry the request_id.
type GormLogger struct {
	base                 *slog.Logger
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
	HideSQL              bool
	LogLevel             gormlogger.LogLevel
}

// newLogger: local/dev log every statement, prod logs errors only with SQL hidden.
func newLogger(cfg *config.Config) gormlogger.Interface {
	return NewGormLogger(slog.Default(), cfg.IsProduction())
}

func NewGormLogger(base *slog.Logger, production bool) *GormLogger {
	logLevel := gormlogger.Info
	if production {
		logLevel = gormlogger.Error
	}

	return &GormLogger{
		base:                 base,
		SlowThreshold:        200 * time.Millisecond,
		IgnoreRecordNotFound: true,
		HideSQL:              production, // search predicates carry user input
		LogLevel:             logLevel,
	}
}

func (l *GormLogger) forContext(ctx context.Context) *slog.Logger {
	if reqLogger, ok := logger.Bound(ctx); ok {
		return reqLogger.With("component", "gorm")
	}
	return l.base.With("component", "gorm")
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		l.forContext(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		l.forContext(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		l.forContext(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs one executed statement: errors, slow queries, then everything at Info
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.HideSQL {
		attrs = append(attrs, "sql", sql)
	}
	log := l.forContext(ctx)

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFound):
		log.ErrorContext(ctx, "Database query error", append(attrs, "error", err)...)

	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		log.WarnContext(ctx, "Slow SQL query detected", append(attrs, "threshold", l.SlowThreshold.String())...)

	case l.LogLevel >= gormlogger.Info:
		log.DebugContext(ctx, "SQL query executed", attrs...)
	}
}
