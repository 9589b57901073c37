package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which queries are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// logger sends gorm logs to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(ctx context.Context, s string, args ...any) {
	l.Logger.Info().Ctx(ctx).Msgf(s, args...)
}

func (l *logger) Warn(ctx context.Context, s string, args ...any) {
	l.Logger.Warn().Ctx(ctx).Msgf(s, args...)
}

func (l *logger) Error(ctx context.Context, s string, args ...any) {
	l.Logger.Error().Ctx(ctx).Msgf(s, args...)
}

func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.Logger.Debug()
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.Logger.Error().Err(err)
	case elapsed > slowQueryThreshold:
		event = l.Logger.Warn()
	}

	event.Ctx(ctx).
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("[GORM] query")
}
