package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger sends gorm's output through zap.
type GormLogger struct {
	zl    *zap.Logger
	level gormlogger.LogLevel
}

// NewGormLogger wraps zl. A nil zl resolves zap.L() on every call so later
// ReplaceGlobals calls are picked up.
func NewGormLogger(zl *zap.Logger) *GormLogger {
	return &GormLogger{zl: zl, level: gormlogger.Warn}
}

func (l *GormLogger) logger() *zap.Logger {
	if l.zl != nil {
		return l.zl
	}
	return zap.L().Named("gorm")
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger().Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger().Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger().Error(fmt.Sprintf(msg, args...))
	}
}

// Trace logs a finished statement. Missing rows and unique violations are
// outcomes the repositories handle, so they only show up at debug level.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}

	zl := l.logger()
	switch {
	case err != nil && (errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey)):
		zl.Debug("query", append(fields, zap.Error(err))...)
	case err != nil && l.level >= gormlogger.Error:
		zl.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		zl.Warn("slow query", fields...)
	default:
		zl.Debug("query", fields...)
	}
}
