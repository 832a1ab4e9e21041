package observability

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair attached to log entries.
type Field struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

const requestIDHeader = "X-Request-ID"

// WithFields returns a context carrying the given fields in addition to the ones already on ctx.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// Middleware tags every admin API request with a request id and logs its outcome.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = "req-" + uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"path", c.FullPath()},
			Field{"method", c.Request.Method},
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
			if c.Request.URL.Path == "/health" {
				return
			}
			l.Info(c.Request.Context(), "admin request",
				Field{"status", c.Writer.Status()},
				Field{"latency_ms", time.Since(start).Milliseconds()},
			)
		}()
		c.Next()
	}
}

// Logger wraps zap with context-carried fields.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger builds a production JSON logger. LOG_LEVEL overrides the default info level.
func NewLogger() *Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return wrap(zapLogger)
}

// NewLoggerFromZap wraps an existing zap logger, mostly for tests that need to observe output.
func NewLoggerFromZap(zapLogger *zap.Logger) *Logger {
	return wrap(zapLogger)
}

func wrap(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger: zapLogger.WithOptions(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)}
}

func (l *Logger) with(ctx context.Context, extra []Field) *zap.Logger {
	fields := getObservabilityFields(ctx)
	if len(fields)+len(extra) == 0 {
		return l.zapLogger
	}
	zapFields := make([]zapcore.Field, 0, len(fields)+len(extra))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	for _, f := range extra {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Info(msg)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Warn(msg)
}

func (l *Logger) WarnWithError(ctx context.Context, msg string, err error) {
	l.with(ctx, nil).Warn(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.with(ctx, nil).Error(msg, zap.Error(err))
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Debug(msg)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}
