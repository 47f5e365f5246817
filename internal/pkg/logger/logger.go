package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

var global = zap.Must(zap.NewDevelopment()).Sugar()

// Init replaces the package logger. Call once at startup.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

// WithRequestID stamps the request id onto the context so every log line of one
// request can be correlated.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func with(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if rid, ok := ctx.Value(ctxKeyRequestID).(string); ok {
			return global.With("request_id", rid)
		}
	}
	return global
}

func Debugf(ctx context.Context, template string, args ...interface{}) {
	with(ctx).Debugf(template, args...)
}

func Info(ctx context.Context, args ...interface{}) {
	with(ctx).Info(args...)
}

func Infof(ctx context.Context, template string, args ...interface{}) {
	with(ctx).Infof(template, args...)
}

func Warnf(ctx context.Context, template string, args ...interface{}) {
	with(ctx).Warnf(template, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	with(ctx).Error(args...)
}

func Errorf(ctx context.Context, template string, args ...interface{}) {
	with(ctx).Errorf(template, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	with(ctx).Fatal(args...)
}
