package logging

import (
	"context"
)

type logDataKey struct{}

// WithLogData attaches a per-request LogData to the context.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when the request did not
// pass through the logging middleware (e.g. in bare unit tests).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}
