package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware injects a fresh LogData into every huma request and emits one
// completion line per request with the accumulated fields and timings.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		stopTimer := logData.AddTiming("durationMs")

		next(huma.WithValue(ctx, logDataKey{}, logData))

		stopTimer()
		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
