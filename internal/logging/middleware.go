package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware creates a LogData per request, attaches it to the request
// context, and emits one structured entry when the handler completes.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		operationID := ctx.Operation().OperationID

		log.Infof("Handler.%v.Start", operationID)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataContextKey{}, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
