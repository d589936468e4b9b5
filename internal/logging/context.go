package logging

import "context"

type logDataContextKey struct{}

// WithLogData attaches a LogData to the context for the duration of a request.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when the request did not
// pass through the logging middleware (e.g. in tests).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
