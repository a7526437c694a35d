package notifier

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics delivery counter, implemented by *metrics.Metrics
type Metrics interface {
	NotificationSent(event string, delivered int)
}
