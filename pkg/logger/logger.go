package logger

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value any
}

type Client interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
