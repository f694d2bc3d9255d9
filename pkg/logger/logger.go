package logger

// Field is a structured key/value pair attached to a log record.
type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging contract shared by every layer of the service.
// Implementations must be safe for concurrent use.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}
