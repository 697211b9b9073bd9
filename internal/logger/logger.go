// Package logger defines the structured logger used across the application.
package logger

// Field keys shared by every download operation.
const (
	FieldOp    = "op"
	FieldOpID  = "op_id"
	FieldURL   = "url"
	FieldError = "error"
)

type Fields map[string]any

type Logger interface {
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	WithFields(fields Fields) Logger
	WithField(key string, value any) Logger
	WithError(err error) Logger
}
