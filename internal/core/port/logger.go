package port

// Fields is the type for passing structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort defines the contract for the logging system.
// It keeps the application core decoupled from any concrete logger.
type LoggerPort interface {
	// Info writes an informational message.
	Info(msg string, fields Fields)

	// Warn writes a warning.
	Warn(msg string, fields Fields)

	// Error writes an error message, usually together with an error object.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger instance with the fields already attached.
	// Useful for carrying context (for example, trace_id).
	WithFields(fields Fields) LoggerPort
}
