package logger

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level sets the minimum level that is emitted. Unknown values fall back
	// to info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL" default:"info"`

	// ServiceName is stamped on every entry as the service field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME" default:"modeltrack"`

	// EnableTracing adds trace_id and span_id fields to entries logged through
	// the *WithContext methods when a span is active in the context.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING" default:"false"`
}
