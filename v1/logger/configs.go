package logger

// Supported log levels
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum level that will be logged
	// One of: debug, info, warning, error
	// Default: info
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is added as a constant field to every log entry
	ServiceName string `yaml:"serviceName" envconfig:"LOGGER_SERVICE_NAME"`

	// EnableTracing enables extraction of trace and span ids from the
	// context in the *WithContext logging methods
	EnableTracing bool `yaml:"enableTracing" envconfig:"LOGGER_ENABLE_TRACING"`
}
