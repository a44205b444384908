package docstore

// Config defines the configuration for the in-memory document store client.
// The zero value is usable; defaults are applied by NewClient.
type Config struct {
	// RequestCharge is the constant request-charge unit reported on every
	// response envelope. The emulator does not compute real charges; the
	// value exists so telemetry code paths that read it can be exercised.
	// Default: 1.0
	RequestCharge float64

	// Logger is an optional logger from the logger package
	Logger Logger
}

// Logger is an interface that matches the logger package's Logger
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration
const (
	DefaultRequestCharge = 1.0
)
