package tracer

// Config defines the configuration for the tracer.
type Config struct {
	// ServiceName identifies this service in exported traces
	ServiceName string `yaml:"serviceName" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment (e.g. "production", "staging")
	AppEnv string `yaml:"appEnv" envconfig:"APP_ENV"`

	// EnableExport enables the OTLP HTTP exporter. The exporter endpoint is
	// taken from the standard OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `yaml:"enableExport" envconfig:"TRACER_ENABLE_EXPORT"`
}
