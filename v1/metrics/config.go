package metrics

// Config defines the configuration for the metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP endpoint
	// e.g. ":9090"
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is applied as a constant "service" label to all metrics
	ServiceName string `yaml:"serviceName" envconfig:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go, process, and build info
	// collectors on the registry
	EnableDefaultCollectors bool `yaml:"enableDefaultCollectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}
