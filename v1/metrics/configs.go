package metrics

// Config defines the configuration for the metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS" default:":9090"`

	// ServiceName is applied as a constant service label to every metric
	// registered through this package.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME" default:"modeltrack"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS" default:"true"`
}
