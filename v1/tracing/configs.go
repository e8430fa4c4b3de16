package tracing

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Mode selects which provider path governs initialization and reset.
type Mode int

const (
	// ModeGlobal resolves against the process-wide provider slot, adopting an
	// existing provider or installing one when the slot is empty.
	ModeGlobal Mode = iota

	// ModeIsolated creates a provider owned exclusively by this library that
	// never touches the global slot.
	ModeIsolated
)

func (m Mode) String() string {
	if m == ModeIsolated {
		return "isolated"
	}
	return "global"
}

// envPrefix is the prefix for all environment variables read by LoadConfig.
const envPrefix = "modeltrack"

// Config defines the configuration for the tracing subsystem.
type Config struct {
	// UseIsolatedProvider selects isolated mode when true. Absent or false
	// means global mode.
	UseIsolatedProvider bool `yaml:"use_isolated_provider" envconfig:"USE_ISOLATED_TRACER_PROVIDER" default:"false"`

	// ServiceName is recorded on the resource of providers this library
	// creates.
	ServiceName string `yaml:"service_name" envconfig:"TRACING_SERVICE_NAME" default:"modeltrack"`

	// AppEnv is the deployment environment recorded on the resource.
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV" default:"development"`

	// EnableExport attaches an OTLP batch span processor when true.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACING_ENABLE_EXPORT" default:"false"`

	// ExportProtocol selects the OTLP transport, "http" or "grpc".
	ExportProtocol string `yaml:"export_protocol" envconfig:"TRACING_EXPORT_PROTOCOL" default:"http"`

	// ExportEndpoint overrides the collector endpoint. Empty uses the
	// exporter's default (localhost:4318 for http, localhost:4317 for grpc).
	ExportEndpoint string `yaml:"export_endpoint" envconfig:"TRACING_EXPORT_ENDPOINT"`

	// ExportInsecure disables transport security on the exporter connection.
	ExportInsecure bool `yaml:"export_insecure" envconfig:"TRACING_EXPORT_INSECURE" default:"false"`
}

// LoadConfig reads the tracing configuration from MODELTRACK_* environment
// variables and validates it. Configuration errors surface here, at
// initialization, never at first tracer use.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("tracing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Mode returns the provider mode selected by the configuration.
func (c Config) Mode() Mode {
	if c.UseIsolatedProvider {
		return ModeIsolated
	}
	return ModeGlobal
}

// Validate checks the settings envconfig cannot express as defaults.
func (c Config) Validate() error {
	switch c.ExportProtocol {
	case ProtocolHTTP, ProtocolGRPC:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExportProtocol, c.ExportProtocol)
	}
}
