package tracing

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTracingEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MODELTRACK_USE_ISOLATED_TRACER_PROVIDER",
		"MODELTRACK_TRACING_SERVICE_NAME",
		"MODELTRACK_APP_ENV",
		"MODELTRACK_TRACING_ENABLE_EXPORT",
		"MODELTRACK_TRACING_EXPORT_PROTOCOL",
		"MODELTRACK_TRACING_EXPORT_ENDPOINT",
		"MODELTRACK_TRACING_EXPORT_INSECURE",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearTracingEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Absent mode setting means global mode.
	assert.Equal(t, ModeGlobal, cfg.Mode())
	assert.False(t, cfg.UseIsolatedProvider)
	assert.Equal(t, ProtocolHTTP, cfg.ExportProtocol)
	assert.False(t, cfg.EnableExport)
	assert.Equal(t, "modeltrack", cfg.ServiceName)
}

func TestLoadConfigIsolatedMode(t *testing.T) {
	clearTracingEnv(t)
	t.Setenv("MODELTRACK_USE_ISOLATED_TRACER_PROVIDER", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ModeIsolated, cfg.Mode())
}

func TestLoadConfigInvalidModeValue(t *testing.T) {
	clearTracingEnv(t)
	t.Setenv("MODELTRACK_USE_ISOLATED_TRACER_PROVIDER", "not-a-bool")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigInvalidProtocol(t *testing.T) {
	clearTracingEnv(t)
	t.Setenv("MODELTRACK_TRACING_EXPORT_PROTOCOL", "udp")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, IsInvalidExportProtocol(err))
}

func TestLoadConfigExportSettings(t *testing.T) {
	clearTracingEnv(t)
	t.Setenv("MODELTRACK_TRACING_ENABLE_EXPORT", "true")
	t.Setenv("MODELTRACK_TRACING_EXPORT_PROTOCOL", "grpc")
	t.Setenv("MODELTRACK_TRACING_EXPORT_ENDPOINT", "collector:4317")
	t.Setenv("MODELTRACK_TRACING_EXPORT_INSECURE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.EnableExport)
	assert.Equal(t, ProtocolGRPC, cfg.ExportProtocol)
	assert.Equal(t, "collector:4317", cfg.ExportEndpoint)
	assert.True(t, cfg.ExportInsecure)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "global", ModeGlobal.String())
	assert.Equal(t, "isolated", ModeIsolated.String())
}
