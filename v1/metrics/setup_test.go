package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(Config{
		Address:                 ":9191",
		ServiceName:             "test-service",
		EnableDefaultCollectors: false,
	})

	require.NotNil(t, m.Registry)
	require.NotNil(t, m.Registerer())
	assert.Equal(t, ":9191", m.Server.Addr)
}

func TestRegistererAppliesServiceLabel(t *testing.T) {
	m := NewMetrics(Config{
		Address:     ":9191",
		ServiceName: "test-service",
	})

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "demo_total",
		Help: "Demo counter.",
	})
	require.NoError(t, m.Registerer().Register(counter))
	counter.Inc()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "demo_total" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		labels := mf.GetMetric()[0].GetLabel()
		require.Len(t, labels, 1)
		assert.Equal(t, "service", labels[0].GetName())
		assert.Equal(t, "test-service", labels[0].GetValue())
	}
	assert.True(t, found)
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestDefaultCollectorsRegistered(t *testing.T) {
	m := NewMetrics(Config{
		Address:                 ":9191",
		ServiceName:             "test-service",
		EnableDefaultCollectors: true,
	})

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
