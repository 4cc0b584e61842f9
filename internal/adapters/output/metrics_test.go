package output

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportExporterGauges(t *testing.T) {
	e := NewReportExporter("logsec", sampleReport())

	assert.Equal(t, float64(15), testutil.ToFloat64(e.totalEntries))
	assert.Equal(t, float64(12), testutil.ToFloat64(e.failedAttempts))

	assert.Equal(t, float64(10),
		testutil.ToFloat64(e.failedLogins.WithLabelValues("192.168.1.100")))
	assert.Equal(t, float64(2),
		testutil.ToFloat64(e.failedLogins.WithLabelValues("10.0.0.5")))

	assert.Equal(t, float64(10),
		testutil.ToFloat64(e.alerts.WithLabelValues("THRESHOLD_BRUTE_FORCE", "192.168.1.100")))
	assert.Equal(t, float64(9),
		testutil.ToFloat64(e.alerts.WithLabelValues("TIME_WINDOW_BRUTE_FORCE", "192.168.1.100")))
}

func TestReportExporterDefaultNamespace(t *testing.T) {
	e := NewReportExporter("", sampleReport())

	families, err := e.registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	for _, mf := range families {
		assert.Contains(t, mf.GetName(), "logsec_")
	}
}

func TestReportExporterStopWithoutStart(t *testing.T) {
	e := NewReportExporter("logsec", sampleReport())
	assert.NoError(t, e.StopServer())
}
