package metrics

import (
	"errors"
	"testing"

	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderObserve(t *testing.T) {
	reg := prometheus.NewRegistry()

	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	res := &nagios.Result{
		Name:  "CLUSTER STORAGE",
		State: nagios.StateWarning,
		Outcomes: []nagios.Outcome{
			{Metric: nagios.Metric{Label: "Storage used", Value: 82}, State: nagios.StateWarning},
		},
	}

	rec.Observe("storage", res)
	rec.Observe("storage", res)

	assert.InDelta(t, 1, testutil.ToFloat64(rec.state.WithLabelValues("storage")), 0)
	assert.InDelta(t, 82, testutil.ToFloat64(rec.value.WithLabelValues("storage", "Storage used")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.runs.WithLabelValues("storage", "WARNING")), 0)
}

func TestRecorderObserveFailureKeepsValue(t *testing.T) {
	rec, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	rec.Observe("storage", &nagios.Result{
		Outcomes: []nagios.Outcome{{Metric: nagios.Metric{Label: "Storage used", Value: 40}}},
	})
	rec.Observe("storage", &nagios.Result{State: nagios.StateUnknown, Err: errors.New("boom")})
	rec.Observe("storage", nil)

	assert.InDelta(t, 3, testutil.ToFloat64(rec.state.WithLabelValues("storage")), 0)
	assert.InDelta(t, 40, testutil.ToFloat64(rec.value.WithLabelValues("storage", "Storage used")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.runs.WithLabelValues("storage", "UNKNOWN")), 0)
}

func TestNewRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
