package nagios

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errUpstream = errors.New("connection refused")

func mustContext(t *testing.T, name, warning, critical string) *ScalarContext {
	t.Helper()

	sc, err := NewScalarContext(name, warning, critical)
	require.NoError(t, err)

	return sc
}

func TestNewScalarContext(t *testing.T) {
	sc, err := NewScalarContext("protected", "90:", "")
	require.NoError(t, err)
	require.NotNil(t, sc.Warning)
	assert.Nil(t, sc.Critical)

	_, err = NewScalarContext("bad", "10:5", "")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewScalarContext("bad", "", "x")
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestMetricPerfdata(t *testing.T) {
	sc := mustContext(t, "cluster_used_storage", "~:60", "~:80")

	m := NewMetric("Cluster used storage", 42, "cluster_used_storage").
		WithUnit("%").WithMin(0).WithMax(100)
	assert.Equal(t, "'Cluster used storage'=42%;~:60;~:80;0;100", m.Perfdata(sc))

	m = NewMetric("Alerts with issues", 3, "warning/critical").WithMin(0)
	assert.Equal(t, "'Alerts with issues'=3;~:60;~:80;0", m.Perfdata(sc))

	bare := mustContext(t, "ratio", "", "")
	m = NewMetric("Reduction ratio", 2, "ratio")
	assert.Equal(t, "'Reduction ratio'=2", m.Perfdata(bare))

	m = NewMetric("it's", 1.5, "ratio")
	assert.Equal(t, "'it''s'=1.5", m.Perfdata(bare))
}

func TestCheckRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := NewMockProbe(ctrl)
	probe.EXPECT().Name().Return("COHESITY_CLUSTER_STORAGE").AnyTimes()
	probe.EXPECT().Probe(gomock.Any()).Return([]Metric{
		NewMetric("Cluster used storage", 85, "cluster_used_storage").WithUnit("%").WithMin(0).WithMax(100),
	}, nil)

	check := NewCheck(probe, mustContext(t, "cluster_used_storage", "~:60", "~:80"))
	res := check.Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, StateCritical, res.State)
	assert.Equal(t, "Cluster used storage is 85% (outside range ~:80)", res.Summary)
	assert.Equal(t,
		"COHESITY_CLUSTER_STORAGE CRITICAL - Cluster used storage is 85% (outside range ~:80) | "+
			"'Cluster used storage'=85%;~:60;~:80;0;100",
		res.String())
}

func TestCheckRunOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := NewMockProbe(ctrl)
	probe.EXPECT().Name().Return("COHESITY_ALERTS").AnyTimes()
	probe.EXPECT().Probe(gomock.Any()).Return([]Metric{
		NewMetric("Alerts with issues", 0, "warning/critical").WithMin(0),
	}, nil)

	res := NewCheck(probe, mustContext(t, "warning/critical", "~:0", "~:0")).Run(context.Background())

	assert.Equal(t, StateOK, res.State)
	assert.Equal(t, "COHESITY_ALERTS OK - Alerts with issues is 0 | 'Alerts with issues'=0;~:0;~:0;0", res.String())
}

func TestCheckRunInvertedSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := NewMockProbe(ctrl)
	probe.EXPECT().Name().Return("COHESITY_REDUCTION").AnyTimes()
	probe.EXPECT().Probe(gomock.Any()).Return([]Metric{NewMetric("Reduction ratio", 1, "ratio")}, nil)

	res := NewCheck(probe, mustContext(t, "ratio", "@0:1", "")).Run(context.Background())

	assert.Equal(t, StateWarning, res.State)
	assert.Equal(t, "Reduction ratio is 1 (inside range 0:1)", res.Summary)
}

func TestCheckRunFailuresAreUnknown(t *testing.T) {
	tests := []struct {
		name    string
		metrics []Metric
		err     error
		panics  bool
		wantErr error
	}{
		{name: "probe error", err: errUpstream, wantErr: errUpstream},
		{name: "deadline", err: context.DeadlineExceeded, wantErr: context.DeadlineExceeded},
		{name: "no metrics", wantErr: ErrNoMetrics},
		{name: "missing context", metrics: []Metric{NewMetric("x", 0, "nope")}, wantErr: ErrNoContext},
		{name: "panic", panics: true, wantErr: ErrProbePanic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			probe := NewMockProbe(ctrl)
			probe.EXPECT().Name().Return("COHESITY_TEST").AnyTimes()

			call := probe.EXPECT().Probe(gomock.Any())
			if tt.panics {
				call.DoAndReturn(func(context.Context) ([]Metric, error) {
					panic("nil stats")
				})
			} else {
				call.Return(tt.metrics, tt.err)
			}

			res := NewCheck(probe, mustContext(t, "ok", "~:0", "~:0")).Run(context.Background())

			assert.Equal(t, StateUnknown, res.State)
			assert.NotEqual(t, StateOK, res.State)
			require.ErrorIs(t, res.Err, tt.wantErr)
			assert.Empty(t, res.Outcomes)
			assert.Contains(t, res.String(), "COHESITY_TEST UNKNOWN - ")
		})
	}
}

func TestCheckRunAggregatesWorst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := NewMockProbe(ctrl)
	probe.EXPECT().Name().Return("MULTI").AnyTimes()
	probe.EXPECT().Probe(gomock.Any()).Return([]Metric{
		NewMetric("a", 5, "pct"),
		NewMetric("b", 95, "pct"),
		NewMetric("c", 70, "pct"),
	}, nil)

	res := NewCheck(probe, mustContext(t, "pct", "~:60", "~:80")).Run(context.Background())

	assert.Equal(t, StateCritical, res.State)
	require.Len(t, res.Outcomes, 3)
	assert.Equal(t, StateOK, res.Outcomes[0].State)
	assert.Equal(t, StateCritical, res.Outcomes[1].State)
	assert.Equal(t, StateWarning, res.Outcomes[2].State)
	assert.Equal(t, "b is 95 (outside range ~:80)", res.Summary)
	assert.Equal(t, "'a'=5;~:60;~:80 'b'=95;~:60;~:80 'c'=70;~:60;~:80", res.Perfdata())
}

func TestMainWritesOutputLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := NewMockProbe(ctrl)
	probe.EXPECT().Name().Return("COHESITY_NODE_STATUS").AnyTimes()
	probe.EXPECT().Probe(gomock.Any()).Return([]Metric{NewMetric("Inactive nodes", 1, "inactive_nodes")}, nil)

	var out bytes.Buffer

	code := Main(context.Background(), NewCheck(probe, mustContext(t, "inactive_nodes", "~:0", "~:0")), &out)

	assert.Equal(t, 2, code)
	assert.Equal(t, "COHESITY_NODE_STATUS CRITICAL - Inactive nodes is 1 (outside range ~:0) | 'Inactive nodes'=1;~:0;~:0\n", out.String())
}
