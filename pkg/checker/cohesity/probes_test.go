package cohesity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func runCheck(t *testing.T, name string, client iris.Client, opts Options) *nagios.Result {
	t.Helper()

	opts.Now = func() time.Time { return testNow }

	check, err := New(name, client, opts)
	require.NoError(t, err)

	return check.Run(context.Background())
}

func TestProbeAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetAlerts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *iris.AlertQuery) ([]iris.Alert, error) {
			assert.Equal(t, []string{iris.AlertStateOpen}, q.States)
			assert.Equal(t, testNow.UnixMicro(), q.EndDateUsecs)
			assert.Equal(t, testNow.Add(-24*time.Hour).UnixMicro(), q.StartDateUsecs)

			return []iris.Alert{
				{Severity: iris.SeverityCritical},
				{Severity: iris.SeverityWarning},
				{Severity: iris.SeverityInfo},
			}, nil
		})

	res := runCheck(t, "alerts", client, Options{})

	assert.Equal(t, nagios.StateCritical, res.State)
	assert.Equal(t,
		"COHESITY_ALERT_STATUS CRITICAL - Alerts with issues is 2 (outside range ~:0) | 'Alerts with issues'=2;~:0;~:0;0",
		res.String())
}

func TestProbeClusterHealthCountsWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetAlerts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *iris.AlertQuery) ([]iris.Alert, error) {
			assert.Equal(t, []string{iris.CategoryClusterHealth}, q.Categories)

			return []iris.Alert{{Severity: iris.SeverityWarning}, {Severity: iris.SeverityInfo}}, nil
		})

	res := runCheck(t, "cluster-health", client, Options{})

	require.Len(t, res.Outcomes, 1)
	assert.InDelta(t, 1, res.Outcomes[0].Metric.Value, 0)
	assert.Equal(t, nagios.StateCritical, res.State)
}

func TestProbeNodeAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetAlerts(gomock.Any(), gomock.Any()).Return(nil, nil)

	res := runCheck(t, "node-alerts", client, Options{})

	assert.Equal(t, nagios.StateOK, res.State)
	assert.Equal(t, "Unhealthy nodes is 0", res.Summary)
}

func TestProbeNodeCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetNodes(gomock.Any()).Return([]iris.Node{{ID: 1}, {ID: 2}}, nil)
	client.EXPECT().GetCluster(gomock.Any(), false).Return(&iris.Cluster{NodeCount: 3}, nil)

	res := runCheck(t, "node-count", client, Options{})

	require.Len(t, res.Outcomes, 1)
	assert.InDelta(t, 1, res.Outcomes[0].Metric.Value, 0)
	assert.Equal(t, nagios.StateCritical, res.State)
}

func TestProbeNodeActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetClusterStatus(gomock.Any()).Return(&iris.ClusterStatus{
		NodeStatus: []iris.NodeStatus{
			{NodeID: 1, ServiceStatus: []iris.ServiceStatus{{Service: "bridge", ProcessIDs: []int64{10, 11}}}},
			{NodeID: 2, ServiceStatus: []iris.ServiceStatus{{Service: "bridge", ProcessIDs: []int64{12}}}},
		},
	}, nil)

	res := runCheck(t, "node-activity", client, Options{Warning: ptr(""), Critical: ptr("~:1")})

	assert.Equal(t, nagios.StateOK, res.State)
	assert.Equal(t, "'Inactive nodes'=1;;~:1;0;2", res.Perfdata())
}

func TestProbeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetCluster(gomock.Any(), true).Return(&iris.Cluster{
		Stats: &iris.ClusterStats{UsagePerfStats: &iris.UsagePerfStats{
			TotalPhysicalUsageBytes: 829,
			PhysicalCapacityBytes:   1000,
		}},
	}, nil)

	res := runCheck(t, "storage", client, Options{})

	assert.Equal(t,
		"COHESITY_CLUSTER_STORAGE CRITICAL - Cluster used storage is 82% (outside range ~:80) | "+
			"'Cluster used storage'=82%;~:60;~:80;0;100",
		res.String())
}

func TestProbeStorageZeroCapacityIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetCluster(gomock.Any(), true).Return(&iris.Cluster{
		Stats: &iris.ClusterStats{UsagePerfStats: &iris.UsagePerfStats{TotalPhysicalUsageBytes: 10}},
	}, nil)

	res := runCheck(t, "storage", client, Options{})

	assert.Equal(t, nagios.StateUnknown, res.State)
	assert.Empty(t, res.Outcomes)
}

func TestProbeStorageMissingStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetCluster(gomock.Any(), true).Return(&iris.Cluster{}, nil)

	res := runCheck(t, "storage", client, Options{})

	assert.Equal(t, nagios.StateUnknown, res.State)
	assert.ErrorIs(t, res.Err, iris.ErrMissingField)
}

func TestProbeMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetCluster(gomock.Any(), false).Return(&iris.Cluster{UsedMetadataSpacePct: ptr(61.9)}, nil)

	res := runCheck(t, "metadata", client, Options{})

	assert.Equal(t, nagios.StateWarning, res.State)
	assert.Equal(t, "Cluster used Metadata storage is 61% (outside range ~:60)", res.Summary)
}

func TestProbeObjects(t *testing.T) {
	info := &iris.RegistrationInfo{StatsByEnv: []iris.EnvironmentStats{
		{Environment: "kVMware", ProtectedCount: 80, UnprotectedCount: 10},
		{Environment: "kPhysical", ProtectedCount: 5, UnprotectedCount: 5},
	}}

	tests := []struct {
		name  string
		probe string
		info  *iris.RegistrationInfo
		state nagios.State
		value float64
	}{
		{name: "protected below warning", probe: "objects-protected", info: info, state: nagios.StateWarning, value: 85},
		{name: "unprotected", probe: "objects-unprotected", info: info, state: nagios.StateOK, value: 15},
		{name: "unprotected without sources", probe: "objects-unprotected", info: &iris.RegistrationInfo{}, value: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := iris.NewMockClient(ctrl)

			client.EXPECT().GetRegistrationInfo(gomock.Any()).Return(tt.info, nil)

			res := runCheck(t, tt.probe, client, Options{})

			require.NoError(t, res.Err)
			assert.Equal(t, tt.state, res.State)
			assert.InDelta(t, tt.value, res.Outcomes[0].Metric.Value, 0)
		})
	}
}

func TestProbeObjectsProtectedWithoutSourcesIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetRegistrationInfo(gomock.Any()).Return(&iris.RegistrationInfo{}, nil)

	res := runCheck(t, "objects-protected", client, Options{})

	assert.Equal(t, nagios.StateUnknown, res.State)
}

func TestProbeReduction(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		state nagios.State
	}{
		{name: "no reduction", ratio: 1.7, state: nagios.StateWarning},
		{name: "reduced", ratio: 3.2, state: nagios.StateOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := iris.NewMockClient(ctrl)

			client.EXPECT().GetCluster(gomock.Any(), true).Return(&iris.Cluster{
				Stats: &iris.ClusterStats{DataReductionRatio: ptr(tt.ratio)},
			}, nil)

			res := runCheck(t, "reduction", client, Options{})

			assert.Equal(t, tt.state, res.State)
		})
	}
}

func TestProbeRecoveries(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetDashboard(gomock.Any()).Return(&iris.Dashboard{
		Dashboard: &iris.DashboardInfo{Recoveries: &iris.RecoveriesTile{LastMonthNumRecoveries: ptr(int64(4))}},
	}, nil)

	res := runCheck(t, "recoveries", client, Options{})

	assert.Equal(t, nagios.StateWarning, res.State)
	assert.Equal(t, "Recoveries last month is 4 (outside range ~:0)", res.Summary)
}

func TestProbeRecoveriesMissingTile(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetDashboard(gomock.Any()).Return(&iris.Dashboard{}, nil)

	res := runCheck(t, "recoveries", client, Options{})

	assert.Equal(t, nagios.StateOK, res.State)
}

func TestProbeProtectionRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	inWindow := testNow.Add(-time.Hour).UnixMicro()
	old := testNow.Add(-72 * time.Hour).UnixMicro()

	client.EXPECT().GetProtectionRuns(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *iris.ProtectionRunQuery) ([]iris.ProtectionRun, error) {
			assert.Equal(t, testNow.Add(-48*time.Hour).UnixMicro(), q.StartTimeUsecs)
			assert.Equal(t, testNow.UnixMicro(), q.EndTimeUsecs)

			return []iris.ProtectionRun{
				{JobName: "vm", BackupRun: &iris.BackupRun{
					Status: iris.RunStatusFailure, Error: "timeout",
					Stats: &iris.RunStats{EndTimeUsecs: ptr(inWindow)},
				}},
				{JobName: "old", BackupRun: &iris.BackupRun{
					Status: iris.RunStatusFailure, Stats: &iris.RunStats{EndTimeUsecs: ptr(old)},
				}},
				{JobName: "_DELETED_db", BackupRun: &iris.BackupRun{
					Status: iris.RunStatusFailure, Stats: &iris.RunStats{EndTimeUsecs: ptr(inWindow)},
				}},
			}, nil
		})

	res := runCheck(t, "protection-runs", client, Options{Days: 2})

	assert.Equal(t, nagios.StateCritical, res.State)
	assert.InDelta(t, 1, res.Outcomes[0].Metric.Value, 0)
}

func TestProbePolicyRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetProtectionRuns(gomock.Any(), gomock.Any()).Return([]iris.ProtectionRun{
		{JobName: "vm", BackupRun: &iris.BackupRun{
			Status: iris.RunStatusSuccess,
			Stats:  &iris.RunStats{EndTimeUsecs: ptr(testNow.Add(2 * time.Hour).UnixMicro())},
		}},
	}, nil)

	res := runCheck(t, "policy-runs", client, Options{})

	assert.Equal(t, nagios.StateOK, res.State)
	assert.Equal(t, "COHESITY_PROTECTION_POLICY_RUN_STATUS", res.Name)
}

func TestPolicyRunsCountsReplicaCopiesOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	started := ptr(testNow.Add(-time.Hour).UnixMicro())

	client.EXPECT().GetProtectionRuns(gomock.Any(), gomock.Any()).Return([]iris.ProtectionRun{
		{JobName: "primary-only", CopyRun: []iris.CopyRun{
			{Status: iris.RunStatusFailure, Error: "local", RunStartTimeUsecs: started},
		}},
		{JobName: "replicated", CopyRun: []iris.CopyRun{
			{Status: iris.RunStatusSuccess, RunStartTimeUsecs: started},
			{Status: iris.RunStatusFailure, Error: "remote unreachable", RunStartTimeUsecs: started},
		}},
	}, nil)

	res := runCheck(t, "policy-runs", client, Options{})

	assert.Equal(t, nagios.StateCritical, res.State)
	assert.InDelta(t, 1, res.Outcomes[0].Metric.Value, 0)
}

func TestProbeClientErrorIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := iris.NewMockClient(ctrl)

	client.EXPECT().GetDashboard(gomock.Any()).Return(nil, errors.New("connection refused"))

	res := runCheck(t, "recoveries", client, Options{})

	assert.Equal(t, nagios.StateUnknown, res.State)
	assert.Contains(t, res.Summary, "connection refused")
}
