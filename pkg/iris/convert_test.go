package iris

import (
	"encoding/json"
	"testing"

	"github.com/mfreeman451/cohesity-checks/pkg/nodes"
	"github.com/mfreeman451/cohesity-checks/pkg/protection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRunsJSON = `[
	{
		"jobName": "vm-backup",
		"backupRun": {"status": "kFailure", "error": "snapshot failed", "stats": {"endTimeUsecs": 1500}},
		"copyRun": [
			{"status": "kSuccess", "runStartTimeUsecs": 1400},
			{"status": "kFailure", "runStartTimeUsecs": 1600, "error": "replication lag"}
		]
	},
	{"jobName": "no-stats", "backupRun": {"status": "kSuccess"}},
	{"jobName": "running", "backupRun": {"status": "kRunning", "stats": {"endTimeUsecs": 1700}}}
]`

func TestRunRecords(t *testing.T) {
	var runs []ProtectionRun
	require.NoError(t, json.Unmarshal([]byte(testRunsJSON), &runs))

	records := RunRecords(runs)
	require.Len(t, records, 3)

	assert.Equal(t, protection.StatusFailure, records[0].Backup.Status)
	require.NotNil(t, records[0].Backup.EndTimeUsecs)
	assert.Equal(t, int64(1500), *records[0].Backup.EndTimeUsecs)
	require.Len(t, records[0].Copies, 2)
	assert.Equal(t, protection.StatusSuccess, records[0].Copies[0].Status)
	assert.Equal(t, "replication lag", records[0].Copies[1].Error)

	assert.Nil(t, records[1].Backup.EndTimeUsecs)
	assert.Equal(t, protection.StatusOther, records[2].Backup.Status)

	w, err := protection.NewTimeWindow(1000, 2000)
	require.NoError(t, err)

	res := protection.Reconcile(records, w)
	assert.Equal(t, []string{"Job Name: vm-backup Type: Backup run, Error: snapshot failed"}, res.FailedBackups)
	assert.Equal(t, []string{"Job Name: vm-backup Type: Copy run, Error: replication lag"}, res.FailedCopies)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 1, res.Skipped)
}

func TestNodeRecords(t *testing.T) {
	var status ClusterStatus
	require.NoError(t, json.Unmarshal([]byte(`{
		"clusterId": 1,
		"nodeStatus": [
			{"nodeId": 11, "serviceStatus": [{"service": "iris", "processIds": [100]}]},
			{"nodeId": 12, "serviceStatus": [{"service": "iris", "processIds": [200, 201]}]},
			{"nodeId": 13}
		]
	}`), &status))

	records := NodeRecords(&status)
	require.Len(t, records, 3)
	assert.Equal(t, int64(12), records[1].ID)
	assert.Equal(t, "iris", records[1].Services[0].Name)
	assert.Equal(t, nodes.Activity{Total: 3, Active: 1}, nodes.ComputeActivity(records))

	assert.Nil(t, NodeRecords(nil))
}
