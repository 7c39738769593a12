/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package iris

import (
	"github.com/mfreeman451/cohesity-checks/pkg/nodes"
	"github.com/mfreeman451/cohesity-checks/pkg/protection"
)

// RunRecords converts protection runs into reconciliation records. Missing
// run statistics stay nil so the reconciliation can skip them.
func RunRecords(runs []ProtectionRun) []protection.RunRecord {
	records := make([]protection.RunRecord, 0, len(runs))

	for i := range runs {
		run := &runs[i]

		rec := protection.RunRecord{JobName: run.JobName}

		if run.BackupRun != nil {
			rec.Backup = &protection.BackupOutcome{
				Status: runStatus(run.BackupRun.Status),
				Error:  run.BackupRun.Error,
			}

			if run.BackupRun.Stats != nil {
				rec.Backup.EndTimeUsecs = run.BackupRun.Stats.EndTimeUsecs
			}
		}

		if len(run.CopyRun) > 0 {
			rec.Copies = make([]protection.CopyOutcome, len(run.CopyRun))

			for j, cp := range run.CopyRun {
				rec.Copies[j] = protection.CopyOutcome{
					Status:         runStatus(cp.Status),
					StartTimeUsecs: cp.RunStartTimeUsecs,
					Error:          cp.Error,
				}
			}
		}

		records = append(records, rec)
	}

	return records
}

func runStatus(s string) protection.Status {
	switch s {
	case RunStatusSuccess:
		return protection.StatusSuccess
	case RunStatusFailure:
		return protection.StatusFailure
	default:
		return protection.StatusOther
	}
}

// NodeRecords converts the per-node service listing into activity records.
func NodeRecords(status *ClusterStatus) []nodes.NodeRecord {
	if status == nil {
		return nil
	}

	records := make([]nodes.NodeRecord, 0, len(status.NodeStatus))

	for _, ns := range status.NodeStatus {
		rec := nodes.NodeRecord{
			ID:       ns.NodeID,
			Services: make([]nodes.ServiceStatus, 0, len(ns.ServiceStatus)),
		}

		for _, svc := range ns.ServiceStatus {
			rec.Services = append(rec.Services, nodes.ServiceStatus{
				Name:       svc.Service,
				ProcessIDs: svc.ProcessIDs,
			})
		}

		records = append(records, rec)
	}

	return records
}
