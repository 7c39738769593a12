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

package protection

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	kindBackup = "Backup run"
	kindCopy   = "Copy run"
)

// Reconcile classifies the runs that fall inside the window.
//
// Runs of deleted jobs are ignored. An in-window backup failure adds a
// detail to FailedBackups and any other in-window backup status counts as
// succeeded. Copies are examined from index 1 and only the first in-window
// copy failure of each job is reported. Outcomes with missing data are
// counted in Skipped and never abort the reconciliation.
func Reconcile(runs []RunRecord, window TimeWindow) Result {
	var res Result

	for i := range runs {
		run := &runs[i]

		if run.IsDeleted() {
			continue
		}

		reconcileBackup(run, window, &res)
		reconcileCopies(run, window, &res)
	}

	return res
}

func reconcileBackup(run *RunRecord, window TimeWindow, res *Result) {
	if run.Backup == nil || run.Backup.EndTimeUsecs == nil {
		log.Debugf("Skipping backup run of job %q: no run statistics", run.JobName)

		res.Skipped++

		return
	}

	if !window.Contains(*run.Backup.EndTimeUsecs) {
		return
	}

	if run.Backup.Status == StatusFailure {
		res.FailedBackups = append(res.FailedBackups, failureDetail(run.JobName, kindBackup, run.Backup.Error))

		return
	}

	res.Succeeded++
}

func reconcileCopies(run *RunRecord, window TimeWindow, res *Result) {
	if len(run.Copies) <= 1 {
		return
	}

	for i := 1; i < len(run.Copies); i++ {
		c := &run.Copies[i]

		if c.StartTimeUsecs == nil {
			log.Debugf("Skipping copy run %d of job %q: no start time", i, run.JobName)

			res.Skipped++

			continue
		}

		if c.Status == StatusFailure && window.Contains(*c.StartTimeUsecs) {
			res.FailedCopies = append(res.FailedCopies, failureDetail(run.JobName, kindCopy, c.Error))

			return
		}
	}
}

func failureDetail(jobName, kind, errText string) string {
	return fmt.Sprintf("Job Name: %s Type: %s, Error: %s", jobName, kind, errText)
}
