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

// Package protection reconciles protection job runs against a time window.
package protection

import "strings"

// DeletedJobPrefix marks jobs that were deleted on the cluster. Their runs
// are never evaluated.
const DeletedJobPrefix = "_DELETED"

// Status is the normalized outcome of a backup or copy run.
type Status int

const (
	StatusOther Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusOther:
		return "OTHER"
	default:
		return "OTHER"
	}
}

// BackupOutcome is the local backup run of a job. EndTimeUsecs is nil when
// the cluster did not report run statistics.
type BackupOutcome struct {
	Status       Status
	EndTimeUsecs *int64
	Error        string
}

// CopyOutcome is one copy target of a job run. Index 0 of a run's copies is
// the primary local copy.
type CopyOutcome struct {
	Status         Status
	StartTimeUsecs *int64
	Error          string
}

// RunRecord is the latest run of a single protection job.
type RunRecord struct {
	JobName string
	Backup  *BackupOutcome
	Copies  []CopyOutcome
}

// IsDeleted reports whether the job carries the deletion marker.
func (r *RunRecord) IsDeleted() bool {
	return strings.HasPrefix(r.JobName, DeletedJobPrefix)
}

// Result is the outcome of a reconciliation. Failure details keep the
// order of the input records.
type Result struct {
	FailedBackups []string
	FailedCopies  []string
	// Succeeded counts in-window backup runs that did not fail. Copy runs
	// never contribute.
	Succeeded int
	// Skipped counts outcomes that were missing a status block or a
	// timestamp and could not be evaluated.
	Skipped int
}

// Failures returns the total number of failed backup and copy runs.
func (r *Result) Failures() int {
	return len(r.FailedBackups) + len(r.FailedCopies)
}
