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

// Package iris pkg/iris/types.go
package iris

// Alert severities, categories and states as reported by the cluster.
const (
	SeverityCritical = "kCritical"
	SeverityWarning  = "kWarning"
	SeverityInfo     = "kInfo"

	CategoryClusterHealth = "kClusterHealth"
	CategoryNodeHealth    = "kNodeHealth"

	AlertStateOpen = "kOpen"
)

// Run statuses shared by backup and copy runs.
const (
	RunStatusSuccess  = "kSuccess"
	RunStatusFailure  = "kFailure"
	RunStatusRunning  = "kRunning"
	RunStatusCanceled = "kCanceled"
	RunStatusWarning  = "kWarning"
)

// AccessTokenRequest is the body of the session login call.
type AccessTokenRequest struct {
	Domain   string `json:"domain"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccessToken is returned by the session login call.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// Alert is an alert raised on the cluster.
type Alert struct {
	ID                   string         `json:"id"`
	AlertCode            string         `json:"alertCode"`
	AlertCategory        string         `json:"alertCategory"`
	AlertState           string         `json:"alertState"`
	Severity             string         `json:"severity"`
	LatestTimestampUsecs int64          `json:"latestTimestampUsecs"`
	AlertDocument        *AlertDocument `json:"alertDocument,omitempty"`
}

// AlertDocument carries the human readable part of an alert.
type AlertDocument struct {
	AlertName        string `json:"alertName"`
	AlertDescription string `json:"alertDescription"`
}

// Cluster is the cluster summary. Stats is only populated when the request
// asks for statistics.
type Cluster struct {
	ID                   int64         `json:"id"`
	Name                 string        `json:"name"`
	NodeCount            int           `json:"nodeCount"`
	UsedMetadataSpacePct *float64      `json:"usedMetadataSpacePct,omitempty"`
	Stats                *ClusterStats `json:"stats,omitempty"`
}

// ClusterStats holds the capacity and reduction figures of a cluster.
type ClusterStats struct {
	UsagePerfStats     *UsagePerfStats `json:"usagePerfStats,omitempty"`
	DataReductionRatio *float64        `json:"dataReductionRatio,omitempty"`
}

// UsagePerfStats holds physical usage counters.
type UsagePerfStats struct {
	TotalPhysicalUsageBytes int64 `json:"totalPhysicalUsageBytes"`
	PhysicalCapacityBytes   int64 `json:"physicalCapacityBytes"`
}

// RegistrationInfo summarizes registered protection sources.
type RegistrationInfo struct {
	StatsByEnv []EnvironmentStats `json:"statsByEnv"`
}

// EnvironmentStats counts protected and unprotected objects of one source
// environment.
type EnvironmentStats struct {
	Environment      string `json:"environment"`
	ProtectedCount   int64  `json:"protectedCount"`
	UnprotectedCount int64  `json:"unprotectedCount"`
}

// ProtectionRun is the latest run of a protection job.
type ProtectionRun struct {
	JobID     int64      `json:"jobId"`
	JobName   string     `json:"jobName"`
	BackupRun *BackupRun `json:"backupRun,omitempty"`
	CopyRun   []CopyRun  `json:"copyRun,omitempty"`
}

// BackupRun is the local backup of a protection run.
type BackupRun struct {
	Status string    `json:"status"`
	Error  string    `json:"error,omitempty"`
	Stats  *RunStats `json:"stats,omitempty"`
}

// RunStats holds the timing of a backup run.
type RunStats struct {
	StartTimeUsecs *int64 `json:"startTimeUsecs,omitempty"`
	EndTimeUsecs   *int64 `json:"endTimeUsecs,omitempty"`
}

// CopyRun is one copy target of a protection run.
type CopyRun struct {
	Status            string      `json:"status"`
	Error             string      `json:"error,omitempty"`
	RunStartTimeUsecs *int64      `json:"runStartTimeUsecs,omitempty"`
	Target            *CopyTarget `json:"target,omitempty"`
}

// CopyTarget identifies where a copy run went.
type CopyTarget struct {
	Type string `json:"type"`
}

// Node is a node listed by the cluster.
type Node struct {
	ID int64  `json:"id"`
	IP string `json:"ip"`
}

// ClusterStatus is the per-node service listing.
type ClusterStatus struct {
	ClusterID  int64        `json:"clusterId"`
	NodeStatus []NodeStatus `json:"nodeStatus"`
}

// NodeStatus lists the services running on a node.
type NodeStatus struct {
	NodeID        int64           `json:"nodeId"`
	ServiceStatus []ServiceStatus `json:"serviceStatus"`
}

// ServiceStatus lists the process ids of a service.
type ServiceStatus struct {
	Service    string  `json:"service"`
	ProcessIDs []int64 `json:"processIds"`
}

// Dashboard is the cluster dashboard.
type Dashboard struct {
	Dashboard *DashboardInfo `json:"dashboard,omitempty"`
}

// DashboardInfo holds dashboard tiles.
type DashboardInfo struct {
	Recoveries *RecoveriesTile `json:"recoveries,omitempty"`
}

// RecoveriesTile counts recoveries.
type RecoveriesTile struct {
	LastMonthNumRecoveries *int64 `json:"lastMonthNumRecoveries,omitempty"`
}

// AlertQuery filters the alerts listing. Zero values are left out of the
// request.
type AlertQuery struct {
	States         []string
	Severities     []string
	Categories     []string
	StartDateUsecs int64
	EndDateUsecs   int64
	MaxAlerts      int
}

// ProtectionRunQuery filters the protection runs listing.
type ProtectionRunQuery struct {
	StartTimeUsecs int64
	EndTimeUsecs   int64
	NumRuns        int64
}
