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

import "context"

//go:generate mockgen -destination=mock_iris.go -package=iris github.com/mfreeman451/cohesity-checks/pkg/iris Client

// Client is the subset of the cluster management API used by the probes.
type Client interface {
	GetAlerts(ctx context.Context, query *AlertQuery) ([]Alert, error)
	GetCluster(ctx context.Context, fetchStats bool) (*Cluster, error)
	GetRegistrationInfo(ctx context.Context) (*RegistrationInfo, error)
	GetProtectionRuns(ctx context.Context, query *ProtectionRunQuery) ([]ProtectionRun, error)
	GetNodes(ctx context.Context) ([]Node, error)
	GetClusterStatus(ctx context.Context) (*ClusterStatus, error)
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
