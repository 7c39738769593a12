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

// Package nodes infers node liveness from per-service process listings.
package nodes

// minActiveProcesses is the number of distinct process ids above which a
// service is considered running. A single id is a placeholder process.
const minActiveProcesses = 1

// ServiceStatus lists the process ids reported for one service on a node.
type ServiceStatus struct {
	Name       string
	ProcessIDs []int64
}

// NodeRecord is the service listing of a single node.
type NodeRecord struct {
	ID       int64
	Services []ServiceStatus
}

// Activity holds the node counts derived from a listing.
type Activity struct {
	Total  int
	Active int
}

// Inactive returns the number of nodes that are not active.
func (a Activity) Inactive() int {
	return a.Total - a.Active
}

// ComputeActivity counts the active nodes. A node is active as soon as one
// of its services reports more than one distinct process id; a node with no
// services is inactive.
func ComputeActivity(nodes []NodeRecord) Activity {
	a := Activity{Total: len(nodes)}

	for i := range nodes {
		if IsActive(&nodes[i]) {
			a.Active++
		}
	}

	return a
}

// IsActive reports whether the node has at least one running service.
func IsActive(node *NodeRecord) bool {
	for i := range node.Services {
		if distinct(node.Services[i].ProcessIDs) > minActiveProcesses {
			return true
		}
	}

	return false
}

func distinct(ids []int64) int {
	if len(ids) <= 1 {
		return len(ids)
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	return len(seen)
}
