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

// Package db pkg/db/interfaces.go
package db

import (
	"time"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/mfreeman451/cohesity-checks/pkg/db Service

// Service represents all database operations.
type Service interface {
	StoreResult(result *CheckResult) error
	GetLatestResults() ([]CheckResult, error)
	GetHistory(checkName string, limit int) ([]CheckResult, error)

	// Maintenance operations.

	CleanOldData(retentionPeriod time.Duration) error
	Close() error
}
