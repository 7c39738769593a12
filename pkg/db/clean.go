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

package db

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// CleanOldData deletes check results older than the retention period.
func (db *DB) CleanOldData(retentionPeriod time.Duration) error {
	cutoff := time.Now().Add(-retentionPeriod).UTC()

	res, err := db.Exec("DELETE FROM check_results WHERE timestamp < ?", cutoff)
	if err != nil {
		return fmt.Errorf("%w check results: %w", ErrFailedToClean, err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("Removed %d check results older than %v", n, retentionPeriod)
	}

	return nil
}
