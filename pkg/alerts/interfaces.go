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

// Package alerts notifies external receivers when a check changes state.
package alerts

//go:generate mockgen -destination=mock_alerts.go -package=alerts github.com/mfreeman451/cohesity-checks/pkg/alerts AlertService

import "context"

// AlertService delivers check transition alerts. The checker service calls
// every enabled AlertService on each state change and treats
// ErrWebhookCooldown as a skipped delivery rather than a failure.
type AlertService interface {
	Alert(ctx context.Context, alert *WebhookAlert) error
	IsEnabled() bool
}
