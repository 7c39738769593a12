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

package alerts

import "errors"

var (
	// ErrWebhookDisabled is returned by Alert on a disabled webhook.
	ErrWebhookDisabled = errors.New("webhook disabled")
	// ErrWebhookCooldown is returned when the same transition was sent
	// within the webhook cooldown.
	ErrWebhookCooldown = errors.New("transition alert suppressed by cooldown")

	errInvalidJSON       = errors.New("alert template did not render valid JSON")
	errWebhookStatus     = errors.New("webhook receiver rejected alert")
	errTemplateParse     = errors.New("failed to parse alert template")
	errTemplateExecution = errors.New("failed to render alert template")
)
