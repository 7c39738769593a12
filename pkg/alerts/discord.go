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

import "github.com/mfreeman451/cohesity-checks/pkg/config"

// FormatDiscord selects the built-in Discord embed payload for a webhook
// that has no template of its own.
const FormatDiscord = config.WebhookFormatDiscord

// Embed colors per alert level.
const (
	discordColorError   = 0xE74C3C
	discordColorWarning = 0xFFFF00
	discordColorInfo    = 0x3498DB
)

// DiscordTemplate renders a check transition as a single Discord embed.
// Cluster and check lead the field list, then every alert detail.
const DiscordTemplate = `{
  "username": "cohesity-checks",
  "embeds": [{
    "title": {{json .alert.Title}},
    "description": {{json .alert.Message}},
    "color": {{discordColor .alert.Level}},
    "timestamp": {{json .alert.Timestamp}},
    "fields": [
      {"name": "Cluster", "value": {{json .alert.Cluster}}, "inline": true},
      {"name": "Check", "value": {{json .alert.Check}}, "inline": true}
      {{- range $key, $value := .alert.Details}},
      {"name": {{json $key}}, "value": {{json $value}}, "inline": false}
      {{- end}}
    ]
  }]
}`

func discordColor(level AlertLevel) int {
	switch level {
	case Error:
		return discordColorError
	case Warning:
		return discordColorWarning
	default:
		return discordColorInfo
	}
}

// payloadTemplate returns the template a webhook renders. An explicit
// template wins over the format default.
func payloadTemplate(cfg *config.WebhookConfig) string {
	if cfg.Template == "" && cfg.Format == FormatDiscord {
		return DiscordTemplate
	}

	return cfg.Template
}
