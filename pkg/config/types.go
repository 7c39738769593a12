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

package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/models"
)

// Duration is a time.Duration that unmarshals from a JSON string such as
// "5m" or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))

		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// MarshalJSON encodes the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// ClusterConfig locates a cluster and its credentials.
type ClusterConfig struct {
	VIP                string   `json:"vip"`       // cluster address or FQDN
	HostName           string   `json:"host_name"` // section of the auth file
	AuthFile           string   `json:"auth_file"`
	Timeout            Duration `json:"timeout,omitempty"`
	RequestsPerSecond  float64  `json:"requests_per_second,omitempty"`
	InsecureSkipVerify bool     `json:"insecure_skip_verify,omitempty"`
}

// CheckConfig enables one probe with optional threshold overrides. Nil
// thresholds keep the probe defaults; an empty string disables one.
type CheckConfig struct {
	Name     string  `json:"name"`
	Warning  *string `json:"warning,omitempty"`
	Critical *string `json:"critical,omitempty"`
	Days     int     `json:"days,omitempty"` // protection-runs only
}

// WebhookConfig is one alert receiver. Format "discord" posts a Discord
// embed; an empty format posts the alert as JSON. Template overrides both.
type WebhookConfig struct {
	Enabled  bool     `json:"enabled"`
	URL      string   `json:"url"`
	Format   string   `json:"format,omitempty"`
	Cooldown Duration `json:"cooldown"`
	Template string   `json:"template"`
	Headers  []Header `json:"headers,omitempty"`
}

// Webhook payload formats.
const (
	WebhookFormatJSON    = "json"
	WebhookFormatDiscord = "discord"
)

// Header represents a custom HTTP header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CheckerConfig is the configuration of the checker daemon.
type CheckerConfig struct {
	ServiceName string                 `json:"service_name"`
	ListenAddr  string                 `json:"listen_addr"` // gRPC health endpoint
	HTTPAddr    string                 `json:"http_addr,omitempty"`
	Interval    Duration               `json:"interval"`
	DBPath      string                 `json:"db_path"`
	Retention   Duration               `json:"retention,omitempty"`
	Cluster     ClusterConfig          `json:"cluster"`
	Checks      []CheckConfig          `json:"checks"`
	Webhooks    []WebhookConfig        `json:"webhooks,omitempty"`
	Security    *models.SecurityConfig `json:"security"`
}

// Validate checks required fields and fills in the default service name.
func (c *CheckerConfig) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr is required", ErrInvalidConfig)
	}

	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}

	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path is required", ErrInvalidConfig)
	}

	if c.Cluster.VIP == "" || c.Cluster.HostName == "" || c.Cluster.AuthFile == "" {
		return fmt.Errorf("%w: cluster vip, host_name and auth_file are required", ErrInvalidConfig)
	}

	if len(c.Checks) == 0 {
		return fmt.Errorf("%w: no checks configured", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Checks))

	for _, check := range c.Checks {
		if check.Name == "" {
			return fmt.Errorf("%w: check without name", ErrInvalidConfig)
		}

		if _, dup := seen[check.Name]; dup {
			return fmt.Errorf("%w: duplicate check %q", ErrInvalidConfig, check.Name)
		}

		seen[check.Name] = struct{}{}
	}

	for i := range c.Webhooks {
		if err := c.Webhooks[i].validate(); err != nil {
			return fmt.Errorf("%w: webhook %d: %w", ErrInvalidConfig, i, err)
		}
	}

	if c.ServiceName == "" {
		c.ServiceName = "cohesity"
	}

	return nil
}

func (w *WebhookConfig) validate() error {
	switch w.Format {
	case "", WebhookFormatJSON, WebhookFormatDiscord:
	default:
		return fmt.Errorf("%w %q", errUnknownFormat, w.Format)
	}

	if w.Enabled && w.URL == "" {
		return errNoWebhookURL
	}

	return nil
}
