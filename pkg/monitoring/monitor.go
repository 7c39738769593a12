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

// Package monitoring pkg/monitoring/monitor.go
package monitoring

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// MonitorConfig holds configuration for monitoring.
type MonitorConfig struct {
	Interval time.Duration
}

// Monitor runs a check function on a fixed interval.
type Monitor struct {
	config   MonitorConfig
	done     chan struct{}
	stopOnce sync.Once
}

// NewMonitor creates a new monitoring system.
func NewMonitor(cfg MonitorConfig) *Monitor {
	return &Monitor{
		config: cfg,
		done:   make(chan struct{}),
	}
}

// StartMonitoring runs check immediately and then on every tick until ctx
// is canceled or Stop is called. It blocks.
func (m *Monitor) StartMonitoring(ctx context.Context, check func(context.Context) error) {
	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	if err := check(ctx); err != nil {
		log.Warnf("Initial check failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			if err := check(ctx); err != nil {
				log.Warnf("Check failed: %v", err)
			}
		}
	}
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *Monitor) Stop(_ context.Context) {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}
