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

package cohesity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/alerts"
	"github.com/mfreeman451/cohesity-checks/pkg/checker"
	"github.com/mfreeman451/cohesity-checks/pkg/config"
	"github.com/mfreeman451/cohesity-checks/pkg/db"
	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/metrics"
	"github.com/mfreeman451/cohesity-checks/pkg/monitoring"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	log "github.com/sirupsen/logrus"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthSetter receives the serving status of every check. It is satisfied
// by *health.Server.
type HealthSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRecorder exports every result through rec.
func WithRecorder(rec *metrics.Recorder) ServiceOption {
	return func(s *Service) {
		s.recorder = rec
	}
}

// WithHealth publishes per check serving status to hs.
func WithHealth(hs HealthSetter) ServiceOption {
	return func(s *Service) {
		s.health = hs
	}
}

// WithAlerters sends state transitions to the given alerters.
func WithAlerters(a ...alerts.AlertService) ServiceOption {
	return func(s *Service) {
		s.alerters = append(s.alerters, a...)
	}
}

// Service runs the configured checks against one cluster on an interval.
type Service struct {
	cfg      *config.CheckerConfig
	adapters []*checker.CheckAdapter
	store    db.Service
	monitor  *monitoring.Monitor
	recorder *metrics.Recorder
	health   HealthSetter
	alerters []alerts.AlertService
	now      func() time.Time

	mu     sync.RWMutex
	latest map[string]checker.Status
}

// NewService builds a checker for every entry of cfg.Checks through the
// registry.
func NewService(
	ctx context.Context, cfg *config.CheckerConfig, client iris.Client, store db.Service, opts ...ServiceOption,
) (*Service, error) {
	if len(cfg.Checks) == 0 {
		return nil, errNoChecks
	}

	reg := checker.NewRegistry()
	Register(reg, client, Options{ClusterVIP: cfg.Cluster.VIP})

	s := &Service{
		cfg:     cfg,
		store:   store,
		monitor: monitoring.NewMonitor(monitoring.MonitorConfig{Interval: time.Duration(cfg.Interval)}),
		now:     time.Now,
		latest:  make(map[string]checker.Status, len(cfg.Checks)),
	}

	for _, opt := range opts {
		opt(s)
	}

	for i := range cfg.Checks {
		cc := &cfg.Checks[i]

		if _, ok := Lookup(cc.Name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProbe, cc.Name)
		}

		details, err := json.Marshal(cc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidDetails, err)
		}

		c, err := reg.Get(ctx, cc.Name, cc.Name, string(details))
		if err != nil {
			return nil, err
		}

		s.adapters = append(s.adapters, c.(*checker.CheckAdapter))
	}

	return s, nil
}

// Start runs the checks until ctx is canceled or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	log.Infof("Starting %s checks for cluster %s every %v",
		s.cfg.ServiceName, s.cfg.Cluster.VIP, time.Duration(s.cfg.Interval))

	s.monitor.StartMonitoring(ctx, s.RunOnce)

	return nil
}

// Stop ends the monitoring loop.
func (s *Service) Stop(ctx context.Context) error {
	log.Infof("Stopping %s checks", s.cfg.ServiceName)

	s.monitor.Stop(ctx)

	return nil
}

// RunOnce runs every check once, records the results and prunes history
// older than the retention period.
func (s *Service) RunOnce(ctx context.Context) error {
	var errs []error

	for _, a := range s.adapters {
		res := a.Run(ctx)

		if err := s.record(ctx, a.Name(), res); err != nil {
			errs = append(errs, err)
		}
	}

	if retention := time.Duration(s.cfg.Retention); retention > 0 {
		if err := s.store.CleanOldData(retention); err != nil {
			errs = append(errs, fmt.Errorf("clean old results: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) record(ctx context.Context, name string, res *nagios.Result) error {
	now := s.now()
	status := checker.NewStatus(name, res, now)

	s.mu.Lock()
	prev, seen := s.latest[name]
	s.latest[name] = status
	s.mu.Unlock()

	log.Debugf("Check %s: %s", name, status.Output)

	if s.recorder != nil {
		s.recorder.Observe(name, res)
	}

	if s.health != nil {
		serving := healthpb.HealthCheckResponse_NOT_SERVING
		if status.Available {
			serving = healthpb.HealthCheckResponse_SERVING
		}

		s.health.SetServingStatus(name, serving)
	}

	prevState := nagios.StateOK
	if seen {
		prevState = prev.State
	}

	if prevState != res.State {
		s.alert(ctx, name, prevState, res)
	}

	row := &db.CheckResult{
		CheckName: name,
		State:     res.State.ExitCode(),
		Value:     firstValue(res),
		Summary:   res.Summary,
		Output:    status.Output,
		Timestamp: now,
	}

	if err := s.store.StoreResult(row); err != nil {
		return fmt.Errorf("store result of %s: %w", name, err)
	}

	return nil
}

func (s *Service) alert(ctx context.Context, name string, prev nagios.State, res *nagios.Result) {
	for _, a := range s.alerters {
		if !a.IsEnabled() {
			continue
		}

		err := a.Alert(ctx, alerts.NewTransitionAlert(s.cfg.Cluster.VIP, name, prev, res))
		if err != nil && !errors.Is(err, alerts.ErrWebhookCooldown) {
			log.Errorf("Failed to send alert for %s: %v", name, err)
		}
	}
}

func firstValue(res *nagios.Result) *float64 {
	if len(res.Outcomes) == 0 {
		return nil
	}

	v := res.Outcomes[0].Metric.Value

	return &v
}

// Statuses returns the latest status of every check that has run, sorted
// by name.
func (s *Service) Statuses() []checker.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]checker.Status, 0, len(s.latest))
	for _, st := range s.latest {
		out = append(out, st)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Status returns the latest status of one check.
func (s *Service) Status(name string) (checker.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.latest[name]

	return st, ok
}
