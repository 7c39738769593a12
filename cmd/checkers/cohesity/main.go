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

// Command cohesity-checker runs the configured cluster checks on an
// interval and serves their state over gRPC health and HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/alerts"
	"github.com/mfreeman451/cohesity-checks/pkg/api"
	"github.com/mfreeman451/cohesity-checks/pkg/checker/cohesity"
	"github.com/mfreeman451/cohesity-checks/pkg/config"
	"github.com/mfreeman451/cohesity-checks/pkg/db"
	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/lifecycle"
	"github.com/mfreeman451/cohesity-checks/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	errFailedToLoadConfig = errors.New("failed to load config")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	var (
		app        = kingpin.New("cohesity-checker", "Cohesity cluster health checker")
		configPath = app.Flag("config", "Path to config file").Default("/etc/cohesity-checks/cohesity.json").String()
		logLevel   = app.Flag("log-level", "Log level").Default("info").Enum("trace", "debug", "info", "warn", "error")
		logJSON    = app.Flag("log-json", "Log in JSON").Bool()
	)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return err
	}

	log.SetLevel(level)

	if *logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.Info("Starting Cohesity checker...")

	cfg, err := config.LoadCheckerConfig(*configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	client, err := newClusterClient(&cfg.Cluster)
	if err != nil {
		return err
	}

	store, err := db.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("Failed to close result store: %v", err)
		}
	}()

	reg := prometheus.NewRegistry()

	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	hs := health.NewServer()

	svc, err := cohesity.NewService(context.Background(), cfg, client, store,
		cohesity.WithRecorder(recorder),
		cohesity.WithHealth(hs),
		cohesity.WithAlerters(webhookAlerters(cfg.Webhooks)...),
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	opts := lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: cfg.ServiceName,
		Service:     svc,
		Health:      hs,
		Security:    cfg.Security,
	}

	if cfg.HTTPAddr != "" {
		opts.HTTPServer = api.NewAPIServer(svc, store, reg).Server(cfg.HTTPAddr)
	}

	if err := lifecycle.RunServer(context.Background(), &opts); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func newClusterClient(cc *config.ClusterConfig) (*iris.HTTPClient, error) {
	creds, err := config.LoadCredentials(cc.AuthFile, cc.HostName)
	if err != nil {
		return nil, err
	}

	opts := []iris.Option{
		iris.WithTimeout(time.Duration(cc.Timeout)),
		iris.WithInsecureSkipVerify(cc.InsecureSkipVerify),
	}

	if cc.RequestsPerSecond != 0 {
		opts = append(opts, iris.WithRateLimit(cc.RequestsPerSecond, 1))
	}

	return iris.NewHTTPClient(cc.VIP, *creds, opts...)
}

func webhookAlerters(configs []config.WebhookConfig) []alerts.AlertService {
	out := make([]alerts.AlertService, 0, len(configs))

	for _, wc := range configs {
		if !wc.Enabled {
			continue
		}

		out = append(out, alerts.NewWebhookAlerter(wc))
	}

	return out
}
