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

// Package lifecycle runs a service next to its gRPC and HTTP servers.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/grpc"
	"github.com/mfreeman451/cohesity-checks/pkg/models"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	MaxRecvSize     = 4 * 1024 * 1024 // 4MB
	MaxSendSize     = 4 * 1024 * 1024 // 4MB
	ShutdownTimeout = 10 * time.Second
)

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// ServerOptions holds configuration for creating a server.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Service     Service
	Health      *health.Server // optional, shared with the service
	HTTPServer  *http.Server   // optional
	Security    *models.SecurityConfig
}

// RunServer starts a service with the provided options and blocks until a
// signal, a server error or ctx ends it.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Infof("*** Starting service %s", opts.ServiceName)

	grpcServer, closeSecurity, err := setupGRPCServer(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to setup gRPC server: %w", err)
	}
	defer closeSecurity()

	errChan := make(chan error, 3)

	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			errChan <- fmt.Errorf("service: %w", err)
		}
	}()

	go func() {
		if err := grpcServer.Start(); err != nil {
			errChan <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	if opts.HTTPServer != nil {
		go func() {
			log.Infof("Starting HTTP server on %s", opts.HTTPServer.Addr)

			if err := opts.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("HTTP server: %w", err)
			}
		}()
	}

	return handleShutdown(ctx, cancel, grpcServer, opts, errChan)
}

func setupGRPCServer(ctx context.Context, opts *ServerOptions) (*grpc.Server, func(), error) {
	serverOpts := []grpc.ServerOption{
		grpc.WithMaxRecvSize(MaxRecvSize),
		grpc.WithMaxSendSize(MaxSendSize),
	}

	if opts.Health != nil {
		serverOpts = append(serverOpts, grpc.WithHealthServer(opts.Health))
	}

	provider, err := grpc.NewSecurityProvider(ctx, opts.Security)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create security provider: %w", err)
	}

	closeSecurity := func() {
		if err := provider.Close(); err != nil {
			log.Warnf("Failed to close security provider: %v", err)
		}
	}

	creds, err := provider.GetServerCredentials(ctx)
	if err != nil {
		closeSecurity()

		return nil, nil, fmt.Errorf("failed to get server credentials: %w", err)
	}

	serverOpts = append(serverOpts, grpc.WithServerOptions(creds))

	grpcServer := grpc.NewServer(opts.ListenAddr, serverOpts...)

	hs := grpcServer.GetHealthCheck()
	hs.SetServingStatus(opts.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if err := grpcServer.RegisterHealthServer(); err != nil {
		log.Warnf("Failed to register health server: %v", err)
	}

	return grpcServer, closeSecurity, nil
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc, grpcServer *grpc.Server, opts *ServerOptions, errChan chan error,
) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Infof("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		log.Errorf("Received error: %v, initiating shutdown", err)

		runErr = err
	case <-ctx.Done():
		log.Info("Context canceled, initiating shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if opts.HTTPServer != nil {
		if err := opts.HTTPServer.Shutdown(shutdownCtx); err != nil {
			log.Warnf("HTTP server shutdown: %v", err)
		}
	}

	grpcServer.Stop(shutdownCtx)

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("shutdown error: %w", err))
	}

	return runErr
}
