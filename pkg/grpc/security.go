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

package grpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mfreeman451/cohesity-checks/pkg/models"
	log "github.com/sirupsen/logrus"
	"github.com/spiffe/go-spiffe/v2/spiffeid"
	"github.com/spiffe/go-spiffe/v2/spiffetls/tlsconfig"
	"github.com/spiffe/go-spiffe/v2/workloadapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	SecurityModeNone   models.SecurityMode = "none"
	SecurityModeSpiffe models.SecurityMode = "spiffe"
	SecurityModeMTLS   models.SecurityMode = "mtls"

	defaultWorkloadSocket = "unix:/run/spire/sockets/agent.sock"
)

// NoSecurityProvider implements SecurityProvider with no security (development only).
type NoSecurityProvider struct{}

func (*NoSecurityProvider) GetServerCredentials(context.Context) (grpc.ServerOption, error) {
	return grpc.Creds(insecure.NewCredentials()), nil
}

func (*NoSecurityProvider) Close() error {
	return nil
}

// MTLSProvider implements SecurityProvider with mutual TLS. Certificates are
// read from CertDir: root.pem, server.pem and server-key.pem.
type MTLSProvider struct {
	config      *models.SecurityConfig
	serverCreds credentials.TransportCredentials
}

func NewMTLSProvider(config *models.SecurityConfig) (*MTLSProvider, error) {
	if config == nil {
		return nil, errSecurityConfigRequired
	}

	role := config.Role
	if role == "" {
		role = models.RoleChecker
	}

	if role != models.RoleChecker {
		return nil, fmt.Errorf("%w: %s", errInvalidServiceRole, config.Role)
	}

	log.Infof("Initializing mTLS provider - Role: %s", role)

	creds, err := loadServerCredentials(config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToLoadServerCreds, err)
	}

	return &MTLSProvider{config: config, serverCreds: creds}, nil
}

func (*MTLSProvider) Close() error {
	return nil
}

func loadServerCredentials(config *models.SecurityConfig) (credentials.TransportCredentials, error) {
	log.Debugf("Loading server credentials from %s", config.CertDir)

	serverCert := filepath.Join(config.CertDir, "server.pem")
	serverKey := filepath.Join(config.CertDir, "server-key.pem")

	certificate, err := tls.LoadX509KeyPair(serverCert, serverKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToLoadServerCert, err)
	}

	caCert, err := os.ReadFile(filepath.Join(config.CertDir, "root.pem"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToReadCACert, err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, errFailedToAppendCACert
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{certificate},
		ClientCAs:    caPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}

	return credentials.NewTLS(tlsConfig), nil
}

func (p *MTLSProvider) GetServerCredentials(context.Context) (grpc.ServerOption, error) {
	return grpc.Creds(p.serverCreds), nil
}

// SpiffeProvider implements SecurityProvider using SPIFFE workload API.
type SpiffeProvider struct {
	config    *models.SecurityConfig
	client    *workloadapi.Client
	source    *workloadapi.X509Source
	closeOnce sync.Once
}

func NewSpiffeProvider(ctx context.Context, config *models.SecurityConfig) (*SpiffeProvider, error) {
	if config == nil {
		return nil, errSecurityConfigRequired
	}

	if config.TrustDomain != "" {
		if _, err := spiffeid.TrustDomainFromString(config.TrustDomain); err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidTrustDomain, err)
		}
	}

	if config.WorkloadSocket == "" {
		config.WorkloadSocket = defaultWorkloadSocket
	}

	client, err := workloadapi.New(ctx, workloadapi.WithAddr(config.WorkloadSocket))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedWorkloadAPIClient, err)
	}

	source, err := workloadapi.NewX509Source(ctx, workloadapi.WithClient(client))
	if err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("%w: %w", errFailedToCreateX509Source, err)
	}

	return &SpiffeProvider{
		config: config,
		client: client,
		source: source,
	}, nil
}

// GetServerCredentials authorizes any member of the configured trust
// domain, or any SPIFFE ID when none is configured.
func (p *SpiffeProvider) GetServerCredentials(_ context.Context) (grpc.ServerOption, error) {
	authorizer := tlsconfig.AuthorizeAny()

	if p.config.TrustDomain != "" {
		trustDomain, err := spiffeid.TrustDomainFromString(p.config.TrustDomain)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidTrustDomain, err)
		}

		authorizer = tlsconfig.AuthorizeMemberOf(trustDomain)
	}

	tlsConfig := tlsconfig.MTLSServerConfig(p.source, p.source, authorizer)

	return grpc.Creds(credentials.NewTLS(tlsConfig)), nil
}

func (p *SpiffeProvider) Close() error {
	var err error

	p.closeOnce.Do(func() {
		if p.source != nil {
			if err = p.source.Close(); err != nil {
				log.Warnf("Failed to close X.509 source: %v", err)

				return
			}
		}

		if p.client != nil {
			err = p.client.Close()
		}
	})

	return err
}

// NewSecurityProvider creates the appropriate security provider based on mode.
func NewSecurityProvider(ctx context.Context, config *models.SecurityConfig) (SecurityProvider, error) {
	if config == nil {
		log.Warn("No security config provided, using no security")

		return &NoSecurityProvider{}, nil
	}

	log.Infof("Creating security provider with mode: %s", config.Mode)

	switch config.Mode {
	case SecurityModeNone, "":
		return &NoSecurityProvider{}, nil
	case SecurityModeMTLS:
		return NewMTLSProvider(config)
	case SecurityModeSpiffe:
		return NewSpiffeProvider(ctx, config)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownSecurityMode, config.Mode)
	}
}
