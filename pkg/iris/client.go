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

package iris

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	publicPrefix = "/irisservices/api/v1/public"

	pathAccessTokens     = publicPrefix + "/accessTokens"
	pathAlerts           = publicPrefix + "/alerts"
	pathCluster          = publicPrefix + "/cluster"
	pathRegistrationInfo = publicPrefix + "/protectionSources/registrationInfo"
	pathProtectionRuns   = publicPrefix + "/protectionRuns"
	pathNodes            = publicPrefix + "/nodes"
	pathDashboard        = publicPrefix + "/dashboard"
	pathClusterStatus    = "/irisservices/api/v1/nexus/cluster/status"

	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 5
	defaultBurst             = 1
	maxErrorBody             = 512
)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithRateLimit paces requests to the cluster. A non-positive rate removes
// the limit.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *HTTPClient) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)

			return
		}

		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithInsecureSkipVerify disables certificate verification. Clusters ship
// with self-signed certificates.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *HTTPClient) {
		if !skip {
			return
		}

		c.client.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opt-in
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// HTTPClient talks to the cluster REST API. A session token is requested on
// first use and reused until the cluster rejects it with a 401, which triggers
// one fresh login and a retry.
type HTTPClient struct {
	baseURL    string
	creds      config.Credentials
	client     *http.Client
	limiter    *rate.Limiter
	mu         sync.Mutex
	token      string
	bufferPool *sync.Pool
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the cluster at vip. A vip without a
// scheme is reached over https.
func NewHTTPClient(vip string, creds config.Credentials, opts ...Option) (*HTTPClient, error) {
	if strings.TrimSpace(vip) == "" {
		return nil, errNoAddress
	}

	base := vip
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(base, "/"),
		creds:   creds,
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurst),
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetAlerts lists alerts matching the query.
func (c *HTTPClient) GetAlerts(ctx context.Context, query *AlertQuery) ([]Alert, error) {
	var alerts []Alert

	if err := c.get(ctx, pathAlerts, query.values(), &alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}

// GetCluster returns the cluster summary, with statistics when fetchStats
// is set.
func (c *HTTPClient) GetCluster(ctx context.Context, fetchStats bool) (*Cluster, error) {
	params := url.Values{}
	if fetchStats {
		params.Set("fetchStats", "true")
	}

	var cluster Cluster

	if err := c.get(ctx, pathCluster, params, &cluster); err != nil {
		return nil, err
	}

	return &cluster, nil
}

// GetRegistrationInfo returns the per-environment protection counts.
func (c *HTTPClient) GetRegistrationInfo(ctx context.Context) (*RegistrationInfo, error) {
	params := url.Values{}
	params.Set("includeEntityPermissionInfo", "true")

	var info RegistrationInfo

	if err := c.get(ctx, pathRegistrationInfo, params, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// GetProtectionRuns lists protection runs matching the query.
func (c *HTTPClient) GetProtectionRuns(ctx context.Context, query *ProtectionRunQuery) ([]ProtectionRun, error) {
	var runs []ProtectionRun

	if err := c.get(ctx, pathProtectionRuns, query.values(), &runs); err != nil {
		return nil, err
	}

	return runs, nil
}

// GetNodes lists the nodes of the cluster.
func (c *HTTPClient) GetNodes(ctx context.Context) ([]Node, error) {
	var nodes []Node

	if err := c.get(ctx, pathNodes, nil, &nodes); err != nil {
		return nil, err
	}

	return nodes, nil
}

// GetClusterStatus returns the per-node service listing.
func (c *HTTPClient) GetClusterStatus(ctx context.Context) (*ClusterStatus, error) {
	var status ClusterStatus

	if err := c.get(ctx, pathClusterStatus, nil, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// GetDashboard returns the cluster dashboard.
func (c *HTTPClient) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard

	if err := c.get(ctx, pathDashboard, nil, &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, dst interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	err := c.getOnce(ctx, u, dst)
	if !errors.Is(err, errUnauthorized) || errors.Is(err, ErrAuthentication) {
		return err
	}

	// the cluster expired the session; log in again and retry once
	log.Infof("Session rejected by %s, logging in again", c.baseURL)

	return c.getOnce(ctx, u, dst)
}

func (c *HTTPClient) getOnce(ctx context.Context, u string, dst interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	err = c.do(req, dst)
	if errors.Is(err, errUnauthorized) {
		c.dropToken(token)
	}

	return err
}

// dropToken forgets token unless another request already replaced it.
func (c *HTTPClient) dropToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == token {
		c.token = ""
	}
}

// accessToken returns the session token, logging in on first use.
func (c *HTTPClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	body, err := json.Marshal(&AccessTokenRequest{
		Domain:   c.creds.Domain,
		Username: c.creds.Username,
		Password: c.creds.Password,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathAccessTokens, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var token AccessToken

	if err := c.do(req, &token); err != nil {
		return "", fmt.Errorf("%w as %s: %w", ErrAuthentication, c.creds, err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, errEmptyToken)
	}

	log.Debugf("Obtained access token for %s on %s", c.creds, c.baseURL)

	c.token = token.AccessToken

	return c.token, nil
}

func (c *HTTPClient) do(req *http.Request, dst interface{}) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()

	resp, err := c.client.Do(req) //nolint:bodyclose // closed below
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Warnf("failed to close response body: %v", err)
		}
	}(resp.Body)

	log.Debugf("%s %s -> %d in %v", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	buf := c.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer c.bufferPool.Put(buf)

	if _, err := io.Copy(buf, resp.Body); err != nil {
		return fmt.Errorf("%s %s: failed to read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w: %s %s: status=%d body=%s",
			ErrUnexpectedStatus, errUnauthorized, req.Method, req.URL.Path, resp.StatusCode,
			truncate(buf.String(), maxErrorBody))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s: status=%d body=%s",
			ErrUnexpectedStatus, req.Method, req.URL.Path, resp.StatusCode, truncate(buf.String(), maxErrorBody))
	}

	if err := json.Unmarshal(buf.Bytes(), dst); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", req.Method, req.URL.Path, err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}

func (q *AlertQuery) values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}

	for _, s := range q.States {
		v.Add("alertStateList", s)
	}

	for _, s := range q.Severities {
		v.Add("alertSeverityList", s)
	}

	for _, s := range q.Categories {
		v.Add("alertCategoryList", s)
	}

	setInt(v, "startDateUsecs", q.StartDateUsecs)
	setInt(v, "endDateUsecs", q.EndDateUsecs)
	setInt(v, "maxAlerts", int64(q.MaxAlerts))

	return v
}

func (q *ProtectionRunQuery) values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}

	setInt(v, "startTimeUsecs", q.StartTimeUsecs)
	setInt(v, "endTimeUsecs", q.EndTimeUsecs)
	setInt(v, "numRuns", q.NumRuns)

	return v
}

func setInt(v url.Values, key string, n int64) {
	if n != 0 {
		v.Set(key, strconv.FormatInt(n, 10))
	}
}
