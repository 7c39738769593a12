package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAuthFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "auth.ini")
	require.NoError(t, os.WriteFile(path, []byte("[cohesity01]\nusername = admin\npassword = secret\n"), 0o600))

	return path
}

func TestRunParseErrorIsUnknown(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"storage"}, &out)

	assert.Equal(t, 3, code)
	assert.True(t, strings.HasPrefix(out.String(), "UNKNOWN - failed to parse command line"), out.String())
}

func TestRunInvalidThresholdIsUnknown(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-H", "127.0.0.1", "-n", "cohesity01", "-f", writeAuthFile(t), "-w", "abc", "storage"}, &out)

	assert.Equal(t, 3, code)
	assert.True(t, strings.HasPrefix(out.String(), "COHESITY_CLUSTER_STORAGE UNKNOWN - "), out.String())
	assert.Contains(t, out.String(), "invalid range")
}

func TestRunUnknownHostIsUnknown(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-H", "127.0.0.1", "-f", writeAuthFile(t), "alerts"}, &out)

	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "COHESITY_ALERT_STATUS UNKNOWN")
}

func TestRunRecoveries(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/irisservices/api/v1/public/accessTokens":
			_, _ = w.Write([]byte(`{"accessToken":"tok","tokenType":"Bearer"}`))
		case "/irisservices/api/v1/public/dashboard":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)

				return
			}

			_, _ = w.Write([]byte(`{"dashboard":{"recoveries":{"lastMonthNumRecoveries":0}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer

	code := run([]string{
		"-H", srv.URL, "-n", "cohesity01", "-f", writeAuthFile(t), "--insecure", "-v", "-v", "recoveries",
	}, &out)

	assert.Equal(t, 0, code)
	assert.Equal(t,
		"COHESITY_RECOVERY_STATUS OK - Recoveries last month is 0 | 'Recoveries last month'=0;~:0;;0\n",
		out.String())
}

func TestRunCriticalOverride(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/irisservices/api/v1/public/accessTokens":
			_, _ = w.Write([]byte(`{"accessToken":"tok"}`))
		default:
			_, _ = w.Write([]byte(`{"dashboard":{"recoveries":{"lastMonthNumRecoveries":7}}}`))
		}
	}))
	defer srv.Close()

	var out bytes.Buffer

	code := run([]string{
		"-H", srv.URL, "-n", "cohesity01", "-f", writeAuthFile(t), "--insecure", "-w", "", "-c", "~:5", "recoveries",
	}, &out)

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "COHESITY_RECOVERY_STATUS CRITICAL - Recoveries last month is 7 (outside range ~:5)")
}
