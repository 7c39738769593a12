/*
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
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testCertLifetime bounds every certificate written by generateTestCertificates.
const testCertLifetime = time.Hour

// certSpec names a leaf certificate and the PEM files it is written to.
type certSpec struct {
	file   string
	cn     string
	usage  x509.ExtKeyUsage
	server bool
}

// generateTestCertificates writes the files the mTLS provider loads from a
// cert dir (root.pem, server.pem, server-key.pem) plus a client pair that
// the checker's callers present.
func generateTestCertificates(t *testing.T, dir string) {
	t.Helper()

	ca, caKey := newTestCA(t)
	writePEM(t, filepath.Join(dir, "root.pem"), "CERTIFICATE", ca.Raw)

	for i, spec := range []certSpec{
		{file: "server", cn: "cohesity-checker", usage: x509.ExtKeyUsageServerAuth, server: true},
		{file: "client", cn: "cohesity-poller", usage: x509.ExtKeyUsageClientAuth},
	} {
		der, key := issueTestCert(t, ca, caKey, int64(i+2), spec)

		keyDER, err := x509.MarshalECPrivateKey(key)
		require.NoError(t, err)

		writePEM(t, filepath.Join(dir, spec.file+".pem"), "CERTIFICATE", der)
		writePEM(t, filepath.Join(dir, spec.file+"-key.pem"), "EC PRIVATE KEY", keyDER)
	}
}

func newTestCA(t *testing.T) (*x509.Certificate, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "cohesity-checks test CA"},
		NotBefore:             time.Now().Add(-time.Minute),
		NotAfter:              time.Now().Add(testCertLifetime),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	ca, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return ca, key
}

func issueTestCert(
	t *testing.T, ca *x509.Certificate, caKey *ecdsa.PrivateKey, serial int64, spec certSpec,
) ([]byte, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(serial),
		Subject:      pkix.Name{CommonName: spec.cn},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(testCertLifetime),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{spec.usage},
	}

	if spec.server {
		tmpl.DNSNames = []string{"localhost"}
		tmpl.IPAddresses = []net.IP{net.IPv4(127, 0, 0, 1)}
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, ca, &key.PublicKey, caKey)
	require.NoError(t, err)

	return der, key
}

func writePEM(t *testing.T, path, blockType string, der []byte) {
	t.Helper()

	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
}
