package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuthFile = `
[cohesity01]
username = admin
password = s3cret
domain = CORP

[cohesity02]
username = viewer
password = pw

[broken]
username = nobody
`

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.ini")
	require.NoError(t, os.WriteFile(path, []byte(testAuthFile), 0o600))

	creds, err := LoadCredentials(path, "cohesity01")
	require.NoError(t, err)
	assert.Equal(t, &Credentials{Username: "admin", Password: "s3cret", Domain: "CORP"}, creds)
	assert.Equal(t, `CORP\admin`, creds.String())
	assert.NotContains(t, creds.String(), "s3cret")
}

func TestParseCredentialsDefaultDomain(t *testing.T) {
	creds, err := ParseCredentials([]byte(testAuthFile), "cohesity02")
	require.NoError(t, err)
	assert.Equal(t, DefaultDomain, creds.Domain)
}

func TestParseCredentialsErrors(t *testing.T) {
	_, err := ParseCredentials([]byte(testAuthFile), "missing")
	require.ErrorIs(t, err, errUnknownHost)

	_, err = ParseCredentials([]byte(testAuthFile), "broken")
	require.ErrorIs(t, err, ErrMissingCredential)

	_, err = LoadCredentials(filepath.Join(t.TempDir(), "nope.ini"), "cohesity01")
	require.ErrorIs(t, err, errLoadAuthFile)
}
