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
	"fmt"

	"github.com/go-ini/ini"
	log "github.com/sirupsen/logrus"
)

const (
	keyUsername = "username"
	keyPassword = "password"
	keyDomain   = "domain"

	// DefaultDomain is the cluster's local authentication domain.
	DefaultDomain = "LOCAL"
)

// Credentials are the login parameters for one cluster.
type Credentials struct {
	Username string
	Password string
	Domain   string
}

// String hides the password.
func (c Credentials) String() string {
	return fmt.Sprintf("%s\\%s", c.Domain, c.Username)
}

// LoadCredentials reads the section named after hostName from an INI auth
// file:
//
//	[cohesity01]
//	username = admin
//	password = secret
//	domain = LOCAL
//
// A missing domain falls back to DefaultDomain.
func LoadCredentials(path, hostName string) (*Credentials, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", errLoadAuthFile, path, err)
	}

	return credentialsFromFile(f, hostName)
}

// ParseCredentials is LoadCredentials over in-memory INI data.
func ParseCredentials(data []byte, hostName string) (*Credentials, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errLoadAuthFile, err)
	}

	return credentialsFromFile(f, hostName)
}

func credentialsFromFile(f *ini.File, hostName string) (*Credentials, error) {
	sec, err := f.GetSection(hostName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errUnknownHost, hostName)
	}

	creds := &Credentials{
		Username: sec.Key(keyUsername).String(),
		Password: sec.Key(keyPassword).String(),
		Domain:   sec.Key(keyDomain).MustString(DefaultDomain),
	}

	if creds.Username == "" {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingCredential, hostName, keyUsername)
	}

	if creds.Password == "" {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingCredential, hostName, keyPassword)
	}

	log.Debugf("Loaded credentials %s for host %s", creds, hostName)

	return creds, nil
}
