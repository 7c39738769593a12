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

// Package config loads the checker daemon configuration and the cluster
// credential file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// LoadCheckerConfig reads the daemon configuration at path, rejects unknown
// keys and validates the result. A relative cluster auth_file or db_path is
// taken relative to the directory holding the configuration.
func LoadCheckerConfig(path string) (*CheckerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", errReadFile, path, err)
	}

	var cfg CheckerConfig

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w from '%s': %w", errUnmarshal, path, err)
	}

	dir := filepath.Dir(path)
	cfg.Cluster.AuthFile = resolvePath(dir, cfg.Cluster.AuthFile)
	cfg.DBPath = resolvePath(dir, cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debugf("Loaded %d checks for cluster %s from %s", len(cfg.Checks), cfg.Cluster.VIP, path)

	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}
