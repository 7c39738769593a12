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
	"fmt"

	"github.com/mfreeman451/cohesity-checks/pkg/checker"
	"github.com/mfreeman451/cohesity-checks/pkg/config"
	"github.com/mfreeman451/cohesity-checks/pkg/iris"
)

// Register adds a factory for every catalog probe to reg. The details
// passed to the factory are a JSON encoded config.CheckConfig; an empty
// string keeps all defaults. The returned checkers are *checker.CheckAdapter.
func Register(reg checker.Registry, client iris.Client, base Options) {
	for i := range Catalog {
		name := Catalog[i].Name

		reg.Register(name, func(_ context.Context, serviceName, details string) (checker.Checker, error) {
			opts, err := optionsFromDetails(base, details)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", serviceName, err)
			}

			check, err := New(name, client, opts)
			if err != nil {
				return nil, err
			}

			return checker.NewCheckAdapter(serviceName, check), nil
		})
	}
}

func optionsFromDetails(base Options, details string) (Options, error) {
	if details == "" {
		return base, nil
	}

	var cc config.CheckConfig
	if err := json.Unmarshal([]byte(details), &cc); err != nil {
		return Options{}, fmt.Errorf("%w: %w", errInvalidDetails, err)
	}

	return withCheckConfig(base, &cc), nil
}

func withCheckConfig(base Options, cc *config.CheckConfig) Options {
	opts := base

	if cc.Warning != nil {
		opts.Warning = cc.Warning
	}

	if cc.Critical != nil {
		opts.Critical = cc.Critical
	}

	if cc.Days > 0 {
		opts.Days = cc.Days
	}

	return opts
}
