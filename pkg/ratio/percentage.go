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

// Package ratio provides the percentage helper shared by the capacity and
// object probes.
package ratio

import (
	"errors"
	"math"
)

const (
	minPercent = 0
	maxPercent = 100
)

// ErrDivisionUndefined is returned when a percentage has no defined value.
var ErrDivisionUndefined = errors.New("division undefined")

// Percentage returns numerator/denominator as a whole percentage, truncated
// toward zero and clamped to [0, 100]. It fails with ErrDivisionUndefined
// for a zero denominator or when the quotient is NaN.
func Percentage(numerator, denominator float64) (int, error) {
	if denominator == 0 || math.IsNaN(numerator) || math.IsNaN(denominator) {
		return 0, ErrDivisionUndefined
	}

	p := math.Trunc(numerator / denominator * maxPercent)

	switch {
	case math.IsNaN(p):
		return 0, ErrDivisionUndefined
	case p < minPercent:
		return minPercent, nil
	case p > maxPercent:
		return maxPercent, nil
	default:
		return int(p), nil
	}
}

// PercentageOrZero is Percentage with an undefined result reported as 0.
func PercentageOrZero(numerator, denominator float64) int {
	p, err := Percentage(numerator, denominator)
	if err != nil {
		return 0
	}

	return p
}
