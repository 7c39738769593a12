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

// Package nagios pkg/nagios/range.go
package nagios

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	invertPrefix  = "@"
	negInfinity   = "~"
	boundSep      = ":"
	floatFormat   = 'g'
	floatBitSize  = 64
	floatShortest = -1
)

// Range is a parsed Nagios threshold range.
//
// Without Invert a value alerts when it falls outside [Start, End]; with
// Invert it alerts when it falls inside the closed interval.
type Range struct {
	Start  float64
	End    float64
	Invert bool
}

// ParseRange parses a threshold in the Nagios range syntax:
//
//	[@]start:end   start may be "~" (negative infinity) or empty (zero)
//	[@]start:      end omitted means positive infinity
//	[@]value       shorthand for 0:value
func ParseRange(input string) (Range, error) {
	var r Range

	s := strings.TrimSpace(input)

	if strings.HasPrefix(s, invertPrefix) {
		r.Invert = true
		s = s[len(invertPrefix):]
	}

	if s == "" {
		return Range{}, fmt.Errorf("%w: %q is empty", ErrInvalidRange, input)
	}

	start, end, hasSep := strings.Cut(s, boundSep)
	if !hasSep {
		// bare value
		start, end = "", s
	}

	var err error

	if r.Start, err = parseStart(start); err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, input, err)
	}

	if r.End, err = parseEnd(end, hasSep); err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, input, err)
	}

	if r.Start > r.End {
		return Range{}, fmt.Errorf("%w: %q: start %v is greater than end %v", ErrInvalidRange, input, r.Start, r.End)
	}

	return r, nil
}

// MustParseRange is like ParseRange but panics on an invalid input. It is
// meant for package-level defaults.
func MustParseRange(input string) Range {
	r, err := ParseRange(input)
	if err != nil {
		panic(err)
	}

	return r
}

func parseStart(s string) (float64, error) {
	switch s {
	case "":
		return 0, nil
	case negInfinity:
		return math.Inf(-1), nil
	default:
		return parseBound(s)
	}
}

func parseEnd(s string, hasSep bool) (float64, error) {
	if s == "" {
		if !hasSep {
			return 0, errMissingBound
		}

		return math.Inf(1), nil
	}

	return parseBound(s)
}

func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, floatBitSize)
	if err != nil {
		return 0, fmt.Errorf("%w %q", errBadNumber, s)
	}

	// ParseFloat accepts "inf" and "nan"; the range syntax does not.
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w %q", errBadNumber, s)
	}

	return v, nil
}

// Alert reports whether v violates the range.
func (r Range) Alert(v float64) bool {
	inside := v >= r.Start && v <= r.End
	if r.Invert {
		return inside
	}

	return !inside
}

// String returns the canonical form of the range. ParseRange(r.String())
// yields r again.
func (r Range) String() string {
	var b strings.Builder

	if r.Invert {
		b.WriteString(invertPrefix)
	}

	if math.IsInf(r.Start, -1) {
		b.WriteString(negInfinity)
	} else {
		b.WriteString(formatBound(r.Start))
	}

	b.WriteString(boundSep)

	if !math.IsInf(r.End, 1) {
		b.WriteString(formatBound(r.End))
	}

	return b.String()
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, floatFormat, floatShortest, floatBitSize)
}
