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

package protection

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// TimeWindow is an inclusive range of microsecond epoch timestamps.
type TimeWindow struct {
	StartUsecs int64
	EndUsecs   int64
}

// NewTimeWindow returns a window, rejecting a start after the end.
func NewTimeWindow(startUsecs, endUsecs int64) (TimeWindow, error) {
	if startUsecs > endUsecs {
		return TimeWindow{}, fmt.Errorf("%w: start %d is after end %d", ErrInvalidWindow, startUsecs, endUsecs)
	}

	return TimeWindow{StartUsecs: startUsecs, EndUsecs: endUsecs}, nil
}

// WindowAround returns the window [t-margin, t+margin].
func WindowAround(t time.Time, margin time.Duration) (TimeWindow, error) {
	if margin < 0 {
		return TimeWindow{}, fmt.Errorf("%w: negative margin %s", ErrInvalidWindow, margin)
	}

	return NewTimeWindow(t.Add(-margin).UnixMicro(), t.Add(margin).UnixMicro())
}

// LastDays returns the window covering the given number of days up to now.
func LastDays(now time.Time, days int) (TimeWindow, error) {
	if days < 0 {
		return TimeWindow{}, fmt.Errorf("%w: negative day count %d", ErrInvalidWindow, days)
	}

	start := now.Add(-time.Duration(days) * hoursPerDay * time.Hour)

	return NewTimeWindow(start.UnixMicro(), now.UnixMicro())
}

// Contains reports whether usecs falls inside the window, bounds included.
func (w TimeWindow) Contains(usecs int64) bool {
	return usecs >= w.StartUsecs && usecs <= w.EndUsecs
}

// Start returns the window start as a time.
func (w TimeWindow) Start() time.Time {
	return time.UnixMicro(w.StartUsecs)
}

// End returns the window end as a time.
func (w TimeWindow) End() time.Time {
	return time.UnixMicro(w.EndUsecs)
}
