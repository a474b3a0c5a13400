// Package shiftlog contains the pure business logic for shift report entries.
// Guards are pure functions that evaluate preconditions without side effects.
package shiftlog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minutesPerDay is the rollover correction applied when the back time
// wall-clock precedes the call time (the repair crossed midnight).
const minutesPerDay = 1440

// ParseClock parses an HH:MM or HH:MM:SS wall-clock time into minutes
// past midnight.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed time %q: want HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed time %q: bad hour", s)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("malformed time %q: bad minute", s)
	}

	total := float64(hours*60 + mins)
	if len(parts) == 3 {
		secs, err := strconv.Atoi(parts[2])
		if err != nil || secs < 0 || secs > 59 {
			return 0, fmt.Errorf("malformed time %q: bad second", s)
		}
		total += float64(secs) / 60
	}

	return total, nil
}

// DowntimeMinutes computes the downtime between a call time and a back time
// on the same shift, in minutes rounded to one decimal. When the back time
// precedes the call time the duration is interpreted as crossing midnight.
// The result is always in [0, 1440).
func DowntimeMinutes(timeCalled, timeBack string) (float64, error) {
	called, err := ParseClock(timeCalled)
	if err != nil {
		return 0, err
	}
	back, err := ParseClock(timeBack)
	if err != nil {
		return 0, err
	}

	dt := back - called
	if dt < 0 {
		dt += minutesPerDay
	}

	return math.Round(dt*10) / 10, nil
}
