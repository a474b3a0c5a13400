// Package reliability contains the pure math behind the dashboard views:
// availability, MTTR, MTBF and downtime cost estimates.
package reliability

import (
	"sort"
	"time"
)

// Availability returns the availability percentage given the number of shift
// reports, the total downtime in hours, and the assumed shift length in
// hours. With zero reports availability is 100.
func Availability(reportCount int, downtimeHours, shiftHours float64) float64 {
	totalHours := float64(reportCount) * shiftHours
	if totalHours <= 0 {
		return 100
	}
	return (totalHours - downtimeHours) / totalHours * 100
}

// MTTRMinutes returns the mean downtime per failure event in minutes.
// Zero events yield zero.
func MTTRMinutes(downtimes []float64) float64 {
	if len(downtimes) == 0 {
		return 0
	}
	var sum float64
	for _, d := range downtimes {
		sum += d
	}
	return sum / float64(len(downtimes))
}

// MTBFDays estimates the mean time between failures as the mean gap in days
// between consecutive failure dates. Requires at least two dated records;
// the second return value is false otherwise.
func MTBFDays(dates []time.Time) (float64, bool) {
	if len(dates) < 2 {
		return 0, false
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var sumDays float64
	for i := 1; i < len(sorted); i++ {
		sumDays += sorted[i].Sub(sorted[i-1]).Hours() / 24
	}
	return sumDays / float64(len(sorted)-1), true
}

// EstimatedCost returns the downtime cost at the given hourly rate.
func EstimatedCost(downtimeMinutes, hourlyRate float64) float64 {
	return downtimeMinutes / 60 * hourlyRate
}
