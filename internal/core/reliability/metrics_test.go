package reliability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAvailability(t *testing.T) {
	// 10 reports x 12h = 120h window, 6h down
	assert.InDelta(t, 95.0, Availability(10, 6, 12), 1e-9)

	// No downtime at all
	assert.InDelta(t, 100.0, Availability(5, 0, 12), 1e-9)

	// No reports yet: avoid division by zero, report full availability
	assert.Equal(t, 100.0, Availability(0, 0, 12))
}

func TestMTTRMinutes(t *testing.T) {
	assert.Equal(t, 0.0, MTTRMinutes(nil))
	assert.InDelta(t, 45.0, MTTRMinutes([]float64{30, 60}), 1e-9)
	assert.InDelta(t, 45.0, MTTRMinutes([]float64{45}), 1e-9)
}

func TestMTBFDays(t *testing.T) {
	_, ok := MTBFDays(nil)
	assert.False(t, ok, "no records")

	_, ok = MTBFDays([]time.Time{day("2025-03-01")})
	assert.False(t, ok, "single record cannot estimate MTBF")

	got, ok := MTBFDays([]time.Time{day("2025-03-01"), day("2025-03-05"), day("2025-03-07")})
	assert.True(t, ok)
	assert.InDelta(t, 3.0, got, 1e-9)

	// Order independent: same dates shuffled
	shuffled, ok := MTBFDays([]time.Time{day("2025-03-07"), day("2025-03-01"), day("2025-03-05")})
	assert.True(t, ok)
	assert.InDelta(t, got, shuffled, 1e-9)
}

func TestEstimatedCost(t *testing.T) {
	// 90 minutes at 50/hr
	assert.InDelta(t, 75.0, EstimatedCost(90, 50), 1e-9)
	assert.Equal(t, 0.0, EstimatedCost(0, 50))
}
