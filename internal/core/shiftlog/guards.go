package shiftlog

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by every guard failure, so callers
// can distinguish bad input from infrastructure errors with errors.Is.
var ErrValidation = errors.New("validation failed")

// Shift designators.
const (
	ShiftDay   = "Day"
	ShiftNight = "Night"
)

// Reactive task statuses.
const (
	StatusComplete      = "Complete"
	StatusInProgress    = "In Progress"
	StatusAwaitingParts = "Awaiting Parts"
)

// CarryOverMarker tags the description of reactive tasks imported from
// previous shifts.
const CarryOverMarker = "[CARRY OVER] "

// ValidShift reports whether s is a known shift designator.
func ValidShift(s string) bool {
	return s == ShiftDay || s == ShiftNight
}

// ValidReactiveStatus reports whether s is a known reactive task status.
func ValidReactiveStatus(s string) bool {
	return s == StatusComplete || s == StatusInProgress || s == StatusAwaitingParts
}

// HeaderContext provides context for report header guards.
type HeaderContext struct {
	Date     string
	Shift    string
	Engineer string
}

// ValidateHeader evaluates whether a report header can be created.
// Rules:
// - Shift must be Day or Night
// - Engineer is required
// - Date is required
func ValidateHeader(ctx HeaderContext) error {
	if ctx.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !ValidShift(ctx.Shift) {
		return fmt.Errorf("%w: shift must be %s or %s, got %q", ErrValidation, ShiftDay, ShiftNight, ctx.Shift)
	}
	if ctx.Engineer == "" {
		return fmt.Errorf("%w: engineer is required", ErrValidation)
	}
	return nil
}

// ReactiveContext provides context for reactive entry guards.
type ReactiveContext struct {
	Asset      string
	TimeCalled string
	TimeBack   string
	Engineers  int
	Status     string
}

// ValidateReactive evaluates whether a reactive entry can be added.
func ValidateReactive(ctx ReactiveContext) error {
	if ctx.Asset == "" {
		return fmt.Errorf("%w: asset is required", ErrValidation)
	}
	if ctx.Engineers < 1 {
		return fmt.Errorf("%w: engineer count must be at least 1", ErrValidation)
	}
	if !ValidReactiveStatus(ctx.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, ctx.Status)
	}
	if _, err := ParseClock(ctx.TimeCalled); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := ParseClock(ctx.TimeBack); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// PPMContext provides context for PPM entry guards.
type PPMContext struct {
	Asset string
}

// ValidatePPM evaluates whether a PPM entry can be added.
func ValidatePPM(ctx PPMContext) error {
	if ctx.Asset == "" {
		return fmt.Errorf("%w: asset is required", ErrValidation)
	}
	return nil
}

// SpareContext provides context for spare usage guards.
type SpareContext struct {
	PartNumber string
	Quantity   int
}

// ValidateSpare evaluates whether a spare usage entry can be added.
func ValidateSpare(ctx SpareContext) error {
	if ctx.PartNumber == "" {
		return fmt.Errorf("%w: part number is required", ErrValidation)
	}
	if ctx.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	}
	return nil
}
