package shiftlog

import (
	"errors"
	"testing"
)

func TestValidateHeader(t *testing.T) {
	tests := []struct {
		name    string
		ctx     HeaderContext
		wantErr bool
	}{
		{
			name: "valid day shift header",
			ctx:  HeaderContext{Date: "2025-03-10", Shift: ShiftDay, Engineer: "Chris McGhee"},
		},
		{
			name: "valid night shift header",
			ctx:  HeaderContext{Date: "2025-03-10", Shift: ShiftNight, Engineer: "Sarah Jones"},
		},
		{
			name:    "missing date",
			ctx:     HeaderContext{Shift: ShiftDay, Engineer: "Chris McGhee"},
			wantErr: true,
		},
		{
			name:    "unknown shift",
			ctx:     HeaderContext{Date: "2025-03-10", Shift: "Twilight", Engineer: "Chris McGhee"},
			wantErr: true,
		},
		{
			name:    "missing engineer",
			ctx:     HeaderContext{Date: "2025-03-10", Shift: ShiftDay},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeader(tt.ctx)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateReactive(t *testing.T) {
	valid := ReactiveContext{
		Asset:      "Conveyor 1",
		TimeCalled: "08:00",
		TimeBack:   "08:45",
		Engineers:  1,
		Status:     StatusComplete,
	}

	if err := ValidateReactive(valid); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ReactiveContext)
	}{
		{"missing asset", func(c *ReactiveContext) { c.Asset = "" }},
		{"zero engineers", func(c *ReactiveContext) { c.Engineers = 0 }},
		{"unknown status", func(c *ReactiveContext) { c.Status = "Done" }},
		{"malformed call time", func(c *ReactiveContext) { c.TimeCalled = "morning" }},
		{"malformed back time", func(c *ReactiveContext) { c.TimeBack = "24:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := valid
			tt.mutate(&ctx)
			if err := ValidateReactive(ctx); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestValidateSpare(t *testing.T) {
	if err := ValidateSpare(SpareContext{PartNumber: "ART-100", Quantity: 1}); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}
	if err := ValidateSpare(SpareContext{PartNumber: "", Quantity: 1}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing part number, got %v", err)
	}
	if err := ValidateSpare(SpareContext{PartNumber: "ART-100", Quantity: 0}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero quantity, got %v", err)
	}
	if err := ValidateSpare(SpareContext{PartNumber: "ART-100", Quantity: -3}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for negative quantity, got %v", err)
	}
}

func TestValidatePPM(t *testing.T) {
	if err := ValidatePPM(PPMContext{Asset: "Wrapper"}); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}
	if err := ValidatePPM(PPMContext{}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
