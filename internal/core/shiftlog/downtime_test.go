package shiftlog

import "testing"

func TestDowntimeMinutes(t *testing.T) {
	tests := []struct {
		name       string
		timeCalled string
		timeBack   string
		want       float64
		wantErr    bool
	}{
		{
			name:       "same day repair",
			timeCalled: "08:00",
			timeBack:   "08:45",
			want:       45.0,
		},
		{
			name:       "crosses midnight",
			timeCalled: "23:30",
			timeBack:   "00:15",
			want:       45.0,
		},
		{
			name:       "equal times yield zero",
			timeCalled: "14:00",
			timeBack:   "14:00",
			want:       0,
		},
		{
			name:       "full shift minus a minute",
			timeCalled: "07:00",
			timeBack:   "06:59",
			want:       1439.0,
		},
		{
			name:       "seconds are kept",
			timeCalled: "08:00:00",
			timeBack:   "08:00:30",
			want:       0.5,
		},
		{
			name:       "malformed call time",
			timeCalled: "8 o'clock",
			timeBack:   "09:00",
			wantErr:    true,
		},
		{
			name:       "hour out of range",
			timeCalled: "25:00",
			timeBack:   "09:00",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DowntimeMinutes(tt.timeCalled, tt.timeBack)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DowntimeMinutes failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v minutes, got %v", tt.want, got)
			}
		})
	}
}

func TestDowntimeMinutes_AlwaysNonNegative(t *testing.T) {
	clocks := []string{"00:00", "06:30", "12:00", "18:45", "23:59"}
	for _, called := range clocks {
		for _, back := range clocks {
			got, err := DowntimeMinutes(called, back)
			if err != nil {
				t.Fatalf("DowntimeMinutes(%s, %s) failed: %v", called, back, err)
			}
			if got < 0 || got >= 1440 {
				t.Errorf("DowntimeMinutes(%s, %s) = %v, want in [0, 1440)", called, back, got)
			}
		}
	}
}
