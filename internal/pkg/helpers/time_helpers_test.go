package helpers

import (
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-month",
			input:     time.Date(2026, time.August, 20, 14, 30, 5, 0, time.UTC),
			wantStart: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in a leap year",
			input:     time.Date(2028, time.February, 3, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls within the year",
			input:     time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantStart: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthWindow(tt.input)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Errorf("expected 90s, got %v", got)
	}
	if got := ParseDuration("not-a-duration", time.Minute); got != time.Minute {
		t.Errorf("expected fallback to default, got %v", got)
	}
}
