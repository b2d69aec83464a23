package tui

import (
	"math"
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		rate int
		want float64
	}{
		{"first tick at 60fps", time.Time{}, base, 60, 1000.0 / 60},
		{"first tick at 30fps", time.Time{}, base, 30, 1000.0 / 30},
		{"first tick without rate", time.Time{}, base, 0, 1000.0 / 60},
		{"wall clock", base, base.Add(20 * time.Millisecond), 60, 20},
		{"sub millisecond", base, base.Add(1500 * time.Microsecond), 60, 1.5},
		{"long stall", base, base.Add(2 * time.Second), 60, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDelta(tt.prev, tt.now, tt.rate)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("frameDelta = %v, expected %v", got, tt.want)
			}
		})
	}
}
