package tui

import (
	"testing"
	"time"
)

func TestFrameSeconds(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	nominal := 1.0 / 60

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, base, nominal},
		{"measured", base, base.Add(20 * time.Millisecond), 0.02},
		{"clamped", base, base.Add(3 * time.Second), maxFrameSeconds},
		{"clock went back", base, base.Add(-time.Second), nominal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameSeconds(tt.prev, tt.now, nominal); got != tt.want {
				t.Errorf("frameSeconds = %v, want %v", got, tt.want)
			}
		})
	}
}
