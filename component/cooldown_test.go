package component

import "testing"

func TestCooldown(t *testing.T) {
	cases := []struct {
		name      string
		duration  float64
		ticks     []float64
		wantReady bool
	}{
		{"zero_duration_always_ready", 0, nil, true},
		{"not_elapsed", 1, []float64{0.5}, false},
		{"exactly_elapsed", 1, []float64{0.5, 0.5}, true},
		{"overshoot_clamps", 0.25, []float64{1}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cd := NewCooldown(c.duration)
			if !cd.Ready() {
				t.Fatalf("fresh cooldown should be ready")
			}
			cd.Trigger()
			for _, dt := range c.ticks {
				cd.Tick(dt)
			}
			if cd.Ready() != c.wantReady {
				t.Fatalf("ready = %v, want %v (remaining %v)", cd.Ready(), c.wantReady, cd.Remaining())
			}
			if cd.Remaining() < 0 {
				t.Fatalf("remaining went negative: %v", cd.Remaining())
			}
		})
	}
}
