package core

import "testing"

func TestPlanTankersNoShortfall(t *testing.T) {
	if got := PlanTankers(0, 5.5); got != 0 {
		t.Errorf("PlanTankers(0, 5.5) = %d, want 0", got)
	}
	if got := PlanTankers(-2.0, 5.5); got != 0 {
		t.Errorf("PlanTankers(-2.0, 5.5) = %d, want 0", got)
	}
}

func TestPlanTankersRoundsUp(t *testing.T) {
	// ceil(3.0/5.5) = 1: a partial tanker still has to fly.
	if got := PlanTankers(3.0, 5.5); got != 1 {
		t.Errorf("PlanTankers(3.0, 5.5) = %d, want 1", got)
	}
	if got := PlanTankers(11.1, 5.5); got != 3 {
		t.Errorf("PlanTankers(11.1, 5.5) = %d, want 3", got)
	}
}

func TestPlanTankersMinimality(t *testing.T) {
	// tankers × gain must cover the shortfall, and one fewer must not.
	cases := []struct{ shortfall, gain float64 }{
		{0.1, 5.5}, {3.0, 5.5}, {5.5, 5.5}, {5.6, 5.5},
		{12.0, 4.0}, {12.1, 4.0}, {0.5, 0.3}, {7.0, 1.0},
	}
	for _, c := range cases {
		n := PlanTankers(c.shortfall, c.gain)
		if float64(n)*c.gain < c.shortfall {
			t.Errorf("PlanTankers(%.2f, %.2f) = %d under-provisions", c.shortfall, c.gain, n)
		}
		if n > 0 && float64(n-1)*c.gain >= c.shortfall {
			t.Errorf("PlanTankers(%.2f, %.2f) = %d is not minimal", c.shortfall, c.gain, n)
		}
	}
}
