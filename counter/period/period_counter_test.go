package period

import (
	"testing"
	"time"
)

func TestPeriodCounter(t *testing.T) {
	clock := time.Unix(0, 0)
	c := newPeriodCounter(time.Second, func() time.Time { return clock })

	c.Add(100)
	if c.Value() != 100 || c.RatePerSec() != 0 {
		t.Fatal("rate refreshed before the period elapsed:", c.RatePerSec())
	}

	clock = clock.Add(2 * time.Second)
	c.Add(300)
	if c.Value() != 400 {
		t.Fatal("value:", c.Value())
	}
	if c.RatePerSec() != 200 {
		t.Fatal("rate:", c.RatePerSec())
	}

	clock = clock.Add(500 * time.Millisecond)
	c.Add(1000)
	if c.RatePerSec() != 200 {
		t.Fatal("rate refreshed inside the period:", c.RatePerSec())
	}
}
