package exectimer

import (
	"time"

	"k8s.io/utils/clock"
)

type interval struct {
	clock     clock.PassiveClock
	startedAt time.Time
	stoppedAt time.Time
}

func startInterval(clk clock.PassiveClock) *interval {
	return &interval{
		clock:     clk,
		startedAt: clk.Now(),
	}
}

func (i *interval) Stop() {
	i.stoppedAt = i.clock.Now()
}

// Duration is only meaningful after Stop. A clock that went backwards yields a negative duration;
// it is returned as is.
func (i *interval) Duration() time.Duration {
	return i.stoppedAt.Sub(i.startedAt)
}
