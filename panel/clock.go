package panel

import (
	"time"
)

// Clock is a debounce delay source.
type Clock interface {
	Delay(ms uint32)
}

// RealClock sleeps.
type RealClock struct{}

var _ Clock = RealClock{}

func (RealClock) Delay(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// FakeClock accumulates requested delays without sleeping.
type FakeClock struct {
	Elapsed time.Duration // Total delay requested.
	Calls   int           // Number of Delay calls.
}

var _ Clock = (*FakeClock)(nil)

func (fc *FakeClock) Delay(ms uint32) {
	fc.Elapsed += time.Duration(ms) * time.Millisecond
	fc.Calls++
}

// DeadlineClock records a dead time instead of blocking, for event driven
// hosts that cannot sleep in their input loop.
type DeadlineClock struct {
	Now   func() time.Time // Time source; time.Now if nil.
	Until time.Time        // End of the current dead time.
}

var _ Clock = (*DeadlineClock)(nil)

func (dc *DeadlineClock) now() time.Time {
	if dc.Now == nil {
		return time.Now()
	}
	return dc.Now()
}

func (dc *DeadlineClock) Delay(ms uint32) {
	dc.Until = dc.now().Add(time.Duration(ms) * time.Millisecond)
}

// Busy reports whether the dead time has not yet expired.
func (dc *DeadlineClock) Busy() bool {
	return dc.now().Before(dc.Until)
}
