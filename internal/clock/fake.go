package clock

import "time"

// FakeClock is a manually advanced Clock for tests. It normalizes to UTC so
// stamped dates line up with what bill numbering and day-rate lookups expect
// regardless of the machine's zone.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
