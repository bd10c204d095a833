package timeline

import "time"

// Clock plays a Timeline from a host frame callback. Each frame the host
// calls Advance; to cancel playback it simply stops calling it.
type Clock struct {
	tl      *Timeline
	elapsed time.Duration
	Loop    bool
}

func NewClock(tl *Timeline) *Clock {
	return &Clock{tl: tl}
}

// Advance moves playback forward by dt and reports whether the timeline has
// finished. A looping clock never finishes.
func (c *Clock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.elapsed += dt
	}
	total := c.tl.Duration()
	if c.elapsed < total {
		return false
	}
	if c.Loop && total > 0 {
		c.elapsed %= total
		return false
	}
	c.elapsed = total
	return true
}

// Elapsed is the current playback time.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

// Values samples the timeline at the current playback time.
func (c *Clock) Values() map[string]Props {
	return c.tl.Sample(c.elapsed)
}

// Restart rewinds to the beginning.
func (c *Clock) Restart() { c.elapsed = 0 }
