package gesture

import "time"

// Cooldown windows for the discrete gestures.
const (
	ModeToggleCooldown = 300 * time.Millisecond
	ClearCooldown      = 300 * time.Millisecond
	MenuToggleCooldown = 500 * time.Millisecond
)

// Cooldown suppresses repeated triggers of a discrete gesture.
// Times should come from time.Now so comparisons use the monotonic clock.
type Cooldown struct {
	Window time.Duration
	last   time.Time
	fired  bool
}

// NewCooldown creates a Cooldown with the given window.
func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{Window: window}
}

// Ready reports whether a trigger at now would be accepted.
func (c *Cooldown) Ready(now time.Time) bool {
	if !c.fired {
		return true
	}
	return now.Sub(c.last) >= c.Window
}

// Fire accepts the trigger and restarts the window if Ready, and reports
// whether it did.
func (c *Cooldown) Fire(now time.Time) bool {
	if !c.Ready(now) {
		return false
	}
	c.last = now
	c.fired = true
	return true
}

