package adaptive

// Controller tracks difficulty across a session and moves it up or down
// based on answer outcomes. Two consecutive correct answers advance one
// level; any incorrect answer (including a timeout) drops one level.
// Movement is clamped to the valid level range.
type Controller struct {
	level   Level
	streak  int
	enabled bool
}

// StreakThreshold is the number of consecutive correct answers required
// to advance a level.
const StreakThreshold = 2

// NewController creates a controller starting at the given level.
// When enabled is false the level is fixed for the whole session.
func NewController(initial Level, enabled bool) *Controller {
	return &Controller{level: clamp(initial), enabled: enabled}
}

// Level returns the current difficulty level.
func (c *Controller) Level() Level {
	return c.level
}

// Streak returns the current count of consecutive correct answers.
func (c *Controller) Streak() int {
	return c.streak
}

// Enabled reports whether adaptive adjustment is active.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Record updates the controller with one answer outcome and returns the
// level to use for the next question. Disabling the controller freezes
// the level only; streak bookkeeping continues.
func (c *Controller) Record(correct bool) Level {
	if correct {
		c.streak++
		if c.streak >= StreakThreshold {
			// The streak resets at the threshold even when already at
			// the top level, so earning an advance always costs a full
			// new streak.
			c.streak = 0
			if c.enabled {
				c.level = clamp(c.level + 1)
			}
		}
		return c.level
	}

	c.streak = 0
	if c.enabled {
		c.level = clamp(c.level - 1)
	}
	return c.level
}
