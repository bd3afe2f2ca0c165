package component

// Cooldown is a countdown in seconds. A zero-duration cooldown is always ready.
type Cooldown struct {
	Duration  float64
	remaining float64
}

func NewCooldown(duration float64) *Cooldown {
	return &Cooldown{Duration: duration}
}

// Ready reports whether the cooldown has elapsed.
func (c *Cooldown) Ready() bool {
	return c == nil || c.remaining <= 0
}

// Trigger restarts the countdown.
func (c *Cooldown) Trigger() {
	if c == nil {
		return
	}
	c.remaining = c.Duration
}

// Tick advances the countdown by dt seconds.
func (c *Cooldown) Tick(dt float64) {
	if c == nil || c.remaining <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
}

func (c *Cooldown) Remaining() float64 {
	if c == nil {
		return 0
	}
	return c.remaining
}
