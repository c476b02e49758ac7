package ecs

// Clock is the monotonic simulation clock. Every pause in the game is a
// deadline compared against Now.
type Clock struct {
	Now   float64
	Delta float64
	Tick  uint64
}

// Advance moves the clock forward by one fixed tick of dt seconds.
func (c *Clock) Advance(dt float64) {
	if c == nil || dt <= 0 {
		return
	}
	c.Tick++
	c.Delta = dt
	c.Now += dt
}
