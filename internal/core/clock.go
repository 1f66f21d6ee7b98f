package core

// Clock tracks elapsed time for the simulation. It keeps two accumulators:
// real time, which always advances, and simulation time, which is multiplied
// by a scale factor. Setting the scale to zero freezes all sim-time motion
// without stopping real-time countdowns.
type Clock struct {
	scale float64
	real  float64
	sim   float64
}

// NewClock creates a clock running at normal speed (scale 1.0).
func NewClock() *Clock {
	return &Clock{scale: 1.0}
}

// Advance adds one frame's worth of elapsed time, in seconds.
func (c *Clock) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.real += dt
	c.sim += dt * c.scale
}

// Scale returns the current simulation time scale.
func (c *Clock) Scale() float64 {
	return c.scale
}

// SetScale sets the simulation time scale. Negative values are treated as zero.
func (c *Clock) SetScale(s float64) {
	if s < 0 {
		s = 0
	}
	c.scale = s
}

// Halted returns true when simulation time is frozen.
func (c *Clock) Halted() bool {
	return c.scale == 0
}

// Real returns total elapsed real time in seconds.
func (c *Clock) Real() float64 {
	return c.real
}

// Sim returns total elapsed simulation time in seconds.
func (c *Clock) Sim() float64 {
	return c.sim
}

// Scaled converts a real frame delta to a simulation delta.
func (c *Clock) Scaled(dt float64) float64 {
	return dt * c.scale
}

// Reset zeroes both accumulators and restores normal speed.
func (c *Clock) Reset() {
	c.scale = 1.0
	c.real = 0
	c.sim = 0
}
