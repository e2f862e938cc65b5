package osier

import "time"

// Driver emulates the templating framework's transition loop: it consumes
// the transition's Delay, sweeps t linearly over its Duration, feeds the
// complementary u each frame, and ends on the exact completion pair,
// (1, 0) for an intro and (0, 1) for an outro. Demos and tests use it where
// the real framework scheduler would sit; Reverse flips it mid-flight the
// way the framework does when an element is toggled back.
type Driver struct {
	tr       SvelteTransition
	t        float64
	entering bool
	delay    time.Duration
	running  bool
	done     bool
}

// NewIntroDriver drives tr as an entering transition, t sweeping 0 to 1.
func NewIntroDriver(tr SvelteTransition) *Driver {
	return &Driver{tr: tr, t: 0, entering: true, delay: tr.Delay}
}

// NewOutroDriver drives tr as a leaving transition, t sweeping 1 to 0.
func NewOutroDriver(tr SvelteTransition) *Driver {
	return &Driver{tr: tr, t: 1, entering: false, delay: tr.Delay}
}

// T returns the current framework progress counter.
func (d *Driver) T() float64 {
	return d.t
}

// Done reports whether the sweep has emitted its completion tick.
func (d *Driver) Done() bool {
	return d.done
}

// Reverse flips the sweep direction from the current t, the way the
// framework reverses a transition when its element is toggled mid-flight.
// Reversing a finished sweep restarts it from the endpoint it reached.
func (d *Driver) Reverse() {
	d.entering = !d.entering
	d.done = false
}

// Update advances the sweep by a frame's elapsed time and calls the
// transition's Tick with the new progress pair. The configured delay is
// consumed first; the first tick after it carries the starting pair.
func (d *Driver) Update(dt time.Duration) {
	if d.done {
		return
	}
	if d.delay > 0 {
		d.delay -= dt
		if d.delay >= 0 {
			return
		}
		dt = -d.delay
		d.delay = 0
	}

	if !d.running {
		// First tick carries the starting pair untouched so direction
		// classification sees exactly what the framework would send.
		d.running = true
		d.tr.Tick(d.t, 1-d.t)
		return
	}

	if d.tr.Duration <= 0 {
		d.finish()
		return
	}
	step := dt.Seconds() / d.tr.Duration.Seconds()
	if d.entering {
		d.t += step
		if d.t >= 1 {
			d.finish()
			return
		}
	} else {
		d.t -= step
		if d.t <= 0 {
			d.finish()
			return
		}
	}
	d.tr.Tick(d.t, 1-d.t)
}

// finish clamps to the endpoint and emits the completion tick.
func (d *Driver) finish() {
	if d.entering {
		d.t = 1
	} else {
		d.t = 0
	}
	d.done = true
	d.tr.Tick(d.t, 1-d.t)
}
