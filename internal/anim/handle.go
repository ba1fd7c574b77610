package anim

import "time"

// Handle is the progress value for one item's transition. The zero value
// rests at 0 and is not running.
type Handle struct {
	from     float64
	to       float64
	value    float64
	start    time.Time
	duration time.Duration
	easing   Easing
	running  bool
	done     bool
}

// Start begins a transition from the current value to `to`.
func (h *Handle) Start(to float64, duration time.Duration, easing Easing, now time.Time) {
	if easing == nil {
		easing = Linear
	}
	h.from = h.value
	h.to = to
	h.start = now
	h.duration = duration
	h.easing = easing
	h.running = true
	h.done = false
}

// Advance moves the transition to now and returns the new value and whether
// the transition has finished. It is a no-op once finished.
func (h *Handle) Advance(now time.Time) (float64, bool) {
	if !h.running {
		return h.value, h.done
	}

	progress := 1.0
	if h.duration > 0 {
		progress = float64(now.Sub(h.start)) / float64(h.duration)
	}
	if progress >= 1 {
		h.value = h.to
		h.running = false
		h.done = true
		return h.value, true
	}
	if progress < 0 {
		progress = 0
	}

	h.value = h.clamp(h.from + (h.to-h.from)*h.easing(progress))
	return h.value, false
}

// clamp keeps overshooting curves within the range of the transition.
func (h *Handle) clamp(v float64) float64 {
	lo, hi := h.from, h.to
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Reset stops any transition and returns the handle to rest at 0.
func (h *Handle) Reset() {
	*h = Handle{}
}

// Value returns the current progress value.
func (h *Handle) Value() float64 {
	return h.value
}
