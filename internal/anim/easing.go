// Package anim drives short per-item transitions such as the slide-out shown
// when a task is deleted.
package anim

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// DefaultOvershoot is the classic back-easing overshoot constant.
const DefaultOvershoot = 1.70158

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Back returns an easing that pulls back slightly before accelerating
// towards the target. s controls how far it pulls back.
func Back(s float64) Easing {
	return func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}
}
