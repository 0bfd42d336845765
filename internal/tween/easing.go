// Package tween provides time-stepped value interpolation for animating tile
// position, scale and displayed numbers. It has no knowledge of the board or
// of how values are drawn.
package tween

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing selects the curve applied to normalized progress before interpolation.
// The zero value is EaseOutBack.
type Easing int

const (
	EaseOutBack Easing = iota
	EaseInCirc
	EaseInOutCirc
	EaseOutBounce
	EaseLinear
	EaseOutQuad
)

// Overshoot constants for EaseOutBack.
const (
	backC1 = 1.70518
	backC3 = backC1 + 1
)

// Bounce constants for EaseOutBounce.
const (
	bounceN1 = 7.5625
	bounceD1 = 2.75
)

// String returns the curve name.
func (e Easing) String() string {
	switch e {
	case EaseOutBack:
		return "EaseOutBack"
	case EaseInCirc:
		return "EaseInCirc"
	case EaseInOutCirc:
		return "EaseInOutCirc"
	case EaseOutBounce:
		return "EaseOutBounce"
	case EaseLinear:
		return "EaseLinear"
	case EaseOutQuad:
		return "EaseOutQuad"
	default:
		return "Unknown"
	}
}

// Key returns the snake_case name used in configuration files.
func (e Easing) Key() string {
	switch e {
	case EaseOutBack:
		return "out_back"
	case EaseInCirc:
		return "in_circ"
	case EaseInOutCirc:
		return "in_out_circ"
	case EaseOutBounce:
		return "out_bounce"
	case EaseLinear:
		return "linear"
	case EaseOutQuad:
		return "out_quad"
	default:
		return ""
	}
}

// ParseEasing returns the curve with the given name or config key. Unknown
// names yield EaseOutBack and false.
func ParseEasing(name string) (Easing, bool) {
	for e := EaseOutBack; e <= EaseOutQuad; e++ {
		if e.String() == name || e.Key() == name {
			return e, true
		}
	}
	return EaseOutBack, false
}

// Apply maps progress x in [0,1] to eased progress.
// EaseOutBack overshoots past 1 before settling.
func (e Easing) Apply(x float64) float64 {
	switch e {
	case EaseInCirc:
		return easeInCirc(x)
	case EaseInOutCirc:
		return easeInOutCirc(x)
	case EaseOutBounce:
		return easeOutBounce(x)
	case EaseLinear:
		return float64(ease.Linear(float32(x), 0, 1, 1))
	case EaseOutQuad:
		return float64(ease.OutQuad(float32(x), 0, 1, 1))
	default:
		return easeOutBack(x)
	}
}

func easeInCirc(x float64) float64 {
	return 1 - math.Sqrt(1-x*x)
}

func easeInOutCirc(x float64) float64 {
	if x < 0.5 {
		return (1 - math.Sqrt(1-(2*x)*(2*x))) / 2
	}
	v := -2*x + 2
	return ((1 - math.Sqrt(v*v)) + 1) / 2
}

func easeOutBack(x float64) float64 {
	d := x - 1
	return 1 + backC3*d*d*d + backC1*d*d
}

func easeOutBounce(x float64) float64 {
	switch {
	case x < 1/bounceD1:
		return bounceN1 * x * x
	case x < 2/bounceD1:
		x -= 1.5 / bounceD1
		return bounceN1*x*x + 0.75
	case x < 2.5/bounceD1:
		x -= 2.25 / bounceD1
		return bounceN1*x*x + 0.9375
	default:
		x -= 2.625 / bounceD1
		return bounceN1*x*x + 0.984375
	}
}
