package tween

import "math"

// LoopForever makes a tween wrap on every completion.
const LoopForever = -1

// Vec2 is a 2D point in board units.
type Vec2 struct {
	X, Y float64
}

// LerpVec2 interpolates between a and b.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// LerpFloat interpolates between a and b.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Tween interpolates a value from Start to End over Duration seconds.
//
// Completion policy is derived from Loops and Bounce:
//   - Loops == 0: snap to End and finish.
//   - Loops > 0: decrement and wrap elapsed time; continues from 0.
//   - Loops == LoopForever: wrap on every completion.
//   - Bounce: swap Start and End on every wrap.
//
// Delay holds the value at Start until that many seconds have passed.
type Tween[T any] struct {
	Elapsed  float64
	Duration float64
	Delay    float64
	Ease     Easing
	Start    T
	End      T
	Loops    int
	Bounce   bool

	current T
}

// advance moves the tween forward by dt and reports whether it finished.
func (tw *Tween[T]) advance(dt float64, lerp func(a, b T, t float64) T) bool {
	tw.Elapsed += dt

	active := tw.Elapsed - tw.Delay
	if active < 0 {
		tw.current = tw.Start
		return false
	}

	progress := 1.0
	if tw.Duration > 0 {
		progress = min(active/tw.Duration, 1.0)
	}
	tw.current = lerp(tw.Start, tw.End, tw.Ease.Apply(progress))

	if active < tw.Duration {
		return false
	}

	if tw.Loops == 0 || tw.Duration <= 0 {
		tw.current = tw.End
		return true
	}

	if tw.Loops > 0 {
		tw.Loops--
	}
	tw.Elapsed = tw.Delay + math.Mod(active, tw.Duration)

	if tw.Bounce {
		tw.Start, tw.End = tw.End, tw.Start
	}
	return false
}
