package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Clamp limits each component to [lo, hi].
func (v Vec2) Clamp(lo, hi float32) Vec2 {
	return Vec2{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi)}
}

// Clamp limits x to [lo, hi]. NaN maps to lo.
func Clamp(x, lo, hi float32) float32 {
	switch {
	case !(x >= lo):
		return lo
	case x > hi:
		return hi
	}
	return x
}
