// Package geometry provides the pure numeric kernel used by exercise
// evaluators: joint angles, distances, and line slopes over landmark
// coordinates. All functions are deterministic, allocation-free, and safe to
// call at per-frame rates.
package geometry

import "math"

// Point is a landmark position in the detector's coordinate space.
// X grows rightward, Y grows downward, Z grows away from the camera.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Angle returns the angle in degrees at vertex b formed by the rays b->a and
// b->c, computed with the arctangent-difference method. The result is always
// in [0,180]; reflex configurations are reflected back into range.
//
// Callers must visibility-filter landmarks first: coincident or absent points
// make the angle geometrically meaningless (a degenerate input yields 0, never
// NaN).
func Angle(a, b, c Point) float64 {
	raw := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	deg := math.Abs(raw * 180 / math.Pi)
	if deg > 180 {
		deg = 360 - deg
	}
	return Clamp(deg, 0, 180)
}

// Distance returns the Euclidean distance between a and b in the XY plane.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance3D returns the Euclidean distance between a and b using all three
// coordinates.
func Distance3D(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Slope returns the angle in degrees of the line a->b relative to horizontal,
// in [-90,90]. A vertical segment returns 90.
func Slope(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 {
		return 90
	}
	deg := math.Atan(dy/dx) * 180 / math.Pi
	return Clamp(deg, -90, 90)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
