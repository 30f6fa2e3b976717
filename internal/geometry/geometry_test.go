package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	t.Run("perpendicular rays give 90", func(t *testing.T) {
		got := Angle(Point{X: 1, Y: 0}, Point{}, Point{X: 0, Y: 1})
		require.InDelta(t, 90.0, got, 1e-9)
	})

	t.Run("opposite collinear rays give 180", func(t *testing.T) {
		got := Angle(Point{X: -1, Y: 0}, Point{}, Point{X: 1, Y: 0})
		require.InDelta(t, 180.0, got, 1e-9)
	})

	t.Run("same-direction collinear rays give 0", func(t *testing.T) {
		got := Angle(Point{X: 1, Y: 0}, Point{}, Point{X: 2, Y: 0})
		require.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("reflex configuration is reflected into range", func(t *testing.T) {
		// 45 degrees measured the "long way around" must come back as 45.
		got := Angle(Point{X: 1, Y: 0}, Point{}, Point{X: 1, Y: -1})
		require.InDelta(t, 45.0, got, 1e-9)
	})

	t.Run("result is order-symmetric", func(t *testing.T) {
		a := Point{X: 0.3, Y: 0.8}
		b := Point{X: 0.5, Y: 0.5}
		c := Point{X: 0.9, Y: 0.6}
		require.InDelta(t, Angle(a, b, c), Angle(c, b, a), 1e-9)
	})

	t.Run("always within 0 to 180", func(t *testing.T) {
		pts := []Point{
			{X: 0.1, Y: 0.9}, {X: 0.5, Y: 0.5}, {X: 0.9, Y: 0.1},
			{X: -3, Y: 2}, {X: 0, Y: 0}, {X: 7, Y: -4},
		}
		for i := range pts {
			for j := range pts {
				for k := range pts {
					got := Angle(pts[i], pts[j], pts[k])
					require.GreaterOrEqual(t, got, 0.0)
					require.LessOrEqual(t, got, 180.0)
				}
			}
		}
	})

	t.Run("degenerate input yields 0, not NaN", func(t *testing.T) {
		got := Angle(Point{}, Point{}, Point{})
		require.Equal(t, 0.0, got)
	})
}

func TestDistance(t *testing.T) {
	require.InDelta(t, 5.0, Distance(Point{X: 3, Y: 4}, Point{}), 1e-9)
	require.InDelta(t, 0.0, Distance(Point{X: 1, Y: 1}, Point{X: 1, Y: 1}), 1e-9)

	// Z only contributes in the 3D variant.
	a := Point{X: 1, Y: 2, Z: 2}
	require.InDelta(t, 3.0, Distance3D(a, Point{}), 1e-9)
	require.InDelta(t, 2.236068, Distance(a, Point{}), 1e-6)
}

func TestSlope(t *testing.T) {
	require.InDelta(t, 0.0, Slope(Point{}, Point{X: 1, Y: 0}), 1e-9)
	require.InDelta(t, 45.0, Slope(Point{}, Point{X: 1, Y: 1}), 1e-9)
	require.InDelta(t, -45.0, Slope(Point{}, Point{X: 1, Y: -1}), 1e-9)
	require.InDelta(t, 90.0, Slope(Point{}, Point{X: 0, Y: 5}), 1e-9)
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Point{X: 0, Y: 2, Z: 4}, Point{X: 2, Y: 0, Z: 0})
	require.Equal(t, Point{X: 1, Y: 1, Z: 2}, got)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.0, Clamp(-1, 0, 100))
	require.Equal(t, 100.0, Clamp(101, 0, 100))
	require.Equal(t, 55.5, Clamp(55.5, 0, 100))
}
