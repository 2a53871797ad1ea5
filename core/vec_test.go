// Package core_test contains unit tests for the Vec2/Vec3 value types.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestVec2_Arithmetic(t *testing.T) {
	t.Parallel()

	v := core.NewVec2(3, 4)
	w := core.NewVec2(-1, 2)

	require.Equal(t, core.Vec2{X: 2, Y: 6}, v.Add(w))
	require.Equal(t, core.Vec2{X: 4, Y: 2}, v.Sub(w))
	require.Equal(t, core.Vec2{X: -3, Y: -4}, v.Neg())
	require.Equal(t, core.Vec2{X: 6, Y: 8}, v.Scale(2))
	require.Equal(t, 5.0, v.Dot(w))    // 3*-1 + 4*2
	require.Equal(t, 10.0, v.Cross(w)) // 3*2 - 4*-1
	require.Equal(t, core.Vec2{X: -4, Y: 3}, v.Perp())
	require.Equal(t, 25.0, v.LengthSquared())
	require.Equal(t, 5.0, v.Length())
}

func TestVec2_NormalizeZeroSafe(t *testing.T) {
	t.Parallel()

	// Normalizing the zero vector must yield zero, not NaN.
	require.Equal(t, core.Vec2{}, core.Vec2{}.Normalize())

	n := core.NewVec2(3, 4).Normalize()
	require.InDelta(t, 1.0, n.Length(), eps)
	require.InDelta(t, 0.6, n.X, eps)
	require.InDelta(t, 0.8, n.Y, eps)
}

func TestVec2_LerpMinMax(t *testing.T) {
	t.Parallel()

	a := core.NewVec2(0, 10)
	b := core.NewVec2(10, 0)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, core.Vec2{X: 5, Y: 5}, a.Lerp(b, 0.5))
	require.Equal(t, core.Vec2{X: 0, Y: 0}, a.Min(b))
	require.Equal(t, core.Vec2{X: 10, Y: 10}, a.Max(b))
	require.Equal(t, core.Vec2{X: 1, Y: 2}, core.NewVec2(-1, -2).Abs())
}

func TestVec3_Arithmetic(t *testing.T) {
	t.Parallel()

	v := core.NewVec3(1, 2, 3)
	w := core.NewVec3(4, 5, 6)

	require.Equal(t, core.Vec3{X: 5, Y: 7, Z: 9}, v.Add(w))
	require.Equal(t, core.Vec3{X: -3, Y: -3, Z: -3}, v.Sub(w))
	require.Equal(t, 32.0, v.Dot(w))
	require.Equal(t, core.Vec3{X: -3, Y: 6, Z: -3}, v.Cross(w))
	require.Equal(t, core.Vec2{X: 1, Y: 2}, v.XY())

	// Cross product is perpendicular to both operands.
	c := v.Cross(w)
	require.InDelta(t, 0.0, c.Dot(v), eps)
	require.InDelta(t, 0.0, c.Dot(w), eps)
}

func TestVec3_NormalizeZeroSafe(t *testing.T) {
	t.Parallel()

	require.Equal(t, core.Vec3{}, core.Vec3{}.Normalize())
	require.InDelta(t, 1.0, core.NewVec3(1, 2, 2).Normalize().Length(), eps)
}

func TestVec_ApproxEqual(t *testing.T) {
	t.Parallel()

	v := core.NewVec2(1, 1)
	require.True(t, v.ApproxEqual(core.NewVec2(1+1e-13, 1-1e-13), 1e-12))
	require.False(t, v.ApproxEqual(core.NewVec2(1.1, 1), 1e-12))

	u := core.NewVec3(1, 1, 1)
	require.True(t, u.ApproxEqual(core.NewVec3(1, 1, 1+1e-13), 1e-12))
	require.False(t, u.ApproxEqual(core.NewVec3(1, 1, 2), 1e-12))
}

func TestVec_NaNPropagates(t *testing.T) {
	t.Parallel()

	v := core.NewVec2(math.NaN(), 1)
	require.True(t, math.IsNaN(v.Add(core.NewVec2(1, 1)).X))
	require.True(t, math.IsNaN(v.Length()))
}
