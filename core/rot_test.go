// Package core_test contains unit tests for Rot2 rotations and rigid
// Transforms.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/stretchr/testify/require"
)

func TestRot2_ApplyMatchesTrig(t *testing.T) {
	t.Parallel()

	for _, angle := range []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, -math.Pi / 3, 2.5} {
		q := core.NewRot2(angle)
		v := core.NewVec2(1, 0)
		got := q.Apply(v)
		require.InDelta(t, math.Cos(angle), got.X, eps)
		require.InDelta(t, math.Sin(angle), got.Y, eps)

		// Rotation preserves length.
		w := core.NewVec2(3, -4)
		require.InDelta(t, w.Length(), q.Apply(w).Length(), eps)
	}
}

func TestRot2_InverseRoundTrip(t *testing.T) {
	t.Parallel()

	q := core.NewRot2(0.7)
	v := core.NewVec2(2, -3)
	require.True(t, v.ApproxEqual(q.ApplyInverse(q.Apply(v)), eps))
	require.True(t, v.ApproxEqual(q.Inverse().Apply(q.Apply(v)), eps))
}

func TestRot2_ComposeIsAngleSum(t *testing.T) {
	t.Parallel()

	a, b := 0.4, 1.1
	composed := core.NewRot2(a).Mul(core.NewRot2(b))
	require.True(t, composed.ApproxEqual(core.NewRot2(a+b), eps))
	require.InDelta(t, a+b, composed.Angle(), eps)
}

func TestRot2_Axes(t *testing.T) {
	t.Parallel()

	q := core.NewRot2(math.Pi / 2)
	require.True(t, q.XAxis().ApproxEqual(core.NewVec2(0, 1), eps))
	require.True(t, q.YAxis().ApproxEqual(core.NewVec2(-1, 0), eps))

	// ToMat2 agrees with Apply.
	v := core.NewVec2(1, 2)
	require.True(t, q.ToMat2().MulVec(v).ApproxEqual(q.Apply(v), eps))
}

func TestTransform_RoundTrip(t *testing.T) {
	t.Parallel()

	xf := core.NewTransform(core.NewVec2(3, -1), core.NewRot2(0.9))
	v := core.NewVec2(-2, 5)
	require.True(t, v.ApproxEqual(xf.ApplyInverse(xf.Apply(v)), eps))
	require.True(t, v.ApproxEqual(xf.Inverse().Apply(xf.Apply(v)), eps))
}

func TestTransform_Compose(t *testing.T) {
	t.Parallel()

	a := core.NewTransform(core.NewVec2(1, 2), core.NewRot2(0.3))
	b := core.NewTransform(core.NewVec2(-4, 0), core.NewRot2(-1.2))
	v := core.NewVec2(0.5, 0.5)

	// (a·b)(v) == a(b(v)).
	require.True(t, a.Mul(b).Apply(v).ApproxEqual(a.Apply(b.Apply(v)), eps))
}

func TestTransform_ToMat3Affine(t *testing.T) {
	t.Parallel()

	xf := core.NewTransform(core.NewVec2(2, 3), core.NewRot2(0.6))
	m := xf.ToMat3()
	require.True(t, m.IsAffine())

	// Homogeneous application agrees with the transform.
	v := core.NewVec2(1, -1)
	h := m.MulVec(core.NewVec3(v.X, v.Y, 1))
	require.True(t, xf.Apply(v).ApproxEqual(h.XY(), eps))

	// And the affine inverse is the matrix of the inverse transform.
	invM, err := m.InverseAffine()
	require.NoError(t, err)
	require.True(t, invM.ApproxEqual(xf.Inverse().ToMat3(), 1e-12))
}

func TestIdentityValues(t *testing.T) {
	t.Parallel()

	v := core.NewVec2(4, 2)
	require.Equal(t, v, core.IdentityRot().Apply(v))
	require.Equal(t, v, core.IdentityTransform().Apply(v))
	require.InDelta(t, 0.0, core.IdentityRot().Angle(), eps)
}
