package pga

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

func TestQuatRoundTrip(t *testing.T) {
	r := NewRotor(1.1, 1, -2, 0.5)
	back := RotorFromQuat(r.Quat())
	test.That(t, RotorAlmostEqual(back, r, 1e-6), test.ShouldBeTrue)

	// The identity rotor is the identity quaternion.
	test.That(t, NewIdentityRotor().Quat(), test.ShouldResemble, quat.Number{Real: 1})
}

func TestDualQuatRoundTrip(t *testing.T) {
	m := NewMotorFromScrew(0.9, 1.4, NewLine(0.2, 0, -0.3, 2, 1, -2))
	back := MotorFromDualQuat(m.DualQuat())
	test.That(t, MotorAlmostEqual(back, m, 1e-6), test.ShouldBeTrue)
}

func TestDualQuatHomomorphism(t *testing.T) {
	// Composing motors and multiplying their dual quaternions commute.
	m1 := NewMotor(2, 3, 4, 5, 6, 7, 8, 9)
	m2 := NewMotor(6, 7, 8, 9, 10, 11, 12, 13)
	got := m1.MulMotor(m2).DualQuat()
	want := dualquat.Mul(m1.DualQuat(), m2.DualQuat())
	test.That(t, got.Real.Real, test.ShouldAlmostEqual, want.Real.Real, 1e-6)
	test.That(t, got.Real.Imag, test.ShouldAlmostEqual, want.Real.Imag, 1e-6)
	test.That(t, got.Real.Jmag, test.ShouldAlmostEqual, want.Real.Jmag, 1e-6)
	test.That(t, got.Real.Kmag, test.ShouldAlmostEqual, want.Real.Kmag, 1e-6)
	test.That(t, got.Dual.Real, test.ShouldAlmostEqual, want.Dual.Real, 1e-6)
	test.That(t, got.Dual.Imag, test.ShouldAlmostEqual, want.Dual.Imag, 1e-6)
	test.That(t, got.Dual.Jmag, test.ShouldAlmostEqual, want.Dual.Jmag, 1e-6)
	test.That(t, got.Dual.Kmag, test.ShouldAlmostEqual, want.Dual.Kmag, 1e-6)
}

func TestTranslatorDualQuatConvention(t *testing.T) {
	// A pure translation maps to real 1 with the dual part carrying half
	// the displacement.
	tr := NewTranslatorFromVector(r3.Vector{X: 3, Y: 4, Z: 5})
	dq := tr.Motor().DualQuat()
	test.That(t, dq.Real, test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, dq.Dual, test.ShouldResemble, quat.Number{Imag: 1.5, Jmag: 2, Kmag: 2.5})
}

func TestMat4MatchesSandwich(t *testing.T) {
	m := NewMotorFromScrew(1.3, 0.6, NewLine(0.4, -0.1, 0.2, 1, -2, 2))
	mat := m.Mat4()

	for _, v := range []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: -2, Z: 3}} {
		got := mat.Mul4x1(mgl32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), 1})
		want := m.TransformPoint(PointFromR3(v))
		test.That(t, got[0], test.ShouldAlmostEqual, want.X(), 1e-3)
		test.That(t, got[1], test.ShouldAlmostEqual, want.Y(), 1e-3)
		test.That(t, got[2], test.ShouldAlmostEqual, want.Z(), 1e-3)
		test.That(t, got[3], test.ShouldAlmostEqual, want.W(), 1e-3)
	}
}

func TestRotorMat4(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	mat := r.Mat4()
	got := mat.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	test.That(t, got[0], test.ShouldAlmostEqual, 0, 1e-4)
	test.That(t, got[1], test.ShouldAlmostEqual, 1, 1e-4)
	test.That(t, got[2], test.ShouldAlmostEqual, 0, 1e-4)
	test.That(t, got[3], test.ShouldAlmostEqual, 1, 1e-4)
}

func TestR3Bridges(t *testing.T) {
	p := PointFromR3(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, p, test.ShouldResemble, NewPoint(1, 2, 3))
	test.That(t, p.Vector(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	// Weighted points divide through on the way out.
	test.That(t, p.Scale(2).Vector(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	pl := PlaneFromR3(r3.Vector{Z: 1}, 2)
	test.That(t, pl, test.ShouldResemble, NewPlane(0, 0, 1, -2))
	test.That(t, pl.Normal(), test.ShouldResemble, r3.Vector{Z: 1})

	tr := NewTranslatorFromVector(r3.Vector{X: -1, Y: 0.5, Z: 2})
	test.That(t, tr.Vector(), test.ShouldResemble, r3.Vector{X: -1, Y: 0.5, Z: 2})

	l := JoinPoints(NewPoint(0, 0, 0), NewPoint(0, 0, 2))
	test.That(t, l.Direction(), test.ShouldResemble, r3.Vector{Z: 2})
	test.That(t, l.Moment(), test.ShouldResemble, r3.Vector{})
}

func TestTransformR3(t *testing.T) {
	m := NewTranslatorFromVector(r3.Vector{X: 1, Y: 1, Z: 1}).Motor()
	got := m.TransformR3(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, got.X, test.ShouldAlmostEqual, 2, 1e-6)
	test.That(t, got.Y, test.ShouldAlmostEqual, 3, 1e-6)
	test.That(t, got.Z, test.ShouldAlmostEqual, 4, 1e-6)
}
