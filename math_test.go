package pga

import (
	"math"
	"testing"

	"go.viam.com/test"
)

// Both estimates document a relative error bound of 1.5*2^-12 per stage.
const estimateBound = 1.5 / 4096

func TestRsqrtEstimate(t *testing.T) {
	for _, x := range []float32{0.001, 0.25, 1, 2, 9, 100, 12345.678, 1e6} {
		got := float64(rsqrtNR(x))
		want := 1 / math.Sqrt(float64(x))
		test.That(t, math.Abs(got-want)/want, test.ShouldBeLessThan, estimateBound)
	}
}

func TestRcpEstimate(t *testing.T) {
	for _, x := range []float32{0.001, 0.25, 1, 2, 9, 100, -3, -0.5, 1e6} {
		got := float64(rcpNR(x))
		want := 1 / float64(x)
		test.That(t, math.Abs(got-want)/math.Abs(want), test.ShouldBeLessThan, estimateBound)
	}
}

func TestNormLanesEquivalence(t *testing.T) {
	// Whichever merge path was compiled in, the correction lane must carry
	// exactly 1 so the degenerate component is untouched.
	lanes := normLanes(0.25)
	test.That(t, lanes, test.ShouldResemble, [4]float32{1, 0.25, 0.25, 0.25})
}

func TestPlaneNorm(t *testing.T) {
	p := NewPlane(3, 0, 4, 7)
	test.That(t, p.Norm(), test.ShouldAlmostEqual, 5, 5*2*estimateBound)

	// The degenerate offset never contributes to the norm.
	test.That(t, NewPlane(3, 0, 4, 0).Norm(), test.ShouldAlmostEqual, p.Norm(), 1e-7)

	p.Normalize()
	test.That(t, p.Norm(), test.ShouldAlmostEqual, 1, 1e-3)
	test.That(t, p.X(), test.ShouldAlmostEqual, 0.6, 1e-4)
	test.That(t, p.Z(), test.ShouldAlmostEqual, 0.8, 1e-4)
	// The offset rides along multiplied by exactly 1.
	test.That(t, p.D(), test.ShouldEqual, 7)
}

func TestLineNorm(t *testing.T) {
	l := NewLine(7, -2, 9, 3, 0, 4)
	test.That(t, l.Norm(), test.ShouldAlmostEqual, 5, 5*2*estimateBound)

	l.Normalize()
	test.That(t, l.Norm(), test.ShouldAlmostEqual, 1, 1e-3)
	// The moment scales by the same factor as the direction.
	test.That(t, l.E01(), test.ShouldAlmostEqual, 7.0/5, 1e-4)
	test.That(t, l.E23(), test.ShouldAlmostEqual, 3.0/5, 1e-4)
}

func TestPointNorm(t *testing.T) {
	p := NewPoint(1, 2, 3).Scale(-4)
	test.That(t, p.Norm(), test.ShouldAlmostEqual, 4, 4*2*estimateBound)

	p.Normalize()
	test.That(t, p.W(), test.ShouldAlmostEqual, 1, 1e-4)
	test.That(t, p.X(), test.ShouldAlmostEqual, 1, 1e-4)
	test.That(t, p.Z(), test.ShouldAlmostEqual, 3, 1e-3)
}

func TestRotorNormalizeInverse(t *testing.T) {
	r := LoadRotor(&[4]float32{4, -3, 2, 1})
	test.That(t, r.Norm(), test.ShouldAlmostEqual, math.Sqrt(30), math.Sqrt(30)*2*estimateBound)

	n := r.Normalized()
	test.That(t, n.Norm(), test.ShouldAlmostEqual, 1, 1e-3)

	// r * r^-1 lands on the identity.
	id := r.MulRotor(r.Inverse())
	test.That(t, RotorAlmostEqual(id, NewIdentityRotor(), 1e-4), test.ShouldBeTrue)
}

func TestMotorNormalize(t *testing.T) {
	m := NewMotor(2, -1, 3, 1, 4, -2, 0.5, 3)
	m.Normalize()

	// After normalization m * rev(m) must be 1, with no residual
	// pseudoscalar defect.
	u := m.MulMotor(m.Reverse())
	test.That(t, u.Scalar(), test.ShouldAlmostEqual, 1, 1e-4)
	test.That(t, u.E0123(), test.ShouldAlmostEqual, 0, 1e-4)
	test.That(t, u.E23(), test.ShouldEqual, 0)
	test.That(t, u.E01(), test.ShouldAlmostEqual, 0, 1e-5)

	// Normalizing a normalized motor is a no-op up to the estimate error.
	n := m.Normalized()
	test.That(t, MotorAlmostEqual(n, m, 1e-4), test.ShouldBeTrue)
}

func TestMotorInverse(t *testing.T) {
	m := NewMotor(2, -1, 3, 1, 4, -2, 0.5, 3)
	id := m.MulMotor(m.Inverse())
	test.That(t, MotorAlmostEqual(id, NewIdentityMotor(), 1e-3), test.ShouldBeTrue)

	// For a normalized motor the inverse coincides with the reverse.
	m.Normalize()
	test.That(t, MotorAlmostEqual(m.Inverse(), m.Reverse(), 1e-3), test.ShouldBeTrue)
}

func TestEstimateZeroInputs(t *testing.T) {
	// Zero magnitudes are not guarded; the refinement blows up instead of
	// handing back a finite artifact of the bit-trick seed.
	test.That(t, math.IsNaN(float64(rsqrtNR(0))), test.ShouldBeTrue)
	test.That(t, math.IsInf(float64(rcpNR(0)), 1), test.ShouldBeTrue)
}

func TestDegenerateNormPropagatesNaN(t *testing.T) {
	// Zero-magnitude inputs are not guarded; the estimates blow up and the
	// caller observes the non-finite values directly.
	var p Plane
	p.Normalize()
	test.That(t, math.IsNaN(float64(p.X())), test.ShouldBeTrue)

	// A plane with only an offset keeps d while the normal goes NaN.
	offset := NewPlane(0, 0, 0, 7)
	offset.Normalize()
	test.That(t, offset.D(), test.ShouldEqual, 7)
	test.That(t, math.IsNaN(float64(offset.X())), test.ShouldBeTrue)

	// Ideal lines have no finite norm and normalize to NaN components.
	ideal := NewLine(1, 2, 3, 0, 0, 0)
	test.That(t, math.IsNaN(float64(ideal.Norm())), test.ShouldBeTrue)
	ideal.Normalize()
	test.That(t, math.IsNaN(float64(ideal.E01())), test.ShouldBeTrue)
}
