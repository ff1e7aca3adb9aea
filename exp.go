package pga

import "github.com/chewxy/math32"

// The exponential map between lines and motors. A line scaled to half angle
// on its Euclidean part and half pitch on its ideal part exponentiates to
// the screw motion about itself; Log inverts that on normalized motors.

// Exp exponentiates the line into a motor. The Euclidean magnitude of l is
// taken as the half angle and the component of the moment along the carrier
// as the half pitch. The line must carry a Euclidean part; an ideal or zero
// line has no finite exponential here.
func (l Line) Exp() Motor {
	a2 := l.e23*l.e23 + l.e31*l.e31 + l.e12*l.e12
	inv := rsqrtNR(a2)
	u := a2 * inv
	v := -(l.e23*l.e01 + l.e31*l.e02 + l.e12*l.e03) * inv
	b1, b2, b3 := l.e23*inv, l.e31*inv, l.e12*inv
	m1 := (l.e01 + v*b1) * inv
	m2 := (l.e02 + v*b2) * inv
	m3 := (l.e03 + v*b3) * inv
	sin, cos := math32.Sincos(u)
	return Motor{
		s:     cos,
		e23:   sin * b1,
		e31:   sin * b2,
		e12:   sin * b3,
		e01:   sin*m1 - v*cos*b1,
		e02:   sin*m2 - v*cos*b2,
		e03:   sin*m3 - v*cos*b3,
		e0123: -v * sin,
	}
}

// Log returns the line whose Exp is m. The motor must be normalized and
// must carry some rotation; a pure translator has no finite logarithm here.
func (m Motor) Log() Line {
	b2 := m.e23*m.e23 + m.e31*m.e31 + m.e12*m.e12
	inv := rsqrtNR(b2)
	u := math32.Atan2(b2*inv, m.s)
	v := -m.e0123 * inv
	b1n, b2n, b3n := m.e23*inv, m.e31*inv, m.e12*inv
	m1 := (m.e01 + v*m.s*b1n) * inv
	m2 := (m.e02 + v*m.s*b2n) * inv
	m3 := (m.e03 + v*m.s*b3n) * inv
	return Line{
		e01: u*m1 - v*b1n,
		e02: u*m2 - v*b2n,
		e03: u*m3 - v*b3n,
		e23: u * b1n,
		e31: u * b2n,
		e12: u * b3n,
	}
}

// NewMotorFromScrew builds the motor rotating by angle radians about the
// axis line while sliding dist along it, the right-handed screw around the
// axis direction. The axis is normalized internally.
func NewMotorFromScrew(angle, dist float32, axis Line) Motor {
	axis.Normalize()
	h := -0.5 * angle
	d := -0.5 * dist
	return Line{
		e01: h*axis.e01 + d*axis.e23,
		e02: h*axis.e02 + d*axis.e31,
		e03: h*axis.e03 + d*axis.e12,
		e23: h * axis.e23,
		e31: h * axis.e31,
		e12: h * axis.e12,
	}.Exp()
}
