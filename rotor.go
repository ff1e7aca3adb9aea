package pga

import "github.com/chewxy/math32"

// Rotor is the even versor of rotation about a line through the origin.
// Unit rotors compose by multiplication, right factor first, and act on
// entities through the sandwich product.
type Rotor struct {
	s, e23, e31, e12 float32
}

// NewRotor builds a rotor turning by angle radians about the axis (x, y, z)
// through the origin, right-handed. The axis need not be unit length; it is
// normalized with an exact square root since construction is off the hot
// path.
func NewRotor(angle, x, y, z float32) Rotor {
	sin, cos := math32.Sincos(0.5 * angle)
	k := -sin / math32.Sqrt(x*x+y*y+z*z)
	return Rotor{s: cos, e23: k * x, e31: k * y, e12: k * z}
}

// NewIdentityRotor returns the rotor that leaves everything in place.
func NewIdentityRotor() Rotor {
	return Rotor{s: 1}
}

// LoadRotor reads a rotor from a buffer laid out as (scalar, e23, e31, e12).
func LoadRotor(data *[4]float32) Rotor {
	return Rotor{data[0], data[1], data[2], data[3]}
}

// Load replaces the rotor with the contents of a (scalar, e23, e31, e12) buffer.
func (r *Rotor) Load(data *[4]float32) {
	*r = LoadRotor(data)
}

// Store writes the rotor out in (scalar, e23, e31, e12) order.
func (r Rotor) Store(data *[4]float32) {
	data[0], data[1], data[2], data[3] = r.s, r.e23, r.e31, r.e12
}

// Scalar returns the scalar part, the cosine of the half angle for a unit rotor.
func (r Rotor) Scalar() float32 { return r.s }

// E23 returns the e23 bivector component.
func (r Rotor) E23() float32 { return r.e23 }

// E31 returns the e31 bivector component.
func (r Rotor) E31() float32 { return r.e31 }

// E12 returns the e12 bivector component.
func (r Rotor) E12() float32 { return r.e12 }

// Add returns the componentwise sum r + q.
func (r Rotor) Add(q Rotor) Rotor {
	return Rotor{r.s + q.s, r.e23 + q.e23, r.e31 + q.e31, r.e12 + q.e12}
}

// Sub returns the componentwise difference r - q.
func (r Rotor) Sub(q Rotor) Rotor {
	return Rotor{r.s - q.s, r.e23 - q.e23, r.e31 - q.e31, r.e12 - q.e12}
}

// Neg returns the rotor with every component negated.
func (r Rotor) Neg() Rotor {
	return Rotor{-r.s, -r.e23, -r.e31, -r.e12}
}

// Scale returns the rotor uniformly scaled by s.
func (r Rotor) Scale(s float32) Rotor {
	return Rotor{r.s * s, r.e23 * s, r.e31 * s, r.e12 * s}
}

// Div returns the rotor scaled by the fast reciprocal of s.
func (r Rotor) Div(s float32) Rotor {
	return r.Scale(rcpNR(s))
}

// Reverse flips the bivector part, undoing a unit rotor.
func (r Rotor) Reverse() Rotor {
	return Rotor{r.s, -r.e23, -r.e31, -r.e12}
}

// Norm returns the versor magnitude sqrt(s*s + |b|*|b|).
func (r Rotor) Norm() float32 {
	return rcpNR(rsqrtNR(r.s*r.s + r.e23*r.e23 + r.e31*r.e31 + r.e12*r.e12))
}

// Normalize rescales the rotor in place to approximately unit norm.
func (r *Rotor) Normalize() {
	k := rsqrtNR(r.s*r.s + r.e23*r.e23 + r.e31*r.e31 + r.e12*r.e12)
	r.s *= k
	r.e23 *= k
	r.e31 *= k
	r.e12 *= k
}

// Normalized returns a copy of r with approximately unit norm.
func (r Rotor) Normalized() Rotor {
	r.Normalize()
	return r
}

// Inverse returns the rotor undoing r, the reverse scaled by the inverse
// square norm.
func (r Rotor) Inverse() Rotor {
	k := rsqrtNR(r.s*r.s + r.e23*r.e23 + r.e31*r.e31 + r.e12*r.e12)
	k *= k
	return Rotor{r.s * k, -r.e23 * k, -r.e31 * k, -r.e12 * k}
}

// Motor promotes the rotor to a motor with no translation part.
func (r Rotor) Motor() Motor {
	return Motor{s: r.s, e23: r.e23, e31: r.e31, e12: r.e12}
}
