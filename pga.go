// Package pga implements the projective geometric algebra of 3D Euclidean
// space, Cl(3,0,1), as a set of small fixed-layout float32 entities.
//
// Planes, lines and points are the geometric primitives. Rotors, translators
// and motors are the even versors that rotate, translate and screw them; a
// versor v acts on an entity e through the sandwich v * e * rev(v).
// Composition reads right to left, so a.MulRotor(b) applies b first.
//
// Norms and normalization chain fast reciprocal and reciprocal square root
// estimates instead of exact square roots. Relative error stays below
// 1.5*2^-12; callers needing exact magnitudes can recompute them from the
// stored components.
package pga

import "github.com/chewxy/math32"

// Float32AlmostEqual returns whether a and b are within epsilon of each other.
func Float32AlmostEqual(a, b, epsilon float32) bool {
	return math32.Abs(a-b) < epsilon
}

// PlaneAlmostEqual returns whether two planes match componentwise within epsilon.
func PlaneAlmostEqual(p, q Plane, epsilon float32) bool {
	return Float32AlmostEqual(p.e0, q.e0, epsilon) &&
		Float32AlmostEqual(p.e1, q.e1, epsilon) &&
		Float32AlmostEqual(p.e2, q.e2, epsilon) &&
		Float32AlmostEqual(p.e3, q.e3, epsilon)
}

// LineAlmostEqual returns whether two lines match componentwise within epsilon.
func LineAlmostEqual(l, k Line, epsilon float32) bool {
	return Float32AlmostEqual(l.e01, k.e01, epsilon) &&
		Float32AlmostEqual(l.e02, k.e02, epsilon) &&
		Float32AlmostEqual(l.e03, k.e03, epsilon) &&
		Float32AlmostEqual(l.e23, k.e23, epsilon) &&
		Float32AlmostEqual(l.e31, k.e31, epsilon) &&
		Float32AlmostEqual(l.e12, k.e12, epsilon)
}

// PointAlmostEqual returns whether two points match componentwise within epsilon.
func PointAlmostEqual(p, q Point, epsilon float32) bool {
	return Float32AlmostEqual(p.e123, q.e123, epsilon) &&
		Float32AlmostEqual(p.e032, q.e032, epsilon) &&
		Float32AlmostEqual(p.e013, q.e013, epsilon) &&
		Float32AlmostEqual(p.e021, q.e021, epsilon)
}

// RotorAlmostEqual returns whether two rotors match componentwise within epsilon.
func RotorAlmostEqual(r, q Rotor, epsilon float32) bool {
	return Float32AlmostEqual(r.s, q.s, epsilon) &&
		Float32AlmostEqual(r.e23, q.e23, epsilon) &&
		Float32AlmostEqual(r.e31, q.e31, epsilon) &&
		Float32AlmostEqual(r.e12, q.e12, epsilon)
}

// TranslatorAlmostEqual returns whether two translators match componentwise within epsilon.
func TranslatorAlmostEqual(t, u Translator, epsilon float32) bool {
	return Float32AlmostEqual(t.e01, u.e01, epsilon) &&
		Float32AlmostEqual(t.e02, u.e02, epsilon) &&
		Float32AlmostEqual(t.e03, u.e03, epsilon)
}

// MotorAlmostEqual returns whether two motors match componentwise within epsilon.
func MotorAlmostEqual(m, n Motor, epsilon float32) bool {
	return Float32AlmostEqual(m.s, n.s, epsilon) &&
		Float32AlmostEqual(m.e23, n.e23, epsilon) &&
		Float32AlmostEqual(m.e31, n.e31, epsilon) &&
		Float32AlmostEqual(m.e12, n.e12, epsilon) &&
		Float32AlmostEqual(m.e01, n.e01, epsilon) &&
		Float32AlmostEqual(m.e02, n.e02, epsilon) &&
		Float32AlmostEqual(m.e03, n.e03, epsilon) &&
		Float32AlmostEqual(m.e0123, n.e0123, epsilon)
}
