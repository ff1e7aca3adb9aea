package pga

// Motor is the general even versor, a screw motion blending rotation about
// an axis with translation along it. The scalar and e23, e31, e12
// components carry the rotational part, e01, e02, e03 the translational
// part, and e0123 couples the two when the screw has pitch.
type Motor struct {
	s, e23, e31, e12, e01, e02, e03, e0123 float32
}

// NewMotor builds the motor
// a + b*e23 + c*e31 + d*e12 + e*e01 + f*e02 + g*e03 + h*e0123.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{a, b, c, d, e, f, g, h}
}

// NewIdentityMotor returns the motor that leaves everything in place.
func NewIdentityMotor() Motor {
	return Motor{s: 1}
}

// LoadMotor reads a motor from a buffer laid out as
// (scalar, e23, e31, e12, e01, e02, e03, e0123).
func LoadMotor(data *[8]float32) Motor {
	return Motor{data[0], data[1], data[2], data[3], data[4], data[5], data[6], data[7]}
}

// Load replaces the motor with the contents of a
// (scalar, e23, e31, e12, e01, e02, e03, e0123) buffer.
func (m *Motor) Load(data *[8]float32) {
	*m = LoadMotor(data)
}

// Store writes the motor out in (scalar, e23, e31, e12, e01, e02, e03, e0123) order.
func (m Motor) Store(data *[8]float32) {
	data[0], data[1], data[2], data[3] = m.s, m.e23, m.e31, m.e12
	data[4], data[5], data[6], data[7] = m.e01, m.e02, m.e03, m.e0123
}

// Scalar returns the scalar part.
func (m Motor) Scalar() float32 { return m.s }

// E23 returns the e23 bivector component.
func (m Motor) E23() float32 { return m.e23 }

// E31 returns the e31 bivector component.
func (m Motor) E31() float32 { return m.e31 }

// E12 returns the e12 bivector component.
func (m Motor) E12() float32 { return m.e12 }

// E01 returns the e01 bivector component.
func (m Motor) E01() float32 { return m.e01 }

// E02 returns the e02 bivector component.
func (m Motor) E02() float32 { return m.e02 }

// E03 returns the e03 bivector component.
func (m Motor) E03() float32 { return m.e03 }

// E0123 returns the pseudoscalar component.
func (m Motor) E0123() float32 { return m.e0123 }

// Add returns the componentwise sum m + n.
func (m Motor) Add(n Motor) Motor {
	return Motor{
		m.s + n.s, m.e23 + n.e23, m.e31 + n.e31, m.e12 + n.e12,
		m.e01 + n.e01, m.e02 + n.e02, m.e03 + n.e03, m.e0123 + n.e0123,
	}
}

// Sub returns the componentwise difference m - n.
func (m Motor) Sub(n Motor) Motor {
	return Motor{
		m.s - n.s, m.e23 - n.e23, m.e31 - n.e31, m.e12 - n.e12,
		m.e01 - n.e01, m.e02 - n.e02, m.e03 - n.e03, m.e0123 - n.e0123,
	}
}

// Neg returns the motor with every component negated.
func (m Motor) Neg() Motor {
	return Motor{-m.s, -m.e23, -m.e31, -m.e12, -m.e01, -m.e02, -m.e03, -m.e0123}
}

// Scale returns the motor uniformly scaled by s.
func (m Motor) Scale(s float32) Motor {
	return Motor{
		m.s * s, m.e23 * s, m.e31 * s, m.e12 * s,
		m.e01 * s, m.e02 * s, m.e03 * s, m.e0123 * s,
	}
}

// Div returns the motor scaled by the fast reciprocal of s.
func (m Motor) Div(s float32) Motor {
	return m.Scale(rcpNR(s))
}

// Reverse flips every grade 2 blade, undoing a normalized motor.
func (m Motor) Reverse() Motor {
	return Motor{m.s, -m.e23, -m.e31, -m.e12, -m.e01, -m.e02, -m.e03, m.e0123}
}

// Norm returns the versor magnitude sqrt(s*s + |b|*|b|). The degenerate
// blades do not contribute.
func (m Motor) Norm() float32 {
	return rcpNR(rsqrtNR(m.s*m.s + m.e23*m.e23 + m.e31*m.e31 + m.e12*m.e12))
}

// Normalize rescales the motor in place so that m * rev(m) is 1 up to the
// estimate error. Both the scalar excess and the residual pseudoscalar
// defect are removed, which keeps screw compositions from drifting.
func (m *Motor) Normalize() {
	a := m.s*m.s + m.e23*m.e23 + m.e31*m.e31 + m.e12*m.e12
	rs := rsqrtNR(a)
	bd := m.s*m.e0123 - (m.e23*m.e01 + m.e31*m.e02 + m.e12*m.e03)
	w := -bd * rcpNR(a) * rs
	s, b1, b2, b3 := m.s, m.e23, m.e31, m.e12
	m.s = s * rs
	m.e23 = b1 * rs
	m.e31 = b2 * rs
	m.e12 = b3 * rs
	m.e01 = m.e01*rs - w*b1
	m.e02 = m.e02*rs - w*b2
	m.e03 = m.e03*rs - w*b3
	m.e0123 = m.e0123*rs + w*s
}

// Normalized returns a copy of m normalized.
func (m Motor) Normalized() Motor {
	m.Normalize()
	return m
}

// Inverse returns the motor undoing m, the reverse scaled by the inverse of
// the full dual-valued square norm.
func (m Motor) Inverse() Motor {
	a := m.s*m.s + m.e23*m.e23 + m.e31*m.e31 + m.e12*m.e12
	rs := rsqrtNR(a)
	r := rs * rs
	bd := m.s*m.e0123 - (m.e23*m.e01 + m.e31*m.e02 + m.e12*m.e03)
	c := -2 * bd * r * r
	return Motor{
		m.s * r,
		-m.e23 * r,
		-m.e31 * r,
		-m.e12 * r,
		-m.e01*r + c*m.e23,
		-m.e02*r + c*m.e31,
		-m.e03*r + c*m.e12,
		m.e0123*r + c*m.s,
	}
}
