package pga

// Geometric products between entities. The product of two reflectors or two
// point reflections is always an even versor, so every routine here returns
// a motor or one of its special cases. Products compose right to left: in
// a.MulX(b) the right factor acts first under the sandwich.

// MulPlane returns the geometric product p * q. The scalar part is the
// weighted cosine of the dihedral angle; applying the result as a motor
// rotates by twice that angle about the planes' common line.
func (p Plane) MulPlane(q Plane) Motor {
	return Motor{
		s:   p.e1*q.e1 + p.e2*q.e2 + p.e3*q.e3,
		e23: p.e2*q.e3 - p.e3*q.e2,
		e31: p.e3*q.e1 - p.e1*q.e3,
		e12: p.e1*q.e2 - p.e2*q.e1,
		e01: p.e0*q.e1 - p.e1*q.e0,
		e02: p.e0*q.e2 - p.e2*q.e0,
		e03: p.e0*q.e3 - p.e3*q.e0,
	}
}

// MulPoint returns the geometric product p * q of a plane and a point, a
// motor whose square roots the reflection of the point in the plane.
func (p Plane) MulPoint(q Point) Motor {
	return Motor{
		e23:   p.e1 * q.e123,
		e31:   p.e2 * q.e123,
		e12:   p.e3 * q.e123,
		e01:   p.e3*q.e013 - p.e2*q.e021,
		e02:   p.e1*q.e021 - p.e3*q.e032,
		e03:   p.e2*q.e032 - p.e1*q.e013,
		e0123: p.e0*q.e123 + p.e1*q.e032 + p.e2*q.e013 + p.e3*q.e021,
	}
}

// MulPlane returns the geometric product p * q of a point and a plane. It
// shares every component with the plane-point product except the
// pseudoscalar, which changes sign.
func (p Point) MulPlane(q Plane) Motor {
	m := q.MulPoint(p)
	m.e0123 = -m.e0123
	return m
}

// MulLine returns the geometric product l * k. For unit lines the scalar
// part is the negated cosine of the angle between their directions and the
// pseudoscalar encodes their signed mutual moment.
func (l Line) MulLine(k Line) Motor {
	return Motor{
		s:     -(l.e23*k.e23 + l.e31*k.e31 + l.e12*k.e12),
		e23:   l.e12*k.e31 - l.e31*k.e12,
		e31:   l.e23*k.e12 - l.e12*k.e23,
		e12:   l.e31*k.e23 - l.e23*k.e31,
		e01:   l.e12*k.e02 - l.e31*k.e03 + l.e03*k.e31 - l.e02*k.e12,
		e02:   l.e23*k.e03 - l.e12*k.e01 + l.e01*k.e12 - l.e03*k.e23,
		e03:   l.e31*k.e01 - l.e23*k.e02 + l.e02*k.e23 - l.e01*k.e31,
		e0123: l.e23*k.e01 + l.e31*k.e02 + l.e12*k.e03 + l.e01*k.e23 + l.e02*k.e31 + l.e03*k.e12,
	}
}

// MulPoint returns the geometric product p * q of two points, a translator
// scaled by the negated product of the weights. Its square translates by
// twice the separation of the points.
func (p Point) MulPoint(q Point) Motor {
	return Motor{
		s:   -p.e123 * q.e123,
		e01: p.e032*q.e123 - p.e123*q.e032,
		e02: p.e013*q.e123 - p.e123*q.e013,
		e03: p.e021*q.e123 - p.e123*q.e021,
	}
}

// MulMotor returns the composition m * n, applying n first.
func (m Motor) MulMotor(n Motor) Motor {
	e01 := m.s*n.e01 + n.s*m.e01 + m.e12*n.e02 - m.e31*n.e03 +
		m.e03*n.e31 - m.e02*n.e12 - m.e0123*n.e23 - n.e0123*m.e23
	e02 := m.s*n.e02 + n.s*m.e02 + m.e23*n.e03 - m.e12*n.e01 +
		m.e01*n.e12 - m.e03*n.e23 - m.e0123*n.e31 - n.e0123*m.e31
	e03 := m.s*n.e03 + n.s*m.e03 + m.e31*n.e01 - m.e23*n.e02 +
		m.e02*n.e23 - m.e01*n.e31 - m.e0123*n.e12 - n.e0123*m.e12
	e0123 := m.s*n.e0123 + m.e0123*n.s +
		m.e23*n.e01 + m.e31*n.e02 + m.e12*n.e03 +
		m.e01*n.e23 + m.e02*n.e31 + m.e03*n.e12
	return Motor{
		s:     m.s*n.s - (m.e23*n.e23 + m.e31*n.e31 + m.e12*n.e12),
		e23:   m.s*n.e23 + n.s*m.e23 + m.e12*n.e31 - m.e31*n.e12,
		e31:   m.s*n.e31 + n.s*m.e31 + m.e23*n.e12 - m.e12*n.e23,
		e12:   m.s*n.e12 + n.s*m.e12 + m.e31*n.e23 - m.e23*n.e31,
		e01:   e01,
		e02:   e02,
		e03:   e03,
		e0123: e0123,
	}
}

// MulRotor returns the composition m * r, applying the rotor first.
func (m Motor) MulRotor(r Rotor) Motor {
	return m.MulMotor(r.Motor())
}

// MulTranslator returns the composition m * t, applying the translator first.
func (m Motor) MulTranslator(t Translator) Motor {
	return m.MulMotor(t.Motor())
}

// MulRotor returns the composition r * q, applying q first. Rotors are
// closed under multiplication.
func (r Rotor) MulRotor(q Rotor) Rotor {
	return Rotor{
		s:   r.s*q.s - (r.e23*q.e23 + r.e31*q.e31 + r.e12*q.e12),
		e23: r.s*q.e23 + q.s*r.e23 + r.e12*q.e31 - r.e31*q.e12,
		e31: r.s*q.e31 + q.s*r.e31 + r.e23*q.e12 - r.e12*q.e23,
		e12: r.s*q.e12 + q.s*r.e12 + r.e31*q.e23 - r.e23*q.e31,
	}
}

// MulTranslator returns the motor r * t, translating first and then rotating.
func (r Rotor) MulTranslator(t Translator) Motor {
	return Motor{
		s:     r.s,
		e23:   r.e23,
		e31:   r.e31,
		e12:   r.e12,
		e01:   r.s*t.e01 + r.e12*t.e02 - r.e31*t.e03,
		e02:   r.s*t.e02 + r.e23*t.e03 - r.e12*t.e01,
		e03:   r.s*t.e03 + r.e31*t.e01 - r.e23*t.e02,
		e0123: r.e23*t.e01 + r.e31*t.e02 + r.e12*t.e03,
	}
}

// MulMotor returns the composition r * m, applying the motor first.
func (r Rotor) MulMotor(m Motor) Motor {
	return r.Motor().MulMotor(m)
}

// MulTranslator returns the composition t * u. Translators are closed under
// multiplication; displacements simply add.
func (t Translator) MulTranslator(u Translator) Translator {
	return t.Add(u)
}

// MulRotor returns the motor t * r, rotating first and then translating.
func (t Translator) MulRotor(r Rotor) Motor {
	return Motor{
		s:     r.s,
		e23:   r.e23,
		e31:   r.e31,
		e12:   r.e12,
		e01:   r.s*t.e01 + t.e03*r.e31 - t.e02*r.e12,
		e02:   r.s*t.e02 + t.e01*r.e12 - t.e03*r.e23,
		e03:   r.s*t.e03 + t.e02*r.e23 - t.e01*r.e31,
		e0123: t.e01*r.e23 + t.e02*r.e31 + t.e03*r.e12,
	}
}

// MulMotor returns the composition t * m, applying the motor first.
func (t Translator) MulMotor(m Motor) Motor {
	return t.Motor().MulMotor(m)
}
