package pga

// Sandwich application of versors and reflectors. Every routine expands
// v * e * rev(v) for its pair of types directly, so nothing here allocates
// or loops. Unnormalized operators scale their image by the square norm
// instead of dividing it out; callers wanting isometries normalize first.

// rotate applies the rotational action of a scalar s and bivector
// (b1, b2, b3) to the triple (x, y, z).
func rotate(s, b1, b2, b3, x, y, z float32) (float32, float32, float32) {
	d := s*s - (b1*b1 + b2*b2 + b3*b3)
	bv := 2 * (b1*x + b2*y + b3*z)
	return d*x + 2*s*(y*b3-z*b2) + bv*b1,
		d*y + 2*s*(z*b1-x*b3) + bv*b2,
		d*z + 2*s*(x*b2-y*b1) + bv*b3
}

// ReflectPlane mirrors q in p.
func (p Plane) ReflectPlane(q Plane) Plane {
	nn := p.e1*p.e1 + p.e2*p.e2 + p.e3*p.e3
	nm := 2 * (p.e1*q.e1 + p.e2*q.e2 + p.e3*q.e3)
	return Plane{
		e0: nm*p.e0 - nn*q.e0,
		e1: nm*p.e1 - nn*q.e1,
		e2: nm*p.e2 - nn*q.e2,
		e3: nm*p.e3 - nn*q.e3,
	}
}

// ReflectLine mirrors l in p. A line lying inside the mirror keeps its
// carrier but flips orientation.
func (p Plane) ReflectLine(l Line) Line {
	nn := p.e1*p.e1 + p.e2*p.e2 + p.e3*p.e3
	nl := 2 * (p.e1*l.e23 + p.e2*l.e31 + p.e3*l.e12)
	nt := 2 * (p.e1*l.e01 + p.e2*l.e02 + p.e3*l.e03)
	d2 := 2 * p.e0
	return Line{
		e01: nn*l.e01 - nt*p.e1 - d2*(l.e31*p.e3-l.e12*p.e2),
		e02: nn*l.e02 - nt*p.e2 - d2*(l.e12*p.e1-l.e23*p.e3),
		e03: nn*l.e03 - nt*p.e3 - d2*(l.e23*p.e2-l.e31*p.e1),
		e23: nl*p.e1 - nn*l.e23,
		e31: nl*p.e2 - nn*l.e31,
		e12: nl*p.e3 - nn*l.e12,
	}
}

// ReflectPoint mirrors q in p.
func (p Plane) ReflectPoint(q Point) Point {
	nn := p.e1*p.e1 + p.e2*p.e2 + p.e3*p.e3
	k := 2 * (p.e1*q.e032 + p.e2*q.e013 + p.e3*q.e021 + p.e0*q.e123)
	return Point{
		e123: nn * q.e123,
		e032: nn*q.e032 - k*p.e1,
		e013: nn*q.e013 - k*p.e2,
		e021: nn*q.e021 - k*p.e3,
	}
}

// TransformPlane rotates p about the origin.
func (r Rotor) TransformPlane(p Plane) Plane {
	x, y, z := rotate(r.s, r.e23, r.e31, r.e12, p.e1, p.e2, p.e3)
	k := r.s*r.s + r.e23*r.e23 + r.e31*r.e31 + r.e12*r.e12
	return Plane{e0: k * p.e0, e1: x, e2: y, e3: z}
}

// TransformLine rotates l about the origin.
func (r Rotor) TransformLine(l Line) Line {
	mx, my, mz := rotate(r.s, r.e23, r.e31, r.e12, l.e01, l.e02, l.e03)
	dx, dy, dz := rotate(r.s, r.e23, r.e31, r.e12, l.e23, l.e31, l.e12)
	return Line{mx, my, mz, dx, dy, dz}
}

// TransformPoint rotates p about the origin.
func (r Rotor) TransformPoint(p Point) Point {
	x, y, z := rotate(r.s, r.e23, r.e31, r.e12, p.e032, p.e013, p.e021)
	k := r.s*r.s + r.e23*r.e23 + r.e31*r.e31 + r.e12*r.e12
	return Point{e123: k * p.e123, e032: x, e013: y, e021: z}
}

// TransformPlane displaces p. Only the offset moves; the normal is carried
// unchanged.
func (t Translator) TransformPlane(p Plane) Plane {
	return Plane{
		e0: p.e0 + 2*(p.e1*t.e01+p.e2*t.e02+p.e3*t.e03),
		e1: p.e1,
		e2: p.e2,
		e3: p.e3,
	}
}

// TransformLine displaces l. The direction is carried unchanged and the
// moment picks up the displaced contribution.
func (t Translator) TransformLine(l Line) Line {
	return Line{
		e01: l.e01 + 2*(l.e31*t.e03-l.e12*t.e02),
		e02: l.e02 + 2*(l.e12*t.e01-l.e23*t.e03),
		e03: l.e03 + 2*(l.e23*t.e02-l.e31*t.e01),
		e23: l.e23,
		e31: l.e31,
		e12: l.e12,
	}
}

// TransformPoint displaces p in proportion to its weight.
func (t Translator) TransformPoint(p Point) Point {
	w2 := 2 * p.e123
	return Point{
		e123: p.e123,
		e032: p.e032 - w2*t.e01,
		e013: p.e013 - w2*t.e02,
		e021: p.e021 - w2*t.e03,
	}
}

// TransformPlane applies the screw motion to p.
func (m Motor) TransformPlane(p Plane) Plane {
	x, y, z := rotate(m.s, m.e23, m.e31, m.e12, p.e1, p.e2, p.e3)
	k := m.s*m.s + m.e23*m.e23 + m.e31*m.e31 + m.e12*m.e12
	nt := p.e1*m.e01 + p.e2*m.e02 + p.e3*m.e03
	nb := p.e1*m.e23 + p.e2*m.e31 + p.e3*m.e12
	ntxb := p.e1*(m.e02*m.e12-m.e03*m.e31) +
		p.e2*(m.e03*m.e23-m.e01*m.e12) +
		p.e3*(m.e01*m.e31-m.e02*m.e23)
	return Plane{
		e0: k*p.e0 + 2*(m.s*nt+m.e0123*nb-ntxb),
		e1: x,
		e2: y,
		e3: z,
	}
}

// TransformLine applies the screw motion to l.
func (m Motor) TransformLine(l Line) Line {
	mx, my, mz := rotate(m.s, m.e23, m.e31, m.e12, l.e01, l.e02, l.e03)
	dx, dy, dz := rotate(m.s, m.e23, m.e31, m.e12, l.e23, l.e31, l.e12)
	bl := m.e23*l.e23 + m.e31*l.e31 + m.e12*l.e12
	tl := m.e01*l.e23 + m.e02*l.e31 + m.e03*l.e12
	tb := m.e01*m.e23 + m.e02*m.e31 + m.e03*m.e12 + m.e0123*m.s
	mx += 2 * (m.s*(l.e31*m.e03-l.e12*m.e02) + bl*m.e01 + tl*m.e23 -
		tb*l.e23 - m.e0123*(l.e31*m.e12-l.e12*m.e31))
	my += 2 * (m.s*(l.e12*m.e01-l.e23*m.e03) + bl*m.e02 + tl*m.e31 -
		tb*l.e31 - m.e0123*(l.e12*m.e23-l.e23*m.e12))
	mz += 2 * (m.s*(l.e23*m.e02-l.e31*m.e01) + bl*m.e03 + tl*m.e12 -
		tb*l.e12 - m.e0123*(l.e23*m.e31-l.e31*m.e23))
	return Line{mx, my, mz, dx, dy, dz}
}

// TransformPoint applies the screw motion to p.
func (m Motor) TransformPoint(p Point) Point {
	x, y, z := rotate(m.s, m.e23, m.e31, m.e12, p.e032, p.e013, p.e021)
	k := m.s*m.s + m.e23*m.e23 + m.e31*m.e31 + m.e12*m.e12
	w2 := 2 * p.e123
	return Point{
		e123: k * p.e123,
		e032: x + w2*(m.e31*m.e03-m.e12*m.e02-m.s*m.e01-m.e0123*m.e23),
		e013: y + w2*(m.e12*m.e01-m.e23*m.e03-m.s*m.e02-m.e0123*m.e31),
		e021: z + w2*(m.e23*m.e02-m.e31*m.e01-m.s*m.e03-m.e0123*m.e12),
	}
}
