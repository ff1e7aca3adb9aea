package pga

// Plane is the grade 1 entity satisfying ax + by + cz + d = 0. Planes are
// the fundamental reflectors of the algebra; every rigid motion factors into
// plane reflections. Components sit in memory as (d, a, b, c) with the
// degenerate e0 blade in the lowest lane.
type Plane struct {
	e0, e1, e2, e3 float32
}

// NewPlane builds the plane ax + by + cz + d = 0.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{e0: d, e1: a, e2: b, e3: c}
}

// LoadPlane reads a plane from a buffer laid out as (d, a, b, c).
func LoadPlane(data *[4]float32) Plane {
	return Plane{data[0], data[1], data[2], data[3]}
}

// Load replaces the plane with the contents of a (d, a, b, c) buffer.
func (p *Plane) Load(data *[4]float32) {
	*p = LoadPlane(data)
}

// Store writes the plane out in (d, a, b, c) order.
func (p Plane) Store(data *[4]float32) {
	data[0], data[1], data[2], data[3] = p.e0, p.e1, p.e2, p.e3
}

// X returns the x coefficient of the plane equation.
func (p Plane) X() float32 { return p.e1 }

// E1 is a synonym for X.
func (p Plane) E1() float32 { return p.e1 }

// Y returns the y coefficient of the plane equation.
func (p Plane) Y() float32 { return p.e2 }

// E2 is a synonym for Y.
func (p Plane) E2() float32 { return p.e2 }

// Z returns the z coefficient of the plane equation.
func (p Plane) Z() float32 { return p.e3 }

// E3 is a synonym for Z.
func (p Plane) E3() float32 { return p.e3 }

// D returns the constant offset of the plane equation.
func (p Plane) D() float32 { return p.e0 }

// E0 is a synonym for D.
func (p Plane) E0() float32 { return p.e0 }

// Add returns the componentwise sum p + q.
func (p Plane) Add(q Plane) Plane {
	return Plane{p.e0 + q.e0, p.e1 + q.e1, p.e2 + q.e2, p.e3 + q.e3}
}

// Sub returns the componentwise difference p - q.
func (p Plane) Sub(q Plane) Plane {
	return Plane{p.e0 - q.e0, p.e1 - q.e1, p.e2 - q.e2, p.e3 - q.e3}
}

// Neg returns the plane with every component negated.
func (p Plane) Neg() Plane {
	return Plane{-p.e0, -p.e1, -p.e2, -p.e3}
}

// Scale returns the plane uniformly scaled by s.
func (p Plane) Scale(s float32) Plane {
	return Plane{p.e0 * s, p.e1 * s, p.e2 * s, p.e3 * s}
}

// Div returns the plane scaled by the fast reciprocal of s.
func (p Plane) Div(s float32) Plane {
	return p.Scale(rcpNR(s))
}

// Norm returns the length of the plane normal. The degenerate offset does
// not contribute.
func (p Plane) Norm() float32 {
	return rcpNR(rsqrtNR(p.e1*p.e1 + p.e2*p.e2 + p.e3*p.e3))
}

// Normalize rescales the normal to unit length in place. The offset lane is
// multiplied by exactly 1, so d survives bit for bit.
func (p *Plane) Normalize() {
	lanes := normLanes(rsqrtNR(p.e1*p.e1 + p.e2*p.e2 + p.e3*p.e3))
	p.e0 *= lanes[0]
	p.e1 *= lanes[1]
	p.e2 *= lanes[2]
	p.e3 *= lanes[3]
}

// Normalized returns a copy of p with a unit normal.
func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}
