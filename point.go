package pga

// Point is the grade 3 entity at Euclidean position (x, y, z) carrying a
// projective weight w. Unit points have w = 1; a zero weight makes the
// point ideal, a pure direction. Components sit in memory as (w, x, y, z).
type Point struct {
	e123, e032, e013, e021 float32
}

// NewPoint builds a unit-weight point at (x, y, z).
func NewPoint(x, y, z float32) Point {
	return Point{e123: 1, e032: x, e013: y, e021: z}
}

// LoadPoint reads a point from a buffer laid out as (w, x, y, z).
func LoadPoint(data *[4]float32) Point {
	return Point{data[0], data[1], data[2], data[3]}
}

// Load replaces the point with the contents of a (w, x, y, z) buffer.
func (p *Point) Load(data *[4]float32) {
	*p = LoadPoint(data)
}

// Store writes the point out in (w, x, y, z) order.
func (p Point) Store(data *[4]float32) {
	data[0], data[1], data[2], data[3] = p.e123, p.e032, p.e013, p.e021
}

// X returns the x coordinate.
func (p Point) X() float32 { return p.e032 }

// E032 is a synonym for X.
func (p Point) E032() float32 { return p.e032 }

// Y returns the y coordinate.
func (p Point) Y() float32 { return p.e013 }

// E013 is a synonym for Y.
func (p Point) E013() float32 { return p.e013 }

// Z returns the z coordinate.
func (p Point) Z() float32 { return p.e021 }

// E021 is a synonym for Z.
func (p Point) E021() float32 { return p.e021 }

// W returns the projective weight.
func (p Point) W() float32 { return p.e123 }

// E123 is a synonym for W.
func (p Point) E123() float32 { return p.e123 }

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.e123 + q.e123, p.e032 + q.e032, p.e013 + q.e013, p.e021 + q.e021}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.e123 - q.e123, p.e032 - q.e032, p.e013 - q.e013, p.e021 - q.e021}
}

// Neg returns the point with every component negated.
func (p Point) Neg() Point {
	return Point{-p.e123, -p.e032, -p.e013, -p.e021}
}

// Scale returns the point uniformly scaled by s.
func (p Point) Scale(s float32) Point {
	return Point{p.e123 * s, p.e032 * s, p.e013 * s, p.e021 * s}
}

// Div returns the point scaled by the fast reciprocal of s.
func (p Point) Div(s float32) Point {
	return p.Scale(rcpNR(s))
}

// Norm returns the absolute projective weight. Only the non-degenerate e123
// blade contributes; it still runs through the estimate chain the other
// entities use.
func (p Point) Norm() float32 {
	return rcpNR(rsqrtNR(p.e123 * p.e123))
}

// Normalize divides the point through by its weight in place using the fast
// reciprocal, leaving w approximately 1.
func (p *Point) Normalize() {
	r := rcpNR(p.e123)
	p.e123 *= r
	p.e032 *= r
	p.e013 *= r
	p.e021 *= r
}

// Normalized returns a copy of p with approximately unit weight.
func (p Point) Normalized() Point {
	p.Normalize()
	return p
}
