package pga

// Line is the grade 2 entity in Pluecker-style coordinates. The e23, e31,
// e12 components hold the direction and the e01, e02, e03 components the
// moment about the origin. A line joined from points p and q (see
// JoinPoints) points from p toward q.
type Line struct {
	e01, e02, e03, e23, e31, e12 float32
}

// NewLine builds the line
// a*e01 + b*e02 + c*e03 + d*e23 + e*e31 + f*e12.
func NewLine(a, b, c, d, e, f float32) Line {
	return Line{a, b, c, d, e, f}
}

// LoadLine reads a line from a buffer laid out as (e01, e02, e03, e23, e31, e12).
func LoadLine(data *[6]float32) Line {
	return Line{data[0], data[1], data[2], data[3], data[4], data[5]}
}

// Load replaces the line with the contents of an (e01, e02, e03, e23, e31, e12) buffer.
func (l *Line) Load(data *[6]float32) {
	*l = LoadLine(data)
}

// Store writes the line out in (e01, e02, e03, e23, e31, e12) order.
func (l Line) Store(data *[6]float32) {
	data[0], data[1], data[2] = l.e01, l.e02, l.e03
	data[3], data[4], data[5] = l.e23, l.e31, l.e12
}

// E01 returns the e01 moment component.
func (l Line) E01() float32 { return l.e01 }

// E02 returns the e02 moment component.
func (l Line) E02() float32 { return l.e02 }

// E03 returns the e03 moment component.
func (l Line) E03() float32 { return l.e03 }

// E23 returns the e23 direction component.
func (l Line) E23() float32 { return l.e23 }

// E31 returns the e31 direction component.
func (l Line) E31() float32 { return l.e31 }

// E12 returns the e12 direction component.
func (l Line) E12() float32 { return l.e12 }

// Add returns the componentwise sum l + k.
func (l Line) Add(k Line) Line {
	return Line{l.e01 + k.e01, l.e02 + k.e02, l.e03 + k.e03, l.e23 + k.e23, l.e31 + k.e31, l.e12 + k.e12}
}

// Sub returns the componentwise difference l - k.
func (l Line) Sub(k Line) Line {
	return Line{l.e01 - k.e01, l.e02 - k.e02, l.e03 - k.e03, l.e23 - k.e23, l.e31 - k.e31, l.e12 - k.e12}
}

// Neg returns the line with every component negated, reversing its orientation.
func (l Line) Neg() Line {
	return Line{-l.e01, -l.e02, -l.e03, -l.e23, -l.e31, -l.e12}
}

// Scale returns the line uniformly scaled by s.
func (l Line) Scale(s float32) Line {
	return Line{l.e01 * s, l.e02 * s, l.e03 * s, l.e23 * s, l.e31 * s, l.e12 * s}
}

// Div returns the line scaled by the fast reciprocal of s.
func (l Line) Div(s float32) Line {
	return l.Scale(rcpNR(s))
}

// Norm returns the length of the direction part. An ideal line has no
// direction and no finite norm here.
func (l Line) Norm() float32 {
	return rcpNR(rsqrtNR(l.e23*l.e23 + l.e31*l.e31 + l.e12*l.e12))
}

// Normalize rescales the line in place so its direction has unit length.
// The moment scales with the direction, leaving the same weighted carrier.
func (l *Line) Normalize() {
	r := rsqrtNR(l.e23*l.e23 + l.e31*l.e31 + l.e12*l.e12)
	l.e01 *= r
	l.e02 *= r
	l.e03 *= r
	l.e23 *= r
	l.e31 *= r
	l.e12 *= r
}

// Normalized returns a copy of l with a unit direction.
func (l Line) Normalized() Line {
	l.Normalize()
	return l
}
