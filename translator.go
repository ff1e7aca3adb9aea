package pga

import "github.com/chewxy/math32"

// Translator is the versor of pure translation. It stores half the negated
// displacement on the degenerate blades; the unit scalar is implicit and
// never stored, so the zero value is the identity and every translator is
// normalized.
type Translator struct {
	e01, e02, e03 float32
}

// NewTranslator builds a translator moving by delta along the direction
// (x, y, z). The direction need not be unit length; it is normalized with
// an exact square root since construction is off the hot path.
func NewTranslator(delta, x, y, z float32) Translator {
	k := -0.5 * delta / math32.Sqrt(x*x+y*y+z*z)
	return Translator{k * x, k * y, k * z}
}

// LoadTranslator reads a translator from a buffer laid out as (e01, e02, e03).
func LoadTranslator(data *[3]float32) Translator {
	return Translator{data[0], data[1], data[2]}
}

// Load replaces the translator with the contents of an (e01, e02, e03) buffer.
func (t *Translator) Load(data *[3]float32) {
	*t = LoadTranslator(data)
}

// Store writes the translator out in (e01, e02, e03) order.
func (t Translator) Store(data *[3]float32) {
	data[0], data[1], data[2] = t.e01, t.e02, t.e03
}

// E01 returns the e01 component.
func (t Translator) E01() float32 { return t.e01 }

// E02 returns the e02 component.
func (t Translator) E02() float32 { return t.e02 }

// E03 returns the e03 component.
func (t Translator) E03() float32 { return t.e03 }

// Add returns the componentwise sum t + u, translating by both displacements.
func (t Translator) Add(u Translator) Translator {
	return Translator{t.e01 + u.e01, t.e02 + u.e02, t.e03 + u.e03}
}

// Sub returns the componentwise difference t - u.
func (t Translator) Sub(u Translator) Translator {
	return Translator{t.e01 - u.e01, t.e02 - u.e02, t.e03 - u.e03}
}

// Neg returns the translator moving the opposite way.
func (t Translator) Neg() Translator {
	return Translator{-t.e01, -t.e02, -t.e03}
}

// Scale returns the translator with its displacement scaled by s.
func (t Translator) Scale(s float32) Translator {
	return Translator{t.e01 * s, t.e02 * s, t.e03 * s}
}

// Div returns the translator with its displacement scaled by the fast
// reciprocal of s.
func (t Translator) Div(s float32) Translator {
	return t.Scale(rcpNR(s))
}

// Inverse returns the translator undoing t.
func (t Translator) Inverse() Translator {
	return t.Neg()
}

// Motor promotes the translator to a motor, making the implicit scalar explicit.
func (t Translator) Motor() Motor {
	return Motor{s: 1, e01: t.e01, e02: t.e02, e03: t.e03}
}
