package pga

import "github.com/golang/geo/r3"

// PointFromR3 builds the point at the given euclidean position.
func PointFromR3(v r3.Vector) Point {
	return NewPoint(float32(v.X), float32(v.Y), float32(v.Z))
}

// Vector returns the euclidean position of the point, dividing out the weight.
func (p Point) Vector() r3.Vector {
	w := float64(p.e123)
	return r3.Vector{
		X: float64(p.e032) / w,
		Y: float64(p.e013) / w,
		Z: float64(p.e021) / w,
	}
}

// PlaneFromR3 builds the plane whose points x satisfy normal·x = offset.
func PlaneFromR3(normal r3.Vector, offset float64) Plane {
	return NewPlane(
		float32(normal.X),
		float32(normal.Y),
		float32(normal.Z),
		float32(-offset),
	)
}

// Normal returns the normal vector of the plane.
func (p Plane) Normal() r3.Vector {
	return r3.Vector{X: float64(p.e1), Y: float64(p.e2), Z: float64(p.e3)}
}

// Direction returns the direction vector of the line.
func (l Line) Direction() r3.Vector {
	return r3.Vector{X: float64(l.e23), Y: float64(l.e31), Z: float64(l.e12)}
}

// Moment returns the moment vector of the line about the origin.
func (l Line) Moment() r3.Vector {
	return r3.Vector{X: float64(l.e01), Y: float64(l.e02), Z: float64(l.e03)}
}

// NewTranslatorFromVector builds the translator that moves points by v.
func NewTranslatorFromVector(v r3.Vector) Translator {
	return Translator{
		e01: float32(-0.5 * v.X),
		e02: float32(-0.5 * v.Y),
		e03: float32(-0.5 * v.Z),
	}
}

// Vector returns the displacement the translator applies to points.
func (t Translator) Vector() r3.Vector {
	return r3.Vector{
		X: float64(-2 * t.e01),
		Y: float64(-2 * t.e02),
		Z: float64(-2 * t.e03),
	}
}

// TransformR3 applies the motor to a euclidean position.
func (m Motor) TransformR3(v r3.Vector) r3.Vector {
	return m.TransformPoint(PointFromR3(v)).Vector()
}
