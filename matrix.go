package pga

import "github.com/go-gl/mathgl/mgl32"

func mat4(s, b1, b2, b3, t1, t2, t3, pi float32) mgl32.Mat4 {
	xx, xy, xz := rotate(s, b1, b2, b3, 1, 0, 0)
	yx, yy, yz := rotate(s, b1, b2, b3, 0, 1, 0)
	zx, zy, zz := rotate(s, b1, b2, b3, 0, 0, 1)
	tx := 2 * (b2*t3 - b3*t2 - s*t1 - pi*b1)
	ty := 2 * (b3*t1 - b1*t3 - s*t2 - pi*b2)
	tz := 2 * (b1*t2 - b2*t1 - s*t3 - pi*b3)
	return mgl32.Mat4{
		xx, xy, xz, 0,
		yx, yy, yz, 0,
		zx, zy, zz, 0,
		tx, ty, tz, s*s + b1*b1 + b2*b2 + b3*b3,
	}
}

// Mat4 returns the rotation as a column major homogeneous matrix.
// The matrix of an unnormalized rotor is scaled by the squared norm.
func (r Rotor) Mat4() mgl32.Mat4 {
	return mat4(r.s, r.e23, r.e31, r.e12, 0, 0, 0, 0)
}

// Mat4 returns the rigid motion as a column major homogeneous matrix.
// The matrix of an unnormalized motor is scaled by the squared norm.
func (m Motor) Mat4() mgl32.Mat4 {
	return mat4(m.s, m.e23, m.e31, m.e12, m.e01, m.e02, m.e03, m.e0123)
}
