package pga

import (
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Conversions to and from the gonum quaternion types. The mapping is a
// homomorphism, so composing motors and multiplying their dual quaternions
// commute, and a pure translator lands on the usual real plus half
// displacement form.

// Quat returns the rotor as a gonum quaternion, scalar first.
func (r Rotor) Quat() quat.Number {
	return quat.Number{
		Real: float64(r.s),
		Imag: float64(-r.e23),
		Jmag: float64(-r.e31),
		Kmag: float64(-r.e12),
	}
}

// RotorFromQuat builds the rotor equivalent to a rotation quaternion.
func RotorFromQuat(q quat.Number) Rotor {
	return Rotor{
		s:   float32(q.Real),
		e23: float32(-q.Imag),
		e31: float32(-q.Jmag),
		e12: float32(-q.Kmag),
	}
}

// DualQuat returns the motor as a gonum dual quaternion.
func (m Motor) DualQuat() dualquat.Number {
	return dualquat.Number{
		Real: quat.Number{
			Real: float64(m.s),
			Imag: float64(-m.e23),
			Jmag: float64(-m.e31),
			Kmag: float64(-m.e12),
		},
		Dual: quat.Number{
			Real: float64(-m.e0123),
			Imag: float64(-m.e01),
			Jmag: float64(-m.e02),
			Kmag: float64(-m.e03),
		},
	}
}

// MotorFromDualQuat builds the motor equivalent to a rigid dual quaternion.
func MotorFromDualQuat(dq dualquat.Number) Motor {
	return Motor{
		s:     float32(dq.Real.Real),
		e23:   float32(-dq.Real.Imag),
		e31:   float32(-dq.Real.Jmag),
		e12:   float32(-dq.Real.Kmag),
		e01:   float32(-dq.Dual.Imag),
		e02:   float32(-dq.Dual.Jmag),
		e03:   float32(-dq.Dual.Kmag),
		e0123: float32(-dq.Dual.Real),
	}
}
