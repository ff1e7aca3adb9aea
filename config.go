package pga

import (
	"encoding/json"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/num/quat"
)

// RotationType signals how the value of a RotationConfig is parameterized.
type RotationType string

// The rotation parameterizations understood by ParseConfig.
const (
	NoRotationType RotationType = ""
	AxisAngleType  RotationType = "axis_angle"
	QuaternionType RotationType = "quaternion"
)

// RotationConfig holds the type tagged JSON form of a rotation.
type RotationConfig struct {
	Type  RotationType    `json:"type"`
	Value json.RawMessage `json:"value"`
}

// AxisAngleConfig is the JSON shape of a rotation by th radians about an axis.
type AxisAngleConfig struct {
	TH float32 `json:"th"`
	X  float32 `json:"x"`
	Y  float32 `json:"y"`
	Z  float32 `json:"z"`
}

// QuaternionConfig is the JSON shape of a rotation quaternion, scalar first.
type QuaternionConfig struct {
	W float32 `json:"w"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// TranslationConfig is the JSON shape of a displacement.
type TranslationConfig struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// MotorConfig pairs a translation with a rotation to describe a rigid motion.
type MotorConfig struct {
	Translation TranslationConfig `json:"translation"`
	Rotation    RotationConfig    `json:"rotation"`
}

// NewRotationConfig expresses a rotor as a quaternion typed rotation config.
func NewRotationConfig(r Rotor) (*RotationConfig, error) {
	q := r.Quat()
	value, err := json.Marshal(QuaternionConfig{
		W: float32(q.Real),
		X: float32(q.Imag),
		Y: float32(q.Jmag),
		Z: float32(q.Kmag),
	})
	if err != nil {
		return nil, err
	}
	return &RotationConfig{Type: QuaternionType, Value: value}, nil
}

// ParseConfig turns a rotation config into the rotor it describes. An empty
// type is the identity; quaternion values are normalized before use.
func (cfg *RotationConfig) ParseConfig() (Rotor, error) {
	switch cfg.Type {
	case NoRotationType:
		return NewIdentityRotor(), nil
	case AxisAngleType:
		var aa AxisAngleConfig
		if err := json.Unmarshal(cfg.Value, &aa); err != nil {
			return Rotor{}, err
		}
		if aa.X == 0 && aa.Y == 0 && aa.Z == 0 {
			return Rotor{}, errors.New("axis_angle rotation with a zero axis")
		}
		return NewRotor(aa.TH, aa.X, aa.Y, aa.Z), nil
	case QuaternionType:
		var q QuaternionConfig
		if err := json.Unmarshal(cfg.Value, &q); err != nil {
			return Rotor{}, err
		}
		if q.W == 0 && q.X == 0 && q.Y == 0 && q.Z == 0 {
			return Rotor{}, errors.New("quaternion rotation with zero norm")
		}
		return RotorFromQuat(quat.Number{
			Real: float64(q.W),
			Imag: float64(q.X),
			Jmag: float64(q.Y),
			Kmag: float64(q.Z),
		}).Normalized(), nil
	default:
		return Rotor{}, errors.Errorf("rotation type %s not recognized", cfg.Type)
	}
}

// Validate ensures the rotation config describes a usable rotor.
func (cfg *RotationConfig) Validate(path string) error {
	if _, err := cfg.ParseConfig(); err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	return nil
}

// NewTranslationConfig expresses a translator as a translation config.
func NewTranslationConfig(t Translator) *TranslationConfig {
	v := t.Vector()
	return &TranslationConfig{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// ParseConfig turns a translation config into the translator it describes.
func (cfg *TranslationConfig) ParseConfig() Translator {
	return NewTranslatorFromVector(r3.Vector{
		X: float64(cfg.X),
		Y: float64(cfg.Y),
		Z: float64(cfg.Z),
	})
}

// Validate ensures all components of the translation are finite.
func (cfg *TranslationConfig) Validate(path string) error {
	for _, c := range []struct {
		field string
		value float32
	}{
		{"x", cfg.X},
		{"y", cfg.Y},
		{"z", cfg.Z},
	} {
		if math32.IsNaN(c.value) || math32.IsInf(c.value, 0) {
			return utils.NewConfigValidationError(path,
				errors.Errorf("translation field %s must be finite", c.field))
		}
	}
	return nil
}

// NewMotorConfig expresses a normalized motor as a motor config.
func NewMotorConfig(m Motor) (*MotorConfig, error) {
	rot, err := NewRotationConfig(Rotor{s: m.s, e23: m.e23, e31: m.e31, e12: m.e12})
	if err != nil {
		return nil, err
	}
	v := m.TransformR3(r3.Vector{})
	return &MotorConfig{
		Translation: TranslationConfig{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)},
		Rotation:    *rot,
	}, nil
}

// ParseConfig turns a motor config into the rigid motion it describes,
// rotating first and then translating.
func (cfg *MotorConfig) ParseConfig() (Motor, error) {
	r, err := cfg.Rotation.ParseConfig()
	if err != nil {
		return Motor{}, err
	}
	return cfg.Translation.ParseConfig().MulRotor(r), nil
}

// Validate ensures all parts of the config are valid.
func (cfg *MotorConfig) Validate(path string) error {
	return multierr.Combine(
		cfg.Translation.Validate(fmt.Sprintf("%s.%s", path, "translation")),
		cfg.Rotation.Validate(fmt.Sprintf("%s.%s", path, "rotation")),
	)
}
