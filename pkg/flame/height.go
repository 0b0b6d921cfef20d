package flame

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

const (
	// surfaceHeightFactor is the Nelson coefficient for lab and field
	// surface fires (Nelson and Adkins 1986; Nelson et al. 2012).
	surfaceHeightFactor = 1.0 / 360
	// crownHeightFactor is the coefficient for active crown fires
	// (Butler et al. 2004).
	crownHeightFactor = 0.0175
)

// HeightModel selects a flame height model and carries its inputs.
// It is implemented by NelsonHeight and FinneyHeight; FlameHeight also
// accepts non-nil pointers to either.
type HeightModel interface {
	Name() string
	isHeightModel()
}

// NelsonHeight estimates flame height from fire intensity and mid-flame
// wind speed (Nelson and Adkins 1986). FireType holds fire type codes, see
// FireTypes.
type NelsonHeight struct {
	FireType          masked.Array
	FireIntensity     masked.Array // kW/m
	MidflameWindSpeed masked.Array // m/s
}

func (NelsonHeight) Name() string   { return "Nelson" }
func (NelsonHeight) isHeightModel() {}

// FinneyHeight projects flame length through a known tilt over sloped
// ground (Finney and Martin 1992). Use it when the tilt is already known.
type FinneyHeight struct {
	FlameTilt  masked.Array // degrees from vertical
	SlopeAngle masked.Array
	SlopeUnits SlopeUnits
}

func (FinneyHeight) Name() string   { return "Finney" }
func (FinneyHeight) isHeightModel() {}

// FlameHeight derives head fire flame height (m) from flame length (m).
func FlameHeight(flameLength masked.Array, model HeightModel) (masked.Array, error) {
	var (
		height masked.Array
		err    error
	)
	switch m := model.(type) {
	case NelsonHeight:
		height, err = nelsonHeight(flameLength, m)
	case FinneyHeight:
		height, err = finneyHeight(flameLength, m)
	case *NelsonHeight:
		if m == nil {
			return masked.Array{}, fmt.Errorf("flame height model is a nil *NelsonHeight: %w", ErrInvalidValue)
		}
		height, err = nelsonHeight(flameLength, *m)
	case *FinneyHeight:
		if m == nil {
			return masked.Array{}, fmt.Errorf("flame height model is a nil *FinneyHeight: %w", ErrInvalidValue)
		}
		height, err = finneyHeight(flameLength, *m)
	default:
		return masked.Array{}, fmt.Errorf("flame height model %v must be one of %q, %q: %w", model, "Nelson", "Finney", ErrInvalidValue)
	}
	if err != nil {
		return masked.Array{}, err
	}
	return height.ClampMin(0), nil
}

func nelsonHeight(flameLength masked.Array, m NelsonHeight) (masked.Array, error) {
	inputs := []input{
		{"flame_length", flameLength},
		{"fire_type", m.FireType},
		{"fire_intensity", m.FireIntensity},
		{"midflame_ws", m.MidflameWindSpeed},
	}
	if err := requireInputs("Nelson flame height", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("Nelson flame height: %w", err)
	}
	if err := validateFireTypes(m.FireType); err != nil {
		return masked.Array{}, fmt.Errorf("Nelson flame height: %w", err)
	}

	height, err := masked.Map(func(x []float64) float64 {
		length, fireType, intensity, ws := x[0], FireType(x[1]), x[2], x[3]

		a := crownHeightFactor
		if fireType == Surface || fireType == PassiveCrown {
			a = surfaceHeightFactor
		}

		h := length
		if ws != 0 {
			h = a * intensity / ws
		}
		// Flame height cannot exceed flame length.
		return math.Min(h, length)
	}, flameLength, m.FireType, m.FireIntensity, m.MidflameWindSpeed)
	if err != nil {
		return masked.Array{}, fmt.Errorf("Nelson flame height: %w", err)
	}
	return height, nil
}

func finneyHeight(flameLength masked.Array, m FinneyHeight) (masked.Array, error) {
	inputs := []input{
		{"flame_length", flameLength},
		{"flame_tilt", m.FlameTilt},
		{"slope_angle", m.SlopeAngle},
	}
	if err := requireInputs("Finney flame height", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := m.SlopeUnits.Validate(); err != nil {
		return masked.Array{}, fmt.Errorf("Finney flame height: %w", err)
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("Finney flame height: %w", err)
	}

	height, err := masked.Map(func(x []float64) float64 {
		length, tilt, slope := x[0], x[1], x[2]
		slopeAngle := m.SlopeUnits.angle(slope)
		// tilt relative to horizontal
		tiltH := rightAngle - unit.AngleFromDeg(tilt)

		// Slopes of at most one unit are treated as flat.
		if slope <= 1 {
			return length * tiltH.Sin()
		}
		return length * (tiltH - slopeAngle).Sin() / (rightAngle - slopeAngle).Sin()
	}, flameLength, m.FlameTilt, m.SlopeAngle)
	if err != nil {
		return masked.Array{}, fmt.Errorf("Finney flame height: %w", err)
	}
	return height, nil
}
