package flame

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

// TiltModel selects a flame tilt model and carries its inputs.
// It is implemented by StandardTilt, FinneyTilt and ButlerTilt; FlameTilt
// also accepts non-nil pointers to any of them.
type TiltModel interface {
	Name() string
	isTiltModel()
}

// StandardTilt uses flat-ground geometry: cos(tilt) = height / length.
type StandardTilt struct {
	FlameLength masked.Array // m
	FlameHeight masked.Array // m
}

func (StandardTilt) Name() string { return "Standard" }
func (StandardTilt) isTiltModel() {}

// FinneyTilt is the Finney and Martin (1992) geometry for sloped ground.
type FinneyTilt struct {
	FlameLength masked.Array // m
	FlameHeight masked.Array // m
	SlopeAngle  masked.Array
	SlopeUnits  SlopeUnits
}

func (FinneyTilt) Name() string { return "Finney" }
func (FinneyTilt) isTiltModel() {}

// ButlerTilt is the Butler et al. (2004) crown fire model. It predicts
// tilts that are too low for surface fires.
type ButlerTilt struct {
	WindSpeed      masked.Array // 10-m wind above open ground or canopy
	WindSpeedUnits WindSpeedUnits
	CanopyHeight   masked.Array // m, a zero height leaves the element masked
}

func (ButlerTilt) Name() string { return "Butler" }
func (ButlerTilt) isTiltModel() {}

// FlameTilt returns head fire flame tilt from vertical in degrees.
func FlameTilt(model TiltModel) (masked.Array, error) {
	var (
		tilt masked.Array
		err  error
	)
	switch m := model.(type) {
	case StandardTilt:
		tilt, err = standardTilt(m)
	case FinneyTilt:
		tilt, err = finneyTilt(m)
	case ButlerTilt:
		tilt, err = butlerTilt(m)
	case *StandardTilt:
		if m == nil {
			return masked.Array{}, fmt.Errorf("flame tilt model is a nil *StandardTilt: %w", ErrInvalidValue)
		}
		tilt, err = standardTilt(*m)
	case *FinneyTilt:
		if m == nil {
			return masked.Array{}, fmt.Errorf("flame tilt model is a nil *FinneyTilt: %w", ErrInvalidValue)
		}
		tilt, err = finneyTilt(*m)
	case *ButlerTilt:
		if m == nil {
			return masked.Array{}, fmt.Errorf("flame tilt model is a nil *ButlerTilt: %w", ErrInvalidValue)
		}
		tilt, err = butlerTilt(*m)
	default:
		return masked.Array{}, fmt.Errorf("flame tilt model %v must be one of %q, %q, %q: %w",
			model, "Standard", "Finney", "Butler", ErrInvalidValue)
	}
	if err != nil {
		return masked.Array{}, err
	}
	return tilt.ClampMin(0), nil
}

func standardTilt(m StandardTilt) (masked.Array, error) {
	inputs := []input{
		{"flame_length", m.FlameLength},
		{"flame_height", m.FlameHeight},
	}
	if err := requireInputs("Standard flame tilt", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("Standard flame tilt: %w", err)
	}

	tilt, err := masked.Map(func(x []float64) float64 {
		length, height := x[0], x[1]
		return unit.Angle(math.Acos(height / length)).Deg()
	}, m.FlameLength, m.FlameHeight)
	if err != nil {
		return masked.Array{}, fmt.Errorf("Standard flame tilt: %w", err)
	}
	return tilt, nil
}

func finneyTilt(m FinneyTilt) (masked.Array, error) {
	inputs := []input{
		{"flame_length", m.FlameLength},
		{"flame_height", m.FlameHeight},
		{"slope_angle", m.SlopeAngle},
	}
	if err := requireInputs("Finney flame tilt", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := m.SlopeUnits.Validate(); err != nil {
		return masked.Array{}, fmt.Errorf("Finney flame tilt: %w", err)
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("Finney flame tilt: %w", err)
	}

	tilt, err := masked.Map(func(x []float64) float64 {
		length, height, slope := x[0], x[1], x[2]
		if height == length {
			return 0
		}
		slopeAngle := m.SlopeUnits.angle(slope)
		// tilt up from horizontal, then down from vertical
		tiltH := unit.Angle(math.Asin(height*(rightAngle-slopeAngle).Sin()/length)) + slopeAngle
		return (rightAngle - tiltH).Deg()
	}, m.FlameLength, m.FlameHeight, m.SlopeAngle)
	if err != nil {
		return masked.Array{}, fmt.Errorf("Finney flame tilt: %w", err)
	}
	return tilt, nil
}

func butlerTilt(m ButlerTilt) (masked.Array, error) {
	inputs := []input{
		{"wind_speed", m.WindSpeed},
		{"canopy_ht", m.CanopyHeight},
	}
	if err := requireInputs("Butler flame tilt", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := m.WindSpeedUnits.Validate(); err != nil {
		return masked.Array{}, fmt.Errorf("Butler flame tilt: %w", err)
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("Butler flame tilt: %w", err)
	}

	windSpeed := m.WindSpeed.Scale(1 / m.WindSpeedUnits.perMPS())
	tilt, err := masked.Map(func(x []float64) float64 {
		ws, canopyHt := x[0], x[1]
		if canopyHt == 0 {
			return math.NaN()
		}
		// wind at the top of the canopy (Albini and Baughman 1979)
		uc := ws / (3.6 * (1 + math.Log(1+28/canopyHt)))
		return unit.Angle(math.Atan(math.Sqrt(3 * math.Pow(uc, 3) / (2 * gravity * 10)))).Deg()
	}, windSpeed, m.CanopyHeight)
	if err != nil {
		return masked.Array{}, fmt.Errorf("Butler flame tilt: %w", err)
	}
	return tilt, nil
}
