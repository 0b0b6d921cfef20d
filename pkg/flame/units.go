package flame

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

const (
	feetPerMeter = 3.28084
	mphPerMPS    = 2.23694
	kphPerMPS    = 3.6

	// tenMeterToTwentyFoot is the ratio of 10-m open wind to 20-ft wind.
	tenMeterToTwentyFoot = 1.15

	gravity = 9.81
)

var rightAngle = unit.Angle(math.Pi / 2)

// UnitSystem selects the units of MidFlameWindSpeed inputs.
type UnitSystem string

const (
	// SI is 10-m wind speed in km/h with canopy heights in metres.
	SI UnitSystem = "SI"
	// IMP is 20-ft wind speed in mi/h with canopy heights in feet.
	IMP UnitSystem = "IMP"
)

// Validate fails with ErrInvalidValue unless u is SI or IMP.
func (u UnitSystem) Validate() error {
	switch u {
	case SI, IMP:
		return nil
	default:
		return fmt.Errorf("units %q must be one of %q, %q: %w", string(u), SI, IMP, ErrInvalidValue)
	}
}

// SlopeUnits is the unit of a slope angle.
type SlopeUnits string

const (
	// Degrees is a slope angle in degrees.
	Degrees SlopeUnits = "degrees"
	// Percent is rise over run times 100.
	Percent SlopeUnits = "percent"
)

// Validate fails with ErrInvalidValue unless u is Degrees or Percent.
func (u SlopeUnits) Validate() error {
	switch u {
	case Degrees, Percent:
		return nil
	default:
		return fmt.Errorf("slope units %q must be one of %q, %q: %w", string(u), Degrees, Percent, ErrInvalidValue)
	}
}

// angle converts a slope value in units u to an angle.
func (u SlopeUnits) angle(slope float64) unit.Angle {
	if u == Percent {
		return unit.Angle(math.Atan(slope / 100))
	}
	return unit.AngleFromDeg(slope)
}

// WindSpeedUnits is the unit of a wind speed.
type WindSpeedUnits string

// Wind speed units: kilometres per hour, metres per second, miles per hour.
const (
	KPH WindSpeedUnits = "kph"
	MPS WindSpeedUnits = "mps"
	MPH WindSpeedUnits = "mph"
)

// Validate fails with ErrInvalidValue unless u is KPH, MPS or MPH.
func (u WindSpeedUnits) Validate() error {
	switch u {
	case KPH, MPS, MPH:
		return nil
	default:
		return fmt.Errorf("wind speed units %q must be one of %q, %q, %q: %w", string(u), KPH, MPS, MPH, ErrInvalidValue)
	}
}

// perMPS is the number of u in one metre per second.
func (u WindSpeedUnits) perMPS() float64 {
	switch u {
	case KPH:
		return kphPerMPS
	case MPH:
		return mphPerMPS
	default:
		return 1
	}
}

// TimeUnits is the unit of a residence time.
type TimeUnits string

// Residence time units.
const (
	Seconds TimeUnits = "sec"
	Minutes TimeUnits = "min"
)

// Validate fails with ErrInvalidValue unless u is Seconds or Minutes.
func (u TimeUnits) Validate() error {
	switch u {
	case Seconds, Minutes:
		return nil
	default:
		return fmt.Errorf("time units %q must be one of %q, %q: %w", string(u), Seconds, Minutes, ErrInvalidValue)
	}
}
