package flame

import (
	"fmt"
	"math"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

// minCanopyHeightFt replaces a zero canopy height in the log term (0.5 m).
const minCanopyHeightFt = 0.5 * feetPerMeter

// MidFlameWindSpeed reduces open wind speed to the wind speed at flame
// mid-height (m/s), accounting for canopy sheltering.
//
// With SI units windSpeed is the 10-m wind in km/h and heights are in
// metres; with IMP units windSpeed is the 20-ft wind in mi/h and heights are
// in feet. canopyCover is a percentage.
func MidFlameWindSpeed(windSpeed, canopyCover, canopyHeight, canopyBaseHeight masked.Array, units UnitSystem) (masked.Array, error) {
	if err := units.Validate(); err != nil {
		return masked.Array{}, fmt.Errorf("mid-flame wind speed: %w", err)
	}
	inputs := []input{
		{"wind_speed", windSpeed},
		{"canopy_cover", canopyCover},
		{"canopy_ht", canopyHeight},
		{"canopy_baseht", canopyBaseHeight},
	}
	if err := requireInputs("mid-flame wind speed", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("mid-flame wind speed: %w", err)
	}

	switch units {
	case SI:
		windSpeed = windSpeed.Scale(1 / (kphPerMPS * tenMeterToTwentyFoot))
		canopyHeight = canopyHeight.Scale(feetPerMeter)
		canopyBaseHeight = canopyBaseHeight.Scale(feetPerMeter)
	case IMP:
		windSpeed = windSpeed.Scale(1 / mphPerMPS)
	}

	ws, err := masked.Map(func(x []float64) float64 {
		return midFlameWindSpeed(x[0], x[1], x[2], x[3])
	}, windSpeed, canopyCover, canopyHeight, canopyBaseHeight)
	if err != nil {
		return masked.Array{}, fmt.Errorf("mid-flame wind speed: %w", err)
	}
	return ws.ClampMin(0), nil
}

// midFlameWindSpeed applies the Albini and Baughman (1979) adjustment to a
// 20-ft wind in m/s with canopy heights in feet.
func midFlameWindSpeed(windSpeed, canopyCover, heightFt, baseHeightFt float64) float64 {
	// No canopy means no crown to shelter the flame.
	crownRatio := 0.0
	if heightFt != 0 {
		crownRatio = (heightFt - baseHeightFt) / heightFt
	}
	f := crownRatio * canopyCover / 300

	if heightFt == 0 {
		heightFt = minCanopyHeightFt
	}
	logTerm := math.Log((20 + 0.36*heightFt) / (0.13 * heightFt))

	if f <= 5 {
		return windSpeed * 1.83 / logTerm
	}
	return windSpeed * 0.555 / (math.Sqrt(f*heightFt) * logTerm)
}
