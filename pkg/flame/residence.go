package flame

import (
	"fmt"
	"math"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

// FlameResidenceTime estimates flame residence time (Nelson and Adkins 1988)
// from rate of spread (m/min), fuel consumption (kg/m²) and mid-flame wind
// speed (m/s), in seconds or minutes.
func FlameResidenceTime(ros, fuelConsumption, midflameWindSpeed masked.Array, units TimeUnits) (masked.Array, error) {
	if err := units.Validate(); err != nil {
		return masked.Array{}, fmt.Errorf("flame residence time: %w", err)
	}
	inputs := []input{
		{"ros", ros},
		{"fuel_consumption", fuelConsumption},
		{"midflame_ws", midflameWindSpeed},
	}
	if err := requireInputs("flame residence time", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("flame residence time: %w", err)
	}

	resTime, err := masked.Map(func(x []float64) float64 {
		spread, consumed, ws := x[0], x[1], x[2]
		t := 0.39 * math.Pow(consumed, 0.25) * math.Pow(ws, 1.51) / (spread / 60)
		if units == Minutes {
			t /= 60
		}
		return t
	}, ros, fuelConsumption, midflameWindSpeed)
	if err != nil {
		return masked.Array{}, fmt.Errorf("flame residence time: %w", err)
	}
	return resTime.ClampMin(0), nil
}

// FlameDepth is rate of spread (m/min) times residence time (min), in m
// (Fons et al. 1963).
func FlameDepth(ros, residenceTime masked.Array) (masked.Array, error) {
	inputs := []input{
		{"ros", ros},
		{"res_time", residenceTime},
	}
	if err := requireInputs("flame depth", inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("flame depth: %w", err)
	}

	depth, err := masked.Map(func(x []float64) float64 {
		return x[0] * x[1]
	}, ros, residenceTime)
	if err != nil {
		return masked.Array{}, fmt.Errorf("flame depth: %w", err)
	}
	return depth.ClampMin(0), nil
}
