// Package flame computes secondary flame geometry metrics from fire-behavior
// inputs using published empirical correlations.
//
// # Components
//
// Six independent functions, none of which calls another:
//
//	MidFlameWindSpeed   open wind → wind at flame mid-height (m/s)
//	FlameLength         fire intensity → flame length (m), 29 catalogued models
//	FlameHeight         flame length → flame height (m), Nelson or Finney model
//	FlameTilt           flame tilt from vertical (degrees), Standard, Finney or Butler model
//	FlameResidenceTime  rate of spread, consumption and wind → residence time
//	FlameDepth          rate of spread × residence time → flame depth (m)
//
// Callers compose them, e.g. the output of MidFlameWindSpeed feeds
// NelsonHeight.MidflameWindSpeed and the ButlerTilt model.
//
// # Inputs
//
// Every numeric argument is a [masked.Array]. Scalars built with
// [masked.Scalar] broadcast against arrays, and a call whose inputs are all
// scalars returns a scalar. NaN inputs are missing values. A missing input
// element, or an element whose formula leaves the real domain (log of a
// non-positive number, acos outside [-1, 1], division by zero), yields a
// missing output element instead of an error.
//
// Model-specific inputs travel in one struct per model ([NelsonHeight],
// [FinneyHeight], [StandardTilt], [FinneyTilt], [ButlerTilt]) so each model
// receives exactly the arguments it uses.
//
// # Units
//
//	UnitSystem      SI (10-m wind in km/h, heights in m) | IMP (20-ft wind in mi/h, heights in ft)
//	SlopeUnits      degrees | percent
//	WindSpeedUnits  kph | mps | mph
//	TimeUnits       sec | min
//
// Rate of spread is m/min, fire intensity kW/m, fuel consumption kg/m²,
// mid-flame wind speed m/s.
//
// # Errors
//
// All validation runs before any arithmetic. Out-of-enumeration units,
// unknown models and bad fire-type codes wrap [ErrInvalidValue]. An absent
// argument that the selected model needs wraps [ErrMissingArgument]. Arrays of
// different lengths wrap [ErrShapeMismatch].
//
// Flame dimensions and times cannot be negative; negative results clamp to 0.
//
// # Sources
//
// Mid-flame wind: Albini and Baughman (1979), Andrews (2012), 10-m to 20-ft
// ratio from Lawson and Armitage (2008). Flame length: compilation in Finney
// and Grumstrup (2023). Flame height: Nelson and Adkins (1986), Finney and
// Martin (1992). Flame tilt: Finney and Martin (1992), Butler et al. (2004).
// Residence time: Nelson and Adkins (1988). Flame depth: Fons et al. (1963).
package flame
