package flame

import (
	"fmt"
	"math"
	"strings"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

// LengthModel names a published flame length correlation.
type LengthModel string

// No wind, flat ground.
const (
	FonsNoWind   LengthModel = "Fons_NOWIND"    // Fons et al. (1963), cribs, lab
	ThomasNoWind LengthModel = "Thomas_NOWIND"  // Thomas (1963), cribs, lab + field
	YuanaNoWind  LengthModel = "Yuana_NOWIND"   // Yuana and Cox (1996), gas slot burner, lab
	BarbonNoWind LengthModel = "Barbon_iNOWIND" // pine needles, lab + field
)

// Backing fires.
const (
	NelsonBack    LengthModel = "Nelson_BACK"    // Nelson (1980), needles
	FernandesBack LengthModel = "Fernandes_BACK" // Fernandes et al. (2009), pine needles
	ClarkBack     LengthModel = "Clark_BACK"     // Clark (1983), grass
	VegaBack      LengthModel = "Vega_BACK"      // Vega et al. (1998), shrubs
)

// Heading fires.
const (
	ByramHead          LengthModel = "Byram_HEAD"          // Byram (1959), needles
	Anderson1Head      LengthModel = "Anderson1_HEAD"      // Anderson et al. (1966), lodgepole pine slash
	Anderson2Head      LengthModel = "Anderson2_HEAD"      // Anderson et al., Douglas-fir slash
	NewmanHead         LengthModel = "Newman_HEAD"         // Newman (1974)
	SneewujagtHead     LengthModel = "Sneewujagt_HEAD"     // Sneeuwjagt and Frandsen (1977), needles
	Nelson1Head        LengthModel = "Nelson1_HEAD"        // Nelson (1980), needles
	ClarkHead          LengthModel = "Clark_HEAD"          // Clark (1983), grass
	Nelson2Head        LengthModel = "Nelson2_HEAD"        // Nelson and Adkins (1986), needles/palmetto
	VanWilgenHead      LengthModel = "VanWilgen_HEAD"      // Van Wilgen (1986), grass
	BurrowsHead        LengthModel = "Burrows_HEAD"        // Burrows (1994), needles
	MarsdenSmedleyHead LengthModel = "MarsdenSmedley_HEAD" // Marsden-Smedley and Catchpole (1995), button grass
	Weise1Head         LengthModel = "Weise1_HEAD"         // Weise and Biging (1996), excelsior and birch sticks
	CatchpoleHead      LengthModel = "Catchpole_HEAD"      // Catchpole et al. (1998), heath
	Fernandes1Head     LengthModel = "Fernandes1_HEAD"     // Fernandes et al. (2000), shrubs
	ButlerHead         LengthModel = "Butler_HEAD"         // Butler et al. (2004), crown fire, add to stand height
	FernandesHead      LengthModel = "Fernandes_HEAD"      // Fernandes et al. (2009), needles
	Nelson3Head        LengthModel = "Nelson3_HEAD"        // Nelson et al. (2012), southern fuels, lab
	Nelson4Head        LengthModel = "Nelson4_HEAD"        // Nelson et al. (2012), southern fuels, field
	Weise2Head         LengthModel = "Weise2_HEAD"         // Weise et al. (2016), chaparral
	DaviesHead         LengthModel = "Davies_HEAD"         // Davies et al. (2019), heathlands
	FinneyHead         LengthModel = "Finney_HEAD"         // Finney and Grumstrup (2023), gas slot burner, needs flame depth
)

// Params are the coefficients of a flame length correlation:
// L = A·I^B, or L = A·I^B / D^C when the model has a flame depth term.
type Params struct {
	A, B, C float64
	arity   int
}

func params2(a, b float64) Params    { return Params{A: a, B: b, arity: 2} }
func params3(a, b, c float64) Params { return Params{A: a, B: b, C: c, arity: 3} }

// Tuple returns the coefficients as published: (a, b) or (a, b, c).
func (p Params) Tuple() []float64 {
	if p.arity == 3 {
		return []float64{p.A, p.B, p.C}
	}
	return []float64{p.A, p.B}
}

// HasDepthTerm reports whether the correlation divides by flame depth.
func (p Params) HasDepthTerm() bool { return p.arity == 3 }

// lengthModels lists the catalog in publication grouping order.
var lengthModels = []LengthModel{
	FonsNoWind, ThomasNoWind, YuanaNoWind, BarbonNoWind,
	NelsonBack, FernandesBack, ClarkBack, VegaBack,
	ByramHead, Anderson1Head, Anderson2Head, NewmanHead, SneewujagtHead,
	Nelson1Head, ClarkHead, Nelson2Head, VanWilgenHead, BurrowsHead,
	MarsdenSmedleyHead, Weise1Head, CatchpoleHead, Fernandes1Head,
	ButlerHead, FernandesHead, Nelson3Head, Nelson4Head, Weise2Head,
	DaviesHead, FinneyHead,
}

var lengthCatalog = map[LengthModel]Params{
	FonsNoWind:   params2(0.024018, 2.0/3),
	ThomasNoWind: params2(0.026700, 2.0/3),
	YuanaNoWind:  params2(0.034000, 2.0/3),
	BarbonNoWind: params2(0.062000, 0.5336),

	NelsonBack:    params2(0.027973, 2.0/3),
	FernandesBack: params2(0.029000, 0.7240),
	ClarkBack:     params2(0.001600, 1.7450),
	VegaBack:      params2(0.087000, 0.4930),

	ByramHead:          params2(0.0775, 0.4600),
	Anderson1Head:      params2(0.013876, 0.6510),
	Anderson2Head:      params2(0.008800, 0.6700),
	NewmanHead:         params2(0.05770, 0.5000),
	SneewujagtHead:     params2(0.037680, 0.5000),
	Nelson1Head:        params2(0.044230, 0.5000),
	ClarkHead:          params2(0.000722, 0.9934),
	Nelson2Head:        params2(0.047500, 0.4930),
	VanWilgenHead:      params2(0.046000, 0.4128),
	BurrowsHead:        params2(0.040480, 0.5740),
	MarsdenSmedleyHead: params2(0.148, 0.403),
	Weise1Head:         params2(0.016000, 0.7000),
	CatchpoleHead:      params2(0.032500, 0.5600),
	Fernandes1Head:     params2(0.051600, 0.4530),
	ButlerHead:         params2(0.017500, 2.0/3),
	FernandesHead:      params2(0.045000, 0.5430),
	Nelson3Head:        params2(0.014200, 2.0/3),
	Nelson4Head:        params2(0.015500, 2.0/3),
	Weise2Head:         params2(0.2000000, 0.3400),
	DaviesHead:         params2(0.220000, 0.2900),
	FinneyHead:         params3(0.01051, 0.774, 0.161),
}

// LengthModels returns every catalogued model.
func LengthModels() []LengthModel {
	out := make([]LengthModel, len(lengthModels))
	copy(out, lengthModels)
	return out
}

// Validate fails with ErrInvalidValue, listing the valid keys, unless m is
// catalogued.
func (m LengthModel) Validate() error {
	if _, ok := lengthCatalog[m]; ok {
		return nil
	}
	keys := make([]string, len(lengthModels))
	for i, k := range lengthModels {
		keys[i] = string(k)
	}
	return fmt.Errorf("flame length model %q must be one of: %s: %w", string(m), strings.Join(keys, ", "), ErrInvalidValue)
}

// ParseLengthModel returns the model with the given catalog key.
func ParseLengthModel(s string) (LengthModel, error) {
	m := LengthModel(strings.TrimSpace(s))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// LengthParams returns the coefficients of model without computing a length.
func LengthParams(model LengthModel) (Params, error) {
	if err := model.Validate(); err != nil {
		return Params{}, err
	}
	return lengthCatalog[model], nil
}

// FlameLength estimates flame length (m) from fire intensity (kW/m).
// flameDepth (m) is used only by FinneyHead, which requires it; pass the
// zero Array otherwise.
func FlameLength(model LengthModel, fireIntensity, flameDepth masked.Array) (masked.Array, error) {
	p, err := LengthParams(model)
	if err != nil {
		return masked.Array{}, err
	}

	inputs := []input{{"fire_intensity", fireIntensity}}
	if p.HasDepthTerm() {
		inputs = append(inputs, input{"flame_depth", flameDepth})
	}
	if err := requireInputs(string(model), inputs...); err != nil {
		return masked.Array{}, err
	}
	if err := checkShapes(inputs...); err != nil {
		return masked.Array{}, fmt.Errorf("flame length: %w", err)
	}

	var fl masked.Array
	if p.HasDepthTerm() {
		fl, err = masked.Map(func(x []float64) float64 {
			return p.A * math.Pow(x[0], p.B) / math.Pow(x[1], p.C)
		}, fireIntensity, flameDepth)
	} else {
		fl, err = masked.Map(func(x []float64) float64 {
			return p.A * math.Pow(x[0], p.B)
		}, fireIntensity)
	}
	if err != nil {
		return masked.Array{}, fmt.Errorf("flame length: %w", err)
	}
	return fl.ClampMin(0), nil
}
