package flame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

func scalarTilt(t *testing.T, model TiltModel) float64 {
	t.Helper()
	out, err := FlameTilt(model)
	require.NoError(t, err)
	v, ok := out.Float64()
	require.True(t, ok)
	return v
}

func TestFlameTilt_Standard(t *testing.T) {
	got := scalarTilt(t, StandardTilt{FlameLength: masked.Scalar(2), FlameHeight: masked.Scalar(1)})
	assert.InDelta(t, 60, got, 1e-9)

	upright := scalarTilt(t, StandardTilt{FlameLength: masked.Scalar(2), FlameHeight: masked.Scalar(2)})
	assert.InDelta(t, 0, upright, 1e-9)
}

func TestFlameTilt_StandardHeightAboveLengthIsMasked(t *testing.T) {
	out, err := FlameTilt(StandardTilt{FlameLength: masked.Scalar(1), FlameHeight: masked.Scalar(2)})
	require.NoError(t, err)
	_, ok := out.Float64()
	assert.False(t, ok)
}

func TestFlameTilt_Finney(t *testing.T) {
	got := scalarTilt(t, FinneyTilt{
		FlameLength: masked.Scalar(2),
		FlameHeight: masked.Scalar(1),
		SlopeAngle:  masked.Scalar(10),
		SlopeUnits:  Degrees,
	})
	assert.InDelta(t, 50.5013, got, 1e-4)
}

func TestFlameTilt_FinneyFlatMatchesStandard(t *testing.T) {
	finney := scalarTilt(t, FinneyTilt{
		FlameLength: masked.Scalar(3),
		FlameHeight: masked.Scalar(2),
		SlopeAngle:  masked.Scalar(0),
		SlopeUnits:  Percent,
	})
	standard := scalarTilt(t, StandardTilt{FlameLength: masked.Scalar(3), FlameHeight: masked.Scalar(2)})
	assert.InDelta(t, standard, finney, 1e-9)
}

func TestFlameTilt_FinneyZeroWhenHeightEqualsLength(t *testing.T) {
	for _, slope := range []float64{0, 15, 40} {
		got := scalarTilt(t, FinneyTilt{
			FlameLength: masked.Scalar(2.5),
			FlameHeight: masked.Scalar(2.5),
			SlopeAngle:  masked.Scalar(slope),
			SlopeUnits:  Degrees,
		})
		assert.Equal(t, 0.0, got)
	}
}

func TestFlameTilt_Butler(t *testing.T) {
	tests := []struct {
		name  string
		ws    float64
		units WindSpeedUnits
	}{
		{"metres per second", 10, MPS},
		{"kilometres per hour", 36, KPH},
		{"miles per hour", 22.3694, MPH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scalarTilt(t, ButlerTilt{
				WindSpeed:      masked.Scalar(tt.ws),
				WindSpeedUnits: tt.units,
				CanopyHeight:   masked.Scalar(20),
			})
			assert.InDelta(t, 12.5653, got, 1e-4)
		})
	}
}

func TestFlameTilt_ButlerArrays(t *testing.T) {
	out, err := FlameTilt(ButlerTilt{
		WindSpeed:      masked.FromSlice([]float64{0, 10, math.NaN(), -5}),
		WindSpeedUnits: MPS,
		CanopyHeight:   masked.Scalar(20),
	})
	require.NoError(t, err)

	values := out.Values()
	assert.Equal(t, 0.0, values[0])
	assert.InDelta(t, 12.5653, values[1], 1e-4)
	// negative wind has no real tilt
	assert.Equal(t, []bool{false, false, true, true}, out.Mask())
}

func TestFlameTilt_Errors(t *testing.T) {
	tests := []struct {
		name    string
		model   TiltModel
		wantErr error
	}{
		{"nil model", nil, ErrInvalidValue},
		{"Standard missing height", StandardTilt{FlameLength: masked.Scalar(2)}, ErrMissingArgument},
		{"Finney missing slope", FinneyTilt{FlameLength: masked.Scalar(2), FlameHeight: masked.Scalar(1), SlopeUnits: Degrees}, ErrMissingArgument},
		{"Finney invalid slope units", FinneyTilt{
			FlameLength: masked.Scalar(2), FlameHeight: masked.Scalar(1), SlopeAngle: masked.Scalar(5), SlopeUnits: "XX",
		}, ErrInvalidValue},
		{"Butler missing canopy", ButlerTilt{WindSpeed: masked.Scalar(10), WindSpeedUnits: MPS}, ErrMissingArgument},
		{"Butler invalid wind units", ButlerTilt{
			WindSpeed: masked.Scalar(10), WindSpeedUnits: "XX", CanopyHeight: masked.Scalar(20),
		}, ErrInvalidValue},
		{"Standard shape mismatch", StandardTilt{
			FlameLength: masked.FromSlice([]float64{1, 2}), FlameHeight: masked.FromSlice([]float64{1}),
		}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FlameTilt(tt.model)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFlameTilt_ButlerZeroCanopyHeightMasked(t *testing.T) {
	out, err := FlameTilt(ButlerTilt{
		WindSpeed:      masked.Scalar(10),
		WindSpeedUnits: MPS,
		CanopyHeight:   masked.FromSlice([]float64{0, 20}),
	})
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, out.Mask())
	assert.InDelta(t, 12.5653, out.Values()[1], 1e-4)
}

func TestFlameTilt_PointerModels(t *testing.T) {
	standard := StandardTilt{FlameLength: masked.Scalar(2), FlameHeight: masked.Scalar(1)}
	finney := FinneyTilt{
		FlameLength: masked.Scalar(2),
		FlameHeight: masked.Scalar(1),
		SlopeAngle:  masked.Scalar(10),
		SlopeUnits:  Degrees,
	}
	butler := ButlerTilt{WindSpeed: masked.Scalar(10), WindSpeedUnits: MPS, CanopyHeight: masked.Scalar(20)}

	tests := []struct {
		name  string
		value TiltModel
		ptr   TiltModel
	}{
		{"Standard", standard, &standard},
		{"Finney", finney, &finney},
		{"Butler", butler, &butler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, scalarTilt(t, tt.value), scalarTilt(t, tt.ptr))
		})
	}
}

func TestFlameTilt_NilPointerModels(t *testing.T) {
	tests := []struct {
		name  string
		model TiltModel
	}{
		{"Standard", (*StandardTilt)(nil)},
		{"Finney", (*FinneyTilt)(nil)},
		{"Butler", (*ButlerTilt)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FlameTilt(tt.model)
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
