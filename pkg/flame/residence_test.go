package flame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

func TestFlameResidenceTime(t *testing.T) {
	t.Run("seconds", func(t *testing.T) {
		out, err := FlameResidenceTime(masked.Scalar(60), masked.Scalar(2), masked.Scalar(1), Seconds)
		require.NoError(t, err)
		got, ok := out.Float64()
		require.True(t, ok)
		assert.InDelta(t, 0.39*math.Pow(2, 0.25), got, 1e-12)
		assert.InDelta(t, 0.4638, got, 1e-4)
	})

	t.Run("minutes", func(t *testing.T) {
		out, err := FlameResidenceTime(masked.Scalar(60), masked.Scalar(2), masked.Scalar(1), Minutes)
		require.NoError(t, err)
		got, _ := out.Float64()
		assert.InDelta(t, 0.39*math.Pow(2, 0.25)/60, got, 1e-12)
	})

	t.Run("zero spread is masked", func(t *testing.T) {
		out, err := FlameResidenceTime(masked.FromSlice([]float64{0, 30}), masked.Scalar(2), masked.Scalar(1), Seconds)
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false}, out.Mask())
	})

	t.Run("negative spread clamps to zero", func(t *testing.T) {
		out, err := FlameResidenceTime(masked.Scalar(-30), masked.Scalar(2), masked.Scalar(1), Seconds)
		require.NoError(t, err)
		got, ok := out.Float64()
		require.True(t, ok)
		assert.Equal(t, 0.0, got)
	})

	t.Run("invalid units", func(t *testing.T) {
		_, err := FlameResidenceTime(masked.Scalar(60), masked.Scalar(2), masked.Scalar(1), "hours")
		require.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("missing wind", func(t *testing.T) {
		_, err := FlameResidenceTime(masked.Scalar(60), masked.Scalar(2), masked.Array{}, Seconds)
		require.ErrorIs(t, err, ErrMissingArgument)
	})
}

func TestFlameDepth(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		out, err := FlameDepth(masked.Scalar(5), masked.Scalar(2))
		require.NoError(t, err)
		got, ok := out.Float64()
		require.True(t, ok)
		assert.Equal(t, 10.0, got)
	})

	t.Run("arrays with mask", func(t *testing.T) {
		ros, err := masked.New([]float64{5, 5, -1}, []bool{false, true, false})
		require.NoError(t, err)

		out, err := FlameDepth(ros, masked.Scalar(2))
		require.NoError(t, err)
		assert.Equal(t, []bool{false, true, false}, out.Mask())
		assert.Equal(t, 10.0, out.Values()[0])
		assert.Equal(t, 0.0, out.Values()[2])
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := FlameDepth(masked.FromSlice([]float64{1, 2}), masked.FromSlice([]float64{1, 2, 3}))
		require.ErrorIs(t, err, ErrShapeMismatch)
	})
}
