// Package masked provides a float64 vector with a parallel missing-value
// mask. Scalars are length-one arrays flagged as scalar, so callers write a
// single element-wise code path and unwrap scalar results with Float64.
package masked

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch is returned when non-scalar inputs to one operation
// differ in length, or a mask does not match its values.
var ErrShapeMismatch = errors.New("shape mismatch")

// Array is an immutable vector of float64 values where mask[i] reports the
// i-th value as missing. The zero Array means "not supplied".
type Array struct {
	values []float64
	mask   []bool
	scalar bool
}

// Scalar wraps a single value. NaN is stored as a missing value.
func Scalar(v float64) Array {
	return Array{
		values: []float64{v},
		mask:   []bool{math.IsNaN(v)},
		scalar: true,
	}
}

// FromSlice copies vs into a new Array, masking NaN entries.
func FromSlice(vs []float64) Array {
	values := make([]float64, len(vs))
	copy(values, vs)
	mask := make([]bool, len(vs))
	for i, v := range values {
		mask[i] = math.IsNaN(v)
	}
	return Array{values: values, mask: mask}
}

// New copies values and mask into a new Array. NaN values are masked even
// when mask leaves them unmasked.
func New(values []float64, mask []bool) (Array, error) {
	if len(mask) != len(values) {
		return Array{}, fmt.Errorf("mask length %d, values length %d: %w", len(mask), len(values), ErrShapeMismatch)
	}
	a := FromSlice(values)
	for i, m := range mask {
		a.mask[i] = a.mask[i] || m
	}
	return a, nil
}

// IsZero reports whether a is the zero Array (an absent argument).
func (a Array) IsZero() bool {
	return a.values == nil && !a.scalar
}

// IsScalar reports whether a was built by Scalar or derived only from scalars.
func (a Array) IsScalar() bool { return a.scalar }

// Len returns the number of elements.
func (a Array) Len() int { return len(a.values) }

// At returns the i-th value and whether it is present. Scalars answer for
// every index.
func (a Array) At(i int) (float64, bool) {
	if a.scalar {
		i = 0
	}
	if a.mask[i] {
		return math.NaN(), false
	}
	return a.values[i], true
}

// Float64 returns the first element and whether it is present. It is the
// unwrapping step for scalar results.
func (a Array) Float64() (float64, bool) {
	if len(a.values) == 0 {
		return math.NaN(), false
	}
	return a.At(0)
}

// Values returns a copy of the values with NaN in masked slots.
func (a Array) Values() []float64 {
	out := make([]float64, len(a.values))
	for i, v := range a.values {
		if a.mask[i] {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// Mask returns a copy of the missing-value mask.
func (a Array) Mask() []bool {
	out := make([]bool, len(a.mask))
	copy(out, a.mask)
	return out
}

// MaskedCount returns the number of missing elements.
func (a Array) MaskedCount() int {
	n := 0
	for _, m := range a.mask {
		if m {
			n++
		}
	}
	return n
}

// Scale returns a copy of a with every value multiplied by c.
func (a Array) Scale(c float64) Array {
	out := a.clone()
	floats.Scale(c, out.values)
	return out
}

// ClampMin returns a copy of a with present values below lo raised to lo.
func (a Array) ClampMin(lo float64) Array {
	out := a.clone()
	for i, v := range out.values {
		if !out.mask[i] && v < lo {
			out.values[i] = lo
		}
	}
	return out
}

func (a Array) clone() Array {
	out := Array{
		values: make([]float64, len(a.values)),
		mask:   make([]bool, len(a.mask)),
		scalar: a.scalar,
	}
	copy(out.values, a.values)
	copy(out.mask, a.mask)
	return out
}

// Broadcast returns the common length of inputs and whether all of them are
// scalars. Scalars broadcast to any length.
func Broadcast(inputs ...Array) (int, bool, error) {
	n := -1
	scalar := true
	for _, in := range inputs {
		if in.scalar {
			continue
		}
		scalar = false
		if n == -1 {
			n = in.Len()
			continue
		}
		if in.Len() != n {
			return 0, false, fmt.Errorf("lengths %d and %d: %w", n, in.Len(), ErrShapeMismatch)
		}
	}
	if scalar {
		return 1, true, nil
	}
	return n, false, nil
}

// Map evaluates fn element-wise over the broadcast inputs. fn receives the
// i-th value of every input, in order. An element is masked in the result
// when any input element is masked or fn returns a non-finite value.
func Map(fn func(x []float64) float64, inputs ...Array) (Array, error) {
	n, scalar, err := Broadcast(inputs...)
	if err != nil {
		return Array{}, err
	}

	out := Array{
		values: make([]float64, n),
		mask:   make([]bool, n),
		scalar: scalar,
	}
	x := make([]float64, len(inputs))

	for i := 0; i < n; i++ {
		missing := false
		for j, in := range inputs {
			v, ok := in.At(i)
			if !ok {
				missing = true
				break
			}
			x[j] = v
		}
		if missing {
			out.values[i] = math.NaN()
			out.mask[i] = true
			continue
		}

		v := fn(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.values[i] = math.NaN()
			out.mask[i] = true
			continue
		}
		out.values[i] = v
	}
	return out, nil
}
