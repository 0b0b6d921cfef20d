package flame

import (
	"fmt"
	"math"
	"strings"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

// FireType classifies a fire for the Nelson flame height model. The integer
// codes are part of the API: per-element fire types travel as arrays of codes.
type FireType int

const (
	// Surface fires burn the surface fuel layer only.
	Surface FireType = 1
	// PassiveCrown fires torch individual trees.
	PassiveCrown FireType = 2
	// ActiveCrown fires spread through the canopy.
	ActiveCrown FireType = 3
)

var fireTypeNames = map[FireType]string{
	Surface:      "surface",
	PassiveCrown: "passive crown",
	ActiveCrown:  "active crown",
}

func (f FireType) String() string {
	if name, ok := fireTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FireType(%d)", int(f))
}

// Validate fails with ErrInvalidValue unless f is a known fire type.
func (f FireType) Validate() error {
	if _, ok := fireTypeNames[f]; !ok {
		return fmt.Errorf("fire type %d must be 1 (surface), 2 (passive crown) or 3 (active crown): %w", int(f), ErrInvalidValue)
	}
	return nil
}

// ParseFireType accepts "surface", "passive crown", "active crown" or the
// codes "1", "2", "3".
func ParseFireType(s string) (FireType, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "surface", "1":
		return Surface, nil
	case "passive crown", "2":
		return PassiveCrown, nil
	case "active crown", "3":
		return ActiveCrown, nil
	default:
		return 0, fmt.Errorf("fire type %q must be one of %q, %q, %q: %w",
			s, "surface", "passive crown", "active crown", ErrInvalidValue)
	}
}

// FireTypes builds a fire-type argument. One type yields a scalar.
func FireTypes(types ...FireType) masked.Array {
	if len(types) == 1 {
		return masked.Scalar(float64(types[0]))
	}
	codes := make([]float64, len(types))
	for i, t := range types {
		codes[i] = float64(t)
	}
	return masked.FromSlice(codes)
}

// validateFireTypes rejects any present element that is not a fire type code.
func validateFireTypes(codes masked.Array) error {
	for i := 0; i < codes.Len(); i++ {
		v, ok := codes.At(i)
		if !ok {
			continue
		}
		if math.IsInf(v, 0) || math.Trunc(v) != v {
			return fmt.Errorf("fire type %g is not an integer code: %w", v, ErrInvalidValue)
		}
		if err := FireType(int(v)).Validate(); err != nil {
			return err
		}
	}
	return nil
}
