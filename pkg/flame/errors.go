package flame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

var (
	// ErrInvalidValue marks an argument outside its accepted domain: an
	// unknown model, a units value outside its enumeration, a bad fire type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMissingArgument marks an absent argument the selected model needs.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrShapeMismatch marks array arguments of different lengths.
	ErrShapeMismatch = masked.ErrShapeMismatch
)

// input names an argument for precondition errors.
type input struct {
	name  string
	value masked.Array
}

// requireInputs fails with ErrMissingArgument naming every absent input.
func requireInputs(model string, inputs ...input) error {
	var missing []string
	for _, in := range inputs {
		if in.value.IsZero() {
			missing = append(missing, in.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%s requires %s: %w", model, strings.Join(missing, ", "), ErrMissingArgument)
}

// checkShapes fails with ErrShapeMismatch unless the inputs broadcast.
func checkShapes(inputs ...input) error {
	arrays := make([]masked.Array, len(inputs))
	for i, in := range inputs {
		arrays[i] = in.value
	}
	if _, _, err := masked.Broadcast(arrays...); err != nil {
		return err
	}
	return nil
}
