package path

import (
	"fmt"
	"math"
)

// Validate checks the parameter count, that every parameter is finite and
// that arc flags are 0 or 1. Append and Value never call it.
func (c Command) Validate() error {
	if want := c.kind.Arity(); len(c.parameters) != want {
		return fmt.Errorf("%s command takes %d parameters, got %d: %w", c.kind, want, len(c.parameters), ErrArity)
	}

	for i, v := range c.parameters {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s command parameter %d is %v: %w", c.kind, i, v, ErrNotFinite)
		}
	}

	if c.kind == EllipticalArc {
		for _, i := range []int{3, 4} {
			if f := c.parameters[i]; f != 0 && f != 1 {
				return fmt.Errorf("%s command parameter %d is %v: %w", c.kind, i, f, ErrArcFlag)
			}
		}
	}

	return nil
}

// Validate checks every command and reports the first failure.
func (d *Data) Validate() error {
	for i, c := range d.commands {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}

	return nil
}
