package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		Description string
		Command     Command
		Err         error
	}{
		{"move", MoveCommand(Absolute, 1, 2), nil},
		{"close", Close(), nil},
		{"arc", EllipticalArcCommand(Relative, 5, 5, 30, 1, 0, 10, 10), nil},
		{"short line", LineCommand(Absolute, 1), ErrArity},
		{"long close", NewCommand(ClosePath, Absolute, 1), ErrArity},
		{"arc flag", EllipticalArcCommand(Absolute, 5, 5, 0, 2, 0, 10, 10), ErrArcFlag},
		{"sweep flag", EllipticalArcCommand(Absolute, 5, 5, 0, 0, 0.5, 10, 10), ErrArcFlag},
		{"nan", LineCommand(Absolute, math.NaN(), 1), ErrNotFinite},
		{"inf", HorizontalLineCommand(Relative, math.Inf(1)), ErrNotFinite},
	}

	for _, test := range tests {
		t.Run(test.Description, func(t *testing.T) {
			err := test.Command.Validate()
			if test.Err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.Err)
		})
	}
}

func TestDataValidate(t *testing.T) {
	require.NoError(t, NewData().MoveTo(0, 0).LineBy(1, 1).Close().Validate())

	err := NewData().MoveTo(0, 0).CubicCurveTo(1, 2, 3).Validate()
	require.ErrorIs(t, err, ErrArity)
	assert.Contains(t, err.Error(), "command 1")
}

func TestValidateDoesNotGuardSerialization(t *testing.T) {
	data := NewData().EllipticalArcTo(1, 2, 3).LineTo(1, 2, 3)

	assert.Error(t, data.Validate())
	assert.Equal(t, "A1,2,3 L1,2,3", data.Value().String())
}
