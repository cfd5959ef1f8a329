package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLetterCase(t *testing.T) {
	for k := Move; k < ClosePath; k++ {
		abs := NewCommand(k, Absolute, 1).String()
		rel := NewCommand(k, Relative, 1).String()

		assert.Equal(t, kinds[k].letter, abs[0], "%s absolute", k)
		assert.Equal(t, kinds[k].letter+('a'-'A'), rel[0], "%s relative", k)
	}

	assert.Equal(t, "z", Close().String())
	assert.Equal(t, "Z", NewCommand(ClosePath, Absolute).String())
}

func TestCloseWith(t *testing.T) {
	upper := CloseWith(Absolute)
	assert.Equal(t, "Z", upper.String())
	assert.Equal(t, ClosePath, upper.Kind())
	assert.Empty(t, upper.Parameters())
	assert.NoError(t, upper.Validate())

	assert.True(t, CloseWith(Relative).Equal(Close()))

	data := FromCommands([]Command{MoveCommand(Absolute, 1, 1), LineCommand(Relative, 2, 0), CloseWith(Absolute)})
	assert.Equal(t, "M1,1 l2,0 Z", data.Value().String())
}

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		In  float64
		Out string
	}{
		{2, "2"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{100, "100"},
		{1e21, "1000000000000000000000"},
		{math.Copysign(0, -1), "0"},
		{0.000001, "0.000001"},
	}

	for _, test := range tests {
		assert.Equal(t, test.Out, Parameters{test.In}.String(), "%v", test.In)
	}
}

func TestParamsWidening(t *testing.T) {
	assert.Equal(t, Parameters{1, 2, 3}, Params(1, 2, 3))
	assert.Equal(t, Parameters{1.5, -2}, Params(float32(1.5), float32(-2)))
	assert.Equal(t, Parameters{7}, Params(uint8(7)))
	assert.Equal(t, "1,2.5,3", Params(1, 2.5, 3).String())
	assert.Empty(t, Params[int]())
}

func TestCommandIsImmutable(t *testing.T) {
	params := []float64{1, 2}
	c := LineCommand(Absolute, params...)

	params[0] = 100
	got := c.Parameters()
	got[1] = 200

	assert.Equal(t, "L1,2", c.String())
}

func TestLookupLetter(t *testing.T) {
	for k := Move; k <= ClosePath; k++ {
		for _, pos := range []Position{Absolute, Relative} {
			kind, position, ok := LookupLetter(k.Letter(pos))
			require.True(t, ok)
			assert.Equal(t, k, kind)
			assert.Equal(t, pos, position)
		}
	}

	_, _, ok := LookupLetter('x')
	assert.False(t, ok)
	_, _, ok = LookupLetter('1')
	assert.False(t, ok)
}

func TestKindArity(t *testing.T) {
	assert.Equal(t, 2, Move.Arity())
	assert.Equal(t, 1, HorizontalLine.Arity())
	assert.Equal(t, 6, CubicCurve.Arity())
	assert.Equal(t, 7, EllipticalArc.Arity())
	assert.Equal(t, 0, ClosePath.Arity())
	assert.Equal(t, -1, Kind(42).Arity())
}
