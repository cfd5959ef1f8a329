package path

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAppend(t *testing.T) {
	data := NewData()
	data.Append(LineCommand(Absolute, Params(1, 2)...))
	data.Append(Close())

	assert.Equal(t, "L1,2 z", data.Value().String())
}

func TestDataValue(t *testing.T) {
	tests := []struct {
		Description string
		Data        *Data
		Expected    string
	}{
		{
			"line then close",
			NewData().LineTo(1, 2).Close(),
			"L1,2 z",
		},
		{
			"relative subpath",
			NewData().MoveBy(5, 5).LineBy(10, 0).Close(),
			"m5,5 l10,0 z",
		},
		{
			"horizontal and vertical lines",
			NewData().HorizontalLineTo(10).VerticalLineBy(-3),
			"H10 v-3",
		},
		{
			"empty",
			NewData(),
			"",
		},
		{
			"elliptical arc",
			NewData().EllipticalArcTo(5, 5, 0, 1, 0, 10, 10),
			"A5,5,0,1,0,10,10",
		},
		{
			"cubic curve",
			NewData().LineTo(1, 2).CubicCurveBy(1, 2, 3, 4, 5, 6).Close(),
			"L1,2 c1,2,3,4,5,6 z",
		},
		{
			"fractions",
			NewData().MoveTo(2.5, 0.125).LineTo(-0.5, 100.75),
			"M2.5,0.125 L-0.5,100.75",
		},
		{
			"every command",
			NewData().
				MoveTo(0, 0).
				LineTo(1, 1).
				HorizontalLineTo(2).
				VerticalLineTo(3).
				QuadraticCurveTo(1, 2, 3, 4).
				SmoothQuadraticCurveTo(5, 6).
				CubicCurveTo(1, 2, 3, 4, 5, 6).
				SmoothCubicCurveTo(7, 8, 9, 10).
				EllipticalArcTo(1, 1, 45, 0, 1, 2, 2).
				MoveBy(0, 0).
				LineBy(1, 1).
				HorizontalLineBy(2).
				VerticalLineBy(3).
				QuadraticCurveBy(1, 2, 3, 4).
				SmoothQuadraticCurveBy(5, 6).
				CubicCurveBy(1, 2, 3, 4, 5, 6).
				SmoothCubicCurveBy(7, 8, 9, 10).
				EllipticalArcBy(1, 1, 45, 0, 1, 2, 2).
				Close(),
			"M0,0 L1,1 H2 V3 Q1,2,3,4 T5,6 C1,2,3,4,5,6 S7,8,9,10 A1,1,45,0,1,2,2 " +
				"m0,0 l1,1 h2 v3 q1,2,3,4 t5,6 c1,2,3,4,5,6 s7,8,9,10 a1,1,45,0,1,2,2 z",
		},
	}

	for _, test := range tests {
		t.Run(test.Description, func(t *testing.T) {
			assert.Equal(t, test.Expected, test.Data.Value().String())
		})
	}
}

func TestDataAppendGrowsByOne(t *testing.T) {
	data := NewData().MoveTo(0, 0)
	c := QuadraticCurveCommand(Relative, 1, 2, 3, 4)

	before := data.Len()
	data.Append(c)

	commands := data.Commands()
	require.Len(t, commands, before+1)
	assert.True(t, commands[len(commands)-1].Equal(c))
}

func TestDataAddMatchesAppend(t *testing.T) {
	c1 := MoveCommand(Absolute, 1, 1)
	c2 := SmoothCubicCurveCommand(Relative, 1, 2, 3, 4)

	chained := NewData().Add(c1).Add(c2)

	appended := NewData()
	appended.Append(c1)
	appended.Append(c2)

	assert.Equal(t, appended.Commands(), chained.Commands())
	assert.Equal(t, appended.Value(), chained.Value())
}

func TestDataPreservesOrder(t *testing.T) {
	commands := []Command{
		MoveCommand(Absolute, 0, 0),
		LineCommand(Relative, 1, 0),
		VerticalLineCommand(Absolute, 4),
		Close(),
	}
	permuted := []Command{commands[2], commands[0], commands[3], commands[1]}

	tokens := strings.Split(FromCommands(append([]Command(nil), commands...)).Value().String(), " ")
	permutedTokens := strings.Split(FromCommands(permuted).Value().String(), " ")

	require.Len(t, tokens, 4)
	assert.Equal(t, []string{tokens[2], tokens[0], tokens[3], tokens[1]}, permutedTokens)
}

func TestDataCommandsIsStable(t *testing.T) {
	data := NewData().MoveTo(1, 2).LineBy(3, 4)

	first := data.Commands()
	first[0] = Close()

	assert.Equal(t, data.Commands(), data.Commands())
	assert.Equal(t, Move, data.Commands()[0].Kind())
}

func TestDataTake(t *testing.T) {
	commands := []Command{MoveCommand(Absolute, 1, 2), Close()}
	data := FromCommands(commands)

	taken := data.Take()
	assert.Equal(t, commands, taken)
	assert.Zero(t, data.Len())
	assert.Equal(t, "", data.Value().String())
}

func TestDataValueDrains(t *testing.T) {
	data := NewData().MoveTo(1, 2).Close()

	assert.Equal(t, "M1,2 z", data.Value().String())
	assert.Zero(t, data.Len())
	assert.Empty(t, data.Commands())
}
