package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransform(t *testing.T) {
	tests := []struct {
		Description string
		Transform   string
		Point       Tuple
		Expected    Tuple
	}{
		{"translate", "translate(10,20)", Tuple{1, 1}, Tuple{11, 21}},
		{"translate x only", "translate(10)", Tuple{1, 1}, Tuple{11, 1}},
		{"scale", "scale(2,3)", Tuple{1, 1}, Tuple{2, 3}},
		{"uniform scale", "scale(4)", Tuple{1, 1}, Tuple{4, 4}},
		{"rotate", "rotate(90)", Tuple{1, 0}, Tuple{0, 1}},
		{"rotate about a point", "rotate(90,10,0)", Tuple{1, 0}, Tuple{10, -9}},
		{"skewX", "skewX(45)", Tuple{0, 1}, Tuple{1, 1}},
		{"skewY", "skewY(45)", Tuple{1, 0}, Tuple{1, 1}},
		{"matrix", "matrix(1,0,0,1,5,6)", Tuple{1, 0}, Tuple{6, 6}},
		{"matrix with rotation", "matrix(0 1 -1 0 0 0)", Tuple{1, 0}, Tuple{0, 1}},
		{"functions apply in order", "translate(10) scale(2)", Tuple{1, 1}, Tuple{12, 2}},
		{"packed arguments", "translate(10-5)", Tuple{0, 0}, Tuple{10, -5}},
		{"unsupported", "perspective(3)", Tuple{1, 1}, Tuple{1, 1}},
		{"empty", "", Tuple{1, 1}, Tuple{1, 1}},
	}

	for _, test := range tests {
		t.Run(test.Description, func(t *testing.T) {
			tr, err := parseTransform(test.Transform)
			require.NoError(t, err)

			x, y := tr.Apply(test.Point[0], test.Point[1])
			assert.InDelta(t, test.Expected[0], x, 1e-9)
			assert.InDelta(t, test.Expected[1], y, 1e-9)
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, s := range []string{"translate(1,2,3)", "scale(a)", "rotate", "rotate(1,2)", "skewX(1 # 2)"} {
		_, err := parseTransform(s)
		assert.Error(t, err, s)
	}
}

func TestSplitStyle(t *testing.T) {
	assert.Equal(t, map[string]string{
		"fill":         "none",
		"stroke-width": "2",
	}, splitStyle("fill: none; stroke-width:2;broken;"))
}
