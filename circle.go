package svg

import (
	"fmt"

	"github.com/vasalvit/svg/path"
)

// Circle is an SVG circle element
type Circle struct {
	shape
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

// Data returns the outline of the circle as two half arcs starting from
// its rightmost point.
func (c *Circle) Data() (*path.Data, error) {
	var v [3]float64
	for i, s := range []string{c.Cx, c.Cy, c.Radius} {
		n, err := parseLength(s)
		if err != nil {
			return nil, fmt.Errorf("circle %q: %w", c.ID, err)
		}
		v[i] = n
	}

	cx, cy, r := v[0], v[1], v[2]
	if r <= 0 {
		return path.NewData(), nil
	}

	return path.NewData().
		MoveTo(cx+r, cy).
		EllipticalArcTo(r, r, 0, 0, 1, cx-r, cy).
		EllipticalArcTo(r, r, 0, 0, 1, cx+r, cy).
		Close(), nil
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (c *Circle) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	data, err := c.Data()
	if err != nil {
		return failed(err)
	}

	return c.toPath(data).ParseDrawingInstructions()
}
