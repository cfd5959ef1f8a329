package svg

import (
	"fmt"

	"github.com/vasalvit/svg/path"
)

// Rect is an SVG rect element
type Rect struct {
	shape
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

// Data returns the outline of the rectangle, clockwise from its top left
// corner.
func (r *Rect) Data() (*path.Data, error) {
	var v [4]float64
	for i, s := range []string{r.X, r.Y, r.Width, r.Height} {
		n, err := parseLength(s)
		if err != nil {
			return nil, fmt.Errorf("rect %q: %w", r.ID, err)
		}
		v[i] = n
	}

	x, y, w, h := v[0], v[1], v[2], v[3]
	if w <= 0 || h <= 0 {
		return path.NewData(), nil
	}

	return path.NewData().
		MoveTo(x, y).
		HorizontalLineBy(w).
		VerticalLineBy(h).
		HorizontalLineTo(x).
		Close(), nil
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (r *Rect) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	data, err := r.Data()
	if err != nil {
		return failed(err)
	}

	return r.toPath(data).ParseDrawingInstructions()
}
