package svg

import (
	"fmt"

	"github.com/vasalvit/svg/path"
)

// PolyLine
// set of connected line segments that typically form a closed shape.
type PolyLine struct {
	shape
	Points string `xml:"points,attr"`
}

// Data returns a move to the first point followed by lines through the
// others. A trailing odd coordinate is dropped.
func (pl *PolyLine) Data() (*path.Data, error) {
	n, err := parseNumberList(pl.Points)
	if err != nil {
		return nil, fmt.Errorf("polyline %q: %w", pl.ID, err)
	}

	data := path.NewData()
	for i := 0; i+1 < len(n); i += 2 {
		if i == 0 {
			data.MoveTo(n[i], n[i+1])
			continue
		}
		data.LineTo(n[i], n[i+1])
	}

	return data, nil
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (pl *PolyLine) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	data, err := pl.Data()
	if err != nil {
		return failed(err)
	}

	return pl.toPath(data).ParseDrawingInstructions()
}
