package svg

import (
	"github.com/vasalvit/svg/path"
)

// shape holds what every basic shape shares with a path element.
type shape struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Stroke    string `xml:"stroke,attr"`
	Fill      string `xml:"fill,attr"`

	group *Group
	owner *Svg
}

func (s *shape) setOwner(owner *Svg) {
	s.owner = owner
}

// toPath renders data into an equivalent path element. Group stroke and
// fill apply unless the shape sets its own.
func (s *shape) toPath(data *path.Data) *Path {
	p := &Path{
		ID:              s.ID,
		D:               data.Value().String(),
		Style:           s.Style,
		TransformString: s.Transform,
		Stroke:          s.Stroke,
		group:           s.group,
		owner:           s.owner,
	}

	fill := s.Fill
	if g := s.group; g != nil {
		p.StrokeWidth = g.StrokeWidth
		if p.Stroke == "" {
			p.Stroke = g.Stroke
		}
		if fill == "" {
			fill = g.Fill
		}
	}
	if fill != "" {
		p.Fill = &fill
	}

	return p
}

// failed returns closed channels reporting err.
func failed(err error) (chan *DrawingInstruction, chan error) {
	instructions := make(chan *DrawingInstruction)
	errs := make(chan error, 1)
	errs <- err
	close(instructions)
	close(errs)
	return instructions, errs
}
