package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/kpango/glg"
	mt "github.com/rustyoz/Mtransform"
)

// DrawingInstructionParser allow getting drawing instructions from an
// element. All SVG elements should implement this interface.
type DrawingInstructionParser interface {
	ParseDrawingInstructions() (chan *DrawingInstruction, chan error)
}

type ownedElement interface {
	setOwner(s *Svg)
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Svg represents an SVG file containing at least a top level group or a
// number of Paths
type Svg struct {
	Title     string
	Groups    []*Group                   // the top level groups, also listed in Elements
	Elements  []DrawingInstructionParser // top level elements in document order
	Name      string
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Stroke          string
	StrokeWidth     float64
	Fill            string
	FillRule        string
	Elements        []DrawingInstructionParser
	TransformString string
	Transform       *mt.Transform // row, column
	Parent          *Group
	Owner           *Svg
}

// NewSvg creates an empty document. A positive scale multiplies all
// coordinates, a negative one divides them; zero leaves them unscaled.
func NewSvg(name string, scale float64) *Svg {
	svg := &Svg{
		Name:      name,
		Transform: mt.NewTransform(),
		scale:     1,
	}

	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}

	return svg
}

// Add appends a top level element and returns s for chaining.
func (s *Svg) Add(e DrawingInstructionParser) *Svg {
	switch e := e.(type) {
	case *Group:
		e.Parent = nil
		e.SetOwner(s)
		s.Groups = append(s.Groups, e)
	case ownedElement:
		e.setOwner(s)
	}

	s.Elements = append(s.Elements, e)
	return s
}

// Add appends an element to the group and returns g for chaining.
func (g *Group) Add(e DrawingInstructionParser) *Group {
	g.Elements = append(g.Elements, e)
	g.SetOwner(g.Owner)
	return g
}

// ParseDrawingInstructions implements the DrawingInstructionParser interface
//
// Elements are interpreted one after another. Interpretation stops at the
// first element that reports an error.
func (g *Group) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	return forward(g.Elements)
}

// ParseDrawingInstructions implements the DrawingInstructionParser interface
//
// Top level elements, groups included, are interpreted in document order.
func (s *Svg) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	return forward(s.Elements)
}

func forward(elements []DrawingInstructionParser) (chan *DrawingInstruction, chan error) {
	instructions := make(chan *DrawingInstruction, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(instructions)

		for _, e := range elements {
			instrs, elementErrs := e.ParseDrawingInstructions()
			for is := range instrs {
				instructions <- is
			}

			if err := <-elementErrs; err != nil {
				errs <- err
				return
			}
		}
	}()

	return instructions, errs
}

// newElement creates the element for an XML start tag. It returns nil for
// elements that do not draw anything.
func newElement(name string, g *Group, s *Svg) DrawingInstructionParser {
	switch name {
	case "g":
		return &Group{Parent: g, Owner: s, Transform: mt.NewTransform()}
	case "rect":
		return &Rect{shape: shape{group: g, owner: s}}
	case "circle":
		return &Circle{shape: shape{group: g, owner: s}}
	case "polyline":
		return &PolyLine{shape: shape{group: g, owner: s}}
	case "path":
		p := &Path{group: g, owner: s}
		if g != nil {
			p.StrokeWidth, p.Stroke = g.StrokeWidth, g.Stroke
			if g.Fill != "" {
				fill := g.Fill
				p.Fill = &fill
			}
		}
		return p
	}

	return nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			sw, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return err
			}
			g.StrokeWidth = sw
		case "fill":
			g.Fill = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				glg.Warnf("group %q: %v", g.ID, err)
				continue
			}
			g.Transform = &t
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			e := newElement(tok.Name.Local, g, g.Owner)
			if e == nil {
				glg.Warnf("group %q: skipping unsupported element <%s>", g.ID, tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(e, &tok); err != nil {
				return fmt.Errorf("error decoding element of Group: %w", err)
			}
			g.Elements = append(g.Elements, e)

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "title" {
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
				continue
			}

			e := newElement(tok.Name.Local, nil, s)
			if e == nil {
				glg.Warnf("svg %q: skipping unsupported element <%s>", s.Name, tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(e, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}

			if g, ok := e.(*Group); ok {
				s.Groups = append(s.Groups, g)
			}
			s.Elements = append(s.Elements, e)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	svg := NewSvg(name, scale)
	if err := xml.Unmarshal([]byte(str), svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}

	svg.setOwners()
	return svg, nil
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := NewSvg(name, scale)
	if err := xml.NewDecoder(r).Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}

	svg.setOwners()
	return svg, nil
}

func (s *Svg) setOwners() {
	glg.Debugf("svg %q: %d elements, %d groups", s.Name, len(s.Elements), len(s.Groups))

	for _, g := range s.Groups {
		g.SetOwner(s)
	}
}

// SetOwner sets the owner of a SVG Group
func (g *Group) SetOwner(svg *Svg) {
	g.Owner = svg
	if g.Transform == nil {
		g.Transform = mt.NewTransform()
	}

	for _, e := range g.Elements {
		switch e := e.(type) {
		case *Group:
			e.Parent = g
			e.SetOwner(svg)
		case *Path:
			e.group = g
		case *Rect:
			e.group = g
		case *Circle:
			e.group = g
		case *PolyLine:
			e.group = g
		}
	}
}
