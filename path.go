package svg

import (
	"fmt"
	"strconv"

	"github.com/kpango/glg"
	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"

	"github.com/vasalvit/svg/node"
	"github.com/vasalvit/svg/path"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	Style           string `xml:"style,attr"`
	TransformString string `xml:"transform,attr"`
	properties      map[string]string
	StrokeWidth     float64 `xml:"stroke-width,attr"`
	Fill            *string `xml:"fill,attr"`
	Stroke          string  `xml:"stroke,attr"`
	group           *Group
	owner           *Svg
}

// NewPath creates a path element whose d attribute is rendered from data.
// data is left empty.
func NewPath(data *path.Data) *Path {
	return &Path{D: data.Value().String()}
}

// Attributes returns the non-empty attributes of the path.
func (p *Path) Attributes() node.Attributes {
	attrs := node.Attributes{}
	attrs.Set("id", node.Value(p.ID)).
		Set("d", node.Value(p.D)).
		Set("style", node.Value(p.Style)).
		Set("transform", node.Value(p.TransformString)).
		Set("stroke", node.Value(p.Stroke))

	if p.Fill != nil {
		attrs.Set("fill", node.Value(*p.Fill))
	}

	if p.StrokeWidth != 0 {
		attrs.Set("stroke-width", node.Value(strconv.FormatFloat(p.StrokeWidth, 'f', -1, 64)))
	}

	return attrs
}

func (p *Path) setOwner(s *Svg) {
	p.owner = s
}

type pathDescriptionParser struct {
	p              *Path
	tokens         *tokens
	x, y           float64
	startX, startY float64
	// control point of the previous curve, used by the smooth variants
	ctrl         Tuple
	prev         path.Kind
	transform    mt.Transform
	instructions chan *DrawingInstruction
}

func newPathDParse(p *Path) *pathDescriptionParser {
	return &pathDescriptionParser{
		p:         p,
		prev:      path.ClosePath,
		transform: worldTransform(p.group, p.owner, p.TransformString),
	}
}

// ParseDrawingInstructions interprets the d attribute and returns a channel
// of drawing instructions in absolute, transformed coordinates, ending with
// a PaintInstruction, and a channel that receives an error if the path data
// is malformed. Both channels are closed when interpretation stops.
func (p *Path) ParseDrawingInstructions() (chan *DrawingInstruction, chan error) {
	p.parseStyle()
	pdp := newPathDParse(p)

	instructions := make(chan *DrawingInstruction, 100)
	errs := make(chan error, 1)
	pdp.instructions = instructions

	pdp.tokens = lexTokens(fmt.Sprint(p.ID), p.D)

	go func() {
		defer close(errs)
		defer close(instructions)
		defer pdp.tokens.release()

		if err := pdp.parse(); err != nil {
			glg.Errorf("path %q: %v", p.ID, err)
			errs <- err
			return
		}

		strokeWidth := p.StrokeWidth
		if strokeWidth == 0 {
			strokeWidth = 1
		}
		strokeWidth *= ownerScale(p.group, p.owner)
		stroke := p.Stroke

		instructions <- &DrawingInstruction{
			Kind:        PaintInstruction,
			StrokeWidth: &strokeWidth,
			Stroke:      &stroke,
			Fill:        p.Fill,
		}
	}()

	return instructions, errs
}

func (pdp *pathDescriptionParser) parse() error {
	for {
		i := pdp.tokens.next()
		switch i.Type {
		case gl.ItemError:
			return fmt.Errorf("%w: %s", ErrUnexpectedToken, i.Value)
		case gl.ItemEOS:
			return pdp.tokens.end()
		case gl.ItemLetter, gl.ItemWord:
			if err := pdp.parseLetters(i.Value); err != nil {
				return err
			}
		case gl.ItemNumber:
			return fmt.Errorf("%w: number %s before any command", ErrUnexpectedToken, i.Value)
		}
	}
}

// parseLetters handles a run of adjacent command letters such as "zM". Only
// a close path, which takes no numbers, can be followed by another letter.
func (pdp *pathDescriptionParser) parseLetters(letters string) error {
	for len(letters) > 1 {
		if letters[0] != 'z' && letters[0] != 'Z' {
			return fmt.Errorf("%w %q", ErrUnknownCommand, letters)
		}
		pdp.closePath()
		letters = letters[1:]
	}

	return pdp.parseCommand(letters)
}

func (pdp *pathDescriptionParser) parseCommand(letter string) error {
	if len(letter) != 1 {
		return fmt.Errorf("%w %q", ErrUnknownCommand, letter)
	}

	kind, pos, ok := path.LookupLetter(letter[0])
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, letter)
	}

	if kind == path.ClosePath {
		pdp.closePath()
		return nil
	}

	numbers, err := pdp.tokens.numbers()
	if err != nil {
		return fmt.Errorf("parsing %q: %w", letter, err)
	}

	arity := kind.Arity()
	if len(numbers) == 0 || len(numbers)%arity != 0 {
		return fmt.Errorf("%w: %q takes groups of %d numbers, got %d", ErrMissingNumbers, letter, arity, len(numbers))
	}

	for j := 0; j < len(numbers); j += arity {
		// extra coordinate pairs after a move are implicit lines
		if kind == path.Move && j > 0 {
			kind = path.Line
		}
		pdp.segment(kind, pos, numbers[j:j+arity])
	}

	return nil
}

func (pdp *pathDescriptionParser) segment(kind path.Kind, pos path.Position, a []float64) {
	cur := Tuple{pdp.x, pdp.y}
	abs := func(x, y float64) Tuple {
		if pos == path.Relative {
			return Tuple{cur[0] + x, cur[1] + y}
		}
		return Tuple{x, y}
	}

	switch kind {
	case path.Move:
		pdp.moveTo(abs(a[0], a[1]))
	case path.Line:
		pdp.lineTo(abs(a[0], a[1]))
	case path.HorizontalLine:
		pdp.lineTo(Tuple{abs(a[0], 0)[0], cur[1]})
	case path.VerticalLine:
		pdp.lineTo(Tuple{cur[0], abs(0, a[0])[1]})
	case path.CubicCurve:
		pdp.curveTo(abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5]))
	case path.SmoothCubicCurve:
		pdp.curveTo(pdp.reflected(path.CubicCurve, path.SmoothCubicCurve), abs(a[0], a[1]), abs(a[2], a[3]))
	case path.QuadraticCurve:
		pdp.quadTo(abs(a[0], a[1]), abs(a[2], a[3]))
	case path.SmoothQuadraticCurve:
		pdp.quadTo(pdp.reflected(path.QuadraticCurve, path.SmoothQuadraticCurve), abs(a[0], a[1]))
	case path.EllipticalArc:
		pdp.arcTo(a[0], a[1], a[2], a[3] != 0, a[4] != 0, abs(a[5], a[6]))
	}

	pdp.prev = kind
}

// reflected returns the reflection of the previous control point about the
// current point when the previous segment was one of kinds, and the current
// point otherwise.
func (pdp *pathDescriptionParser) reflected(kinds ...path.Kind) Tuple {
	for _, k := range kinds {
		if pdp.prev == k {
			return Tuple{2*pdp.x - pdp.ctrl[0], 2*pdp.y - pdp.ctrl[1]}
		}
	}

	return Tuple{pdp.x, pdp.y}
}

func (pdp *pathDescriptionParser) apply(t Tuple) *Tuple {
	x, y := pdp.transform.Apply(t[0], t[1])
	return &Tuple{x, y}
}

func (pdp *pathDescriptionParser) moveTo(t Tuple) {
	pdp.x, pdp.y = t[0], t[1]
	pdp.startX, pdp.startY = t[0], t[1]
	pdp.instructions <- &DrawingInstruction{Kind: MoveInstruction, M: pdp.apply(t)}
}

func (pdp *pathDescriptionParser) lineTo(t Tuple) {
	pdp.x, pdp.y = t[0], t[1]
	pdp.instructions <- &DrawingInstruction{Kind: LineInstruction, M: pdp.apply(t)}
}

func (pdp *pathDescriptionParser) curveTo(c1, c2, t Tuple) {
	pdp.ctrl = c2
	pdp.x, pdp.y = t[0], t[1]
	pdp.instructions <- &DrawingInstruction{
		Kind: CurveInstruction,
		CurvePoints: &CurvePoints{
			C1: pdp.apply(c1),
			C2: pdp.apply(c2),
			T:  pdp.apply(t),
		},
	}
}

// quadTo emits a quadratic curve elevated to a cubic one.
func (pdp *pathDescriptionParser) quadTo(q, t Tuple) {
	c1 := Tuple{pdp.x + 2.0/3.0*(q[0]-pdp.x), pdp.y + 2.0/3.0*(q[1]-pdp.y)}
	c2 := Tuple{t[0] + 2.0/3.0*(q[0]-t[0]), t[1] + 2.0/3.0*(q[1]-t[1])}
	pdp.curveTo(c1, c2, t)
	pdp.ctrl = q
}

func (pdp *pathDescriptionParser) arcTo(rx, ry, angle float64, large, sweep bool, t Tuple) {
	from := Tuple{pdp.x, pdp.y}
	if from == t {
		return
	}

	if rx == 0 || ry == 0 {
		pdp.lineTo(t)
		return
	}

	for _, c := range arcToCubics(from, rx, ry, angle, large, sweep, t) {
		pdp.curveTo(c[0], c[1], c[2])
	}
}

func (pdp *pathDescriptionParser) closePath() {
	pdp.x, pdp.y = pdp.startX, pdp.startY
	pdp.prev = path.ClosePath
	pdp.instructions <- &DrawingInstruction{Kind: CloseInstruction}
}

func (p *Path) parseStyle() {
	p.properties = splitStyle(p.Style)
	for key, val := range p.properties {
		switch key {
		case "stroke-width":
			sw, err := parseLength(val)
			if err != nil {
				glg.Warnf("path %q: invalid stroke-width %q: %v", p.ID, val, err)
				continue
			}
			p.StrokeWidth = sw
		case "stroke":
			p.Stroke = val
		case "fill":
			fill := val
			p.Fill = &fill
		}
	}
}
