package svg

// InstructionType tells our path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	PathInstruction InstructionType = iota
	MoveInstruction
	CircleInstruction
	CurveInstruction
	LineInstruction
	HLineInstruction
	CloseInstruction
	PaintInstruction
)

func (t InstructionType) String() string {
	switch t {
	case PathInstruction:
		return "path"
	case MoveInstruction:
		return "move"
	case CircleInstruction:
		return "circle"
	case CurveInstruction:
		return "curve"
	case LineInstruction:
		return "line"
	case HLineInstruction:
		return "hline"
	case CloseInstruction:
		return "close"
	case PaintInstruction:
		return "paint"
	}

	return "unknown"
}

// CurvePoints are the control points and the end point of a cubic Bézier
// curve.
type CurvePoints struct {
	C1 *Tuple
	C2 *Tuple
	T  *Tuple
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shapes contained in an SVG file. All points are in
// absolute, transformed coordinates.
type DrawingInstruction struct {
	Kind        InstructionType
	M           *Tuple
	CurvePoints *CurvePoints
	StrokeWidth *float64
	Stroke      *string
	Fill        *string
}

// CollectDrawingInstructions drains both channels returned by
// ParseDrawingInstructions.
func CollectDrawingInstructions(dip DrawingInstructionParser) ([]*DrawingInstruction, error) {
	instrs, errs := dip.ParseDrawingInstructions()

	var result []*DrawingInstruction
	for di := range instrs {
		result = append(result, di)
	}

	return result, <-errs
}
