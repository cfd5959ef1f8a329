package path

// Command is a single drawing instruction. Its parameters are copied on
// construction and never change afterwards.
type Command struct {
	kind       Kind
	position   Position
	parameters Parameters
}

// NewCommand creates a command of the given kind. The parameter count is
// not checked here (see Validate).
func NewCommand(kind Kind, position Position, parameters ...float64) Command {
	c := Command{kind: kind, position: position}
	if len(parameters) > 0 {
		c.parameters = append(Parameters(nil), parameters...)
	}

	return c
}

// Close returns the command closing the current subpath. It renders as "z".
func Close() Command {
	return Command{kind: ClosePath, position: Relative}
}

// CloseWith returns a close path command rendered as "Z" when p is Absolute
// and as "z" when it is Relative. Both close the subpath the same way.
func CloseWith(p Position) Command {
	return Command{kind: ClosePath, position: p}
}

// MoveCommand returns an M (or m) command taking x,y pairs.
func MoveCommand(p Position, params ...float64) Command {
	return NewCommand(Move, p, params...)
}

// LineCommand returns an L (or l) command taking x,y pairs.
func LineCommand(p Position, params ...float64) Command {
	return NewCommand(Line, p, params...)
}

// HorizontalLineCommand returns an H (or h) command taking x values.
func HorizontalLineCommand(p Position, params ...float64) Command {
	return NewCommand(HorizontalLine, p, params...)
}

// VerticalLineCommand returns a V (or v) command taking y values.
func VerticalLineCommand(p Position, params ...float64) Command {
	return NewCommand(VerticalLine, p, params...)
}

// QuadraticCurveCommand returns a Q (or q) command taking x1,y1 x,y groups.
func QuadraticCurveCommand(p Position, params ...float64) Command {
	return NewCommand(QuadraticCurve, p, params...)
}

// SmoothQuadraticCurveCommand returns a T (or t) command taking x,y pairs.
func SmoothQuadraticCurveCommand(p Position, params ...float64) Command {
	return NewCommand(SmoothQuadraticCurve, p, params...)
}

// CubicCurveCommand returns a C (or c) command taking x1,y1 x2,y2 x,y groups.
func CubicCurveCommand(p Position, params ...float64) Command {
	return NewCommand(CubicCurve, p, params...)
}

// SmoothCubicCurveCommand returns an S (or s) command taking x2,y2 x,y groups.
func SmoothCubicCurveCommand(p Position, params ...float64) Command {
	return NewCommand(SmoothCubicCurve, p, params...)
}

// EllipticalArcCommand returns an A (or a) command taking
// rx,ry angle large-arc-flag sweep-flag x,y groups.
func EllipticalArcCommand(p Position, params ...float64) Command {
	return NewCommand(EllipticalArc, p, params...)
}

// Kind returns the command kind.
func (c Command) Kind() Kind {
	return c.kind
}

// Position returns the command position.
func (c Command) Position() Position {
	return c.position
}

// Parameters returns a copy of the command parameters.
func (c Command) Parameters() Parameters {
	return append(Parameters(nil), c.parameters...)
}

// Equal reports whether both commands render identically.
func (c Command) Equal(other Command) bool {
	if c.kind != other.kind || c.position != other.position || len(c.parameters) != len(other.parameters) {
		return false
	}

	for i, v := range c.parameters {
		if v != other.parameters[i] {
			return false
		}
	}

	return true
}

// String renders the command letter followed by its parameters,
// e.g. "L1,2" or "z".
func (c Command) String() string {
	return string(c.appendTo(nil))
}

func (c Command) appendTo(buf []byte) []byte {
	buf = append(buf, c.kind.Letter(c.position))
	return c.parameters.appendTo(buf)
}
