package path

import (
	"github.com/vasalvit/svg/node"
)

// Data is the content of a path's d attribute: an ordered list of commands.
//
// Commands are rendered in the order they were added. Data is meant to be
// owned by a single goroutine.
type Data struct {
	commands []Command
}

// NewData creates an empty Data.
func NewData() *Data {
	return &Data{}
}

// FromCommands wraps commands without copying them. The caller must not use
// the slice afterwards.
func FromCommands(commands []Command) *Data {
	return &Data{commands: commands}
}

// Append adds command at the end.
func (d *Data) Append(command Command) {
	d.commands = append(d.commands, command)
}

// Add appends command and returns d for chaining.
func (d *Data) Add(command Command) *Data {
	d.Append(command)
	return d
}

// Len returns the number of commands.
func (d *Data) Len() int {
	return len(d.commands)
}

// Commands returns a copy of the commands, in order.
func (d *Data) Commands() []Command {
	return append([]Command(nil), d.commands...)
}

// Take hands the commands over to the caller and leaves d empty.
func (d *Data) Take() []Command {
	commands := d.commands
	d.commands = nil
	return commands
}

// Value renders the commands separated by single spaces and leaves d empty.
// An empty Data renders as "".
func (d *Data) Value() node.Value {
	commands := d.Take()

	var buf []byte
	for i, c := range commands {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = c.appendTo(buf)
	}

	return node.Value(buf)
}

func (d *Data) push(kind Kind, position Position, params []float64) *Data {
	d.commands = append(d.commands, NewCommand(kind, position, params...))
	return d
}

// MoveTo adds an absolute move command.
func (d *Data) MoveTo(params ...float64) *Data {
	return d.push(Move, Absolute, params)
}

// MoveBy adds a relative move command.
func (d *Data) MoveBy(params ...float64) *Data {
	return d.push(Move, Relative, params)
}

// LineTo adds an absolute line command.
func (d *Data) LineTo(params ...float64) *Data {
	return d.push(Line, Absolute, params)
}

// LineBy adds a relative line command.
func (d *Data) LineBy(params ...float64) *Data {
	return d.push(Line, Relative, params)
}

// HorizontalLineTo adds an absolute horizontal line command.
func (d *Data) HorizontalLineTo(params ...float64) *Data {
	return d.push(HorizontalLine, Absolute, params)
}

// HorizontalLineBy adds a relative horizontal line command.
func (d *Data) HorizontalLineBy(params ...float64) *Data {
	return d.push(HorizontalLine, Relative, params)
}

// VerticalLineTo adds an absolute vertical line command.
func (d *Data) VerticalLineTo(params ...float64) *Data {
	return d.push(VerticalLine, Absolute, params)
}

// VerticalLineBy adds a relative vertical line command.
func (d *Data) VerticalLineBy(params ...float64) *Data {
	return d.push(VerticalLine, Relative, params)
}

// QuadraticCurveTo adds an absolute quadratic Bézier curve command.
func (d *Data) QuadraticCurveTo(params ...float64) *Data {
	return d.push(QuadraticCurve, Absolute, params)
}

// QuadraticCurveBy adds a relative quadratic Bézier curve command.
func (d *Data) QuadraticCurveBy(params ...float64) *Data {
	return d.push(QuadraticCurve, Relative, params)
}

// SmoothQuadraticCurveTo adds an absolute smooth quadratic Bézier curve command.
func (d *Data) SmoothQuadraticCurveTo(params ...float64) *Data {
	return d.push(SmoothQuadraticCurve, Absolute, params)
}

// SmoothQuadraticCurveBy adds a relative smooth quadratic Bézier curve command.
func (d *Data) SmoothQuadraticCurveBy(params ...float64) *Data {
	return d.push(SmoothQuadraticCurve, Relative, params)
}

// CubicCurveTo adds an absolute cubic Bézier curve command.
func (d *Data) CubicCurveTo(params ...float64) *Data {
	return d.push(CubicCurve, Absolute, params)
}

// CubicCurveBy adds a relative cubic Bézier curve command.
func (d *Data) CubicCurveBy(params ...float64) *Data {
	return d.push(CubicCurve, Relative, params)
}

// SmoothCubicCurveTo adds an absolute smooth cubic Bézier curve command.
func (d *Data) SmoothCubicCurveTo(params ...float64) *Data {
	return d.push(SmoothCubicCurve, Absolute, params)
}

// SmoothCubicCurveBy adds a relative smooth cubic Bézier curve command.
func (d *Data) SmoothCubicCurveBy(params ...float64) *Data {
	return d.push(SmoothCubicCurve, Relative, params)
}

// EllipticalArcTo adds an absolute elliptical arc command. The parameters
// are rx, ry, x-axis-rotation, large-arc-flag, sweep-flag, x, y.
func (d *Data) EllipticalArcTo(params ...float64) *Data {
	return d.push(EllipticalArc, Absolute, params)
}

// EllipticalArcBy adds a relative elliptical arc command.
func (d *Data) EllipticalArcBy(params ...float64) *Data {
	return d.push(EllipticalArc, Relative, params)
}

// Close adds a close path command.
func (d *Data) Close() *Data {
	d.commands = append(d.commands, Close())
	return d
}
