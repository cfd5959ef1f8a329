package svg

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize fills the outlines described by instructions into a coverage
// mask of the given size, using the non-zero winding rule. Open subpaths
// are closed.
func Rasterize(instructions []*DrawingInstruction, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)

	open := false
	for _, di := range instructions {
		switch di.Kind {
		case MoveInstruction:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(di.M[0]), float32(di.M[1]))
			open = true
		case LineInstruction:
			r.LineTo(float32(di.M[0]), float32(di.M[1]))
		case CurveInstruction:
			cp := di.CurvePoints
			r.CubeTo(
				float32(cp.C1[0]), float32(cp.C1[1]),
				float32(cp.C2[0]), float32(cp.C2[1]),
				float32(cp.T[0]), float32(cp.T[1]),
			)
		case CloseInstruction:
			r.ClosePath()
		}
	}

	if open {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
