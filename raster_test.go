package svg

import (
	"testing"

	"github.com/cheekybits/is"

	"github.com/vasalvit/svg/path"
)

func TestRasterizeSquare(t *testing.T) {
	is := is.New(t)

	strux, err := CollectDrawingInstructions(NewPath(path.NewData().
		MoveTo(0, 0).
		HorizontalLineTo(10).
		VerticalLineTo(10).
		HorizontalLineTo(0).
		Close()))
	is.NoErr(err)

	mask := Rasterize(strux, 20, 20)
	is.Equal(mask.Bounds().Dx(), 20)
	is.Equal(mask.AlphaAt(5, 5).A, uint8(0xff))
	is.Equal(mask.AlphaAt(15, 15).A, uint8(0))
}

func TestRasterizeOpenSubpaths(t *testing.T) {
	is := is.New(t)

	strux, err := CollectDrawingInstructions(NewPath(path.NewData().
		MoveTo(0, 0).LineTo(4, 0).LineTo(4, 4).LineTo(0, 4).
		MoveTo(10, 10).LineTo(14, 10).LineTo(14, 14).LineTo(10, 14)))
	is.NoErr(err)

	mask := Rasterize(strux, 16, 16)
	is.Equal(mask.AlphaAt(2, 2).A, uint8(0xff))
	is.Equal(mask.AlphaAt(12, 12).A, uint8(0xff))
	is.Equal(mask.AlphaAt(7, 7).A, uint8(0))
}

func TestRasterizeCircle(t *testing.T) {
	is := is.New(t)

	strux, err := CollectDrawingInstructions(&Circle{Cx: "10", Cy: "10", Radius: "8"})
	is.NoErr(err)

	mask := Rasterize(strux, 20, 20)
	is.Equal(mask.AlphaAt(10, 10).A, uint8(0xff))
	is.Equal(mask.AlphaAt(0, 0).A, uint8(0))
}
