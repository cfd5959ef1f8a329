package path

// Position tells whether command parameters are absolute canvas
// coordinates or offsets from the current point.
type Position int

// Positions.
const (
	// Absolute commands render with an uppercase letter.
	Absolute Position = iota
	// Relative commands render with a lowercase letter.
	Relative
)

func (p Position) String() string {
	if p == Relative {
		return "relative"
	}

	return "absolute"
}

// Kind identifies a path command.
type Kind int

// Command kinds. See https://www.w3.org/TR/SVG/paths.html#PathData
const (
	Move Kind = iota
	Line
	HorizontalLine
	VerticalLine
	QuadraticCurve
	SmoothQuadraticCurve
	CubicCurve
	SmoothCubicCurve
	EllipticalArc
	ClosePath
)

var kinds = [...]struct {
	name   string
	letter byte
	arity  int
}{
	Move:                 {"move", 'M', 2},
	Line:                 {"line", 'L', 2},
	HorizontalLine:       {"horizontal line", 'H', 1},
	VerticalLine:         {"vertical line", 'V', 1},
	QuadraticCurve:       {"quadratic curve", 'Q', 4},
	SmoothQuadraticCurve: {"smooth quadratic curve", 'T', 2},
	CubicCurve:           {"cubic curve", 'C', 6},
	SmoothCubicCurve:     {"smooth cubic curve", 'S', 4},
	EllipticalArc:        {"elliptical arc", 'A', 7},
	ClosePath:            {"close", 'Z', 0},
}

func (k Kind) valid() bool {
	return k >= Move && k <= ClosePath
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}

	return kinds[k].name
}

// Letter returns the command letter: uppercase for Absolute, lowercase for
// Relative.
func (k Kind) Letter(p Position) byte {
	if !k.valid() {
		return '?'
	}

	l := kinds[k].letter
	if p == Relative {
		l += 'a' - 'A'
	}

	return l
}

// Arity is the number of parameters a single command of this kind takes.
func (k Kind) Arity() int {
	if !k.valid() {
		return -1
	}

	return kinds[k].arity
}

// LookupLetter returns the kind and position a command letter stands for.
func LookupLetter(letter byte) (Kind, Position, bool) {
	pos := Absolute
	if letter >= 'a' && letter <= 'z' {
		pos = Relative
		letter -= 'a' - 'A'
	}

	for k := range kinds {
		if kinds[k].letter == letter {
			return Kind(k), pos, true
		}
	}

	return 0, 0, false
}
