package svg

import "math"

// arcToCubics converts an elliptical arc in endpoint form into cubic Bézier
// segments of at most a quarter turn each. Radii too small to reach to are
// scaled up. from must differ from to and both radii must be non-zero.
func arcToCubics(from Tuple, rx, ry, angle float64, large, sweep bool, to Tuple) [][3]Tuple {
	rx, ry = math.Abs(rx), math.Abs(ry)
	sin, cos := math.Sincos(angle * math.Pi / 180)

	dx, dy := (from[0]-to[0])/2, (from[1]-to[1])/2
	mx := cos*dx + sin*dy
	my := -sin*dx + cos*dy
	if s := mx*mx/(rx*rx) + my*my/(ry*ry); s > 1 {
		rx *= math.Sqrt(s)
		ry *= math.Sqrt(s)
	}

	// unit circle space: rotate by -angle, then scale by 1/rx, 1/ry
	toUnit := func(p Tuple) Tuple {
		return Tuple{(cos*p[0] + sin*p[1]) / rx, (-sin*p[0] + cos*p[1]) / ry}
	}
	fromUnit := func(p Tuple) Tuple {
		x, y := p[0]*rx, p[1]*ry
		return Tuple{cos*x - sin*y, sin*x + cos*y}
	}

	p1, p2 := toUnit(from), toUnit(to)
	ddx, ddy := p2[0]-p1[0], p2[1]-p1[1]
	d := ddx*ddx + ddy*ddy

	f := math.Sqrt(math.Max(1/d-0.25, 0))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	if large == sweep {
		f = -f
	}

	cx := (p1[0]+p2[0])/2 - f*ddy
	cy := (p1[1]+p2[1])/2 + f*ddx

	theta1 := math.Atan2(p1[1]-cy, p1[0]-cx)
	theta2 := math.Atan2(p2[1]-cy, p2[0]-cx)
	delta := theta2 - theta1
	if delta < 0 && sweep {
		delta += 2 * math.Pi
	} else if delta > 0 && !sweep {
		delta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi/2 + 0.001)))
	segments := make([][3]Tuple, 0, n)
	for i := 0; i < n; i++ {
		a0 := theta1 + float64(i)*delta/float64(n)
		a1 := theta1 + float64(i+1)*delta/float64(n)
		t := 4.0 / 3.0 * math.Tan((a1-a0)/4)

		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)

		end := Tuple{cx + c1, cy + s1}
		segments = append(segments, [3]Tuple{
			fromUnit(Tuple{cx + c0 - t*s0, cy + s0 + t*c0}),
			fromUnit(Tuple{end[0] + t*s1, end[1] - t*c1}),
			fromUnit(end),
		})
	}

	if n > 0 {
		segments[n-1][2] = to
	}

	return segments
}
