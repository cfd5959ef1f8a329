package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/kpango/glg"
	mt "github.com/rustyoz/Mtransform"
)

// parseTransform parses a transform attribute such as
// "translate(10,20) scale(2)". Functions apply in the order they are listed.
func parseTransform(s string) (mt.Transform, error) {
	result := mt.Identity()

	for _, part := range strings.Split(s, ")") {
		part = strings.Trim(part, ", \t\n\r")
		if part == "" {
			continue
		}

		name, args, ok := strings.Cut(part, "(")
		if !ok {
			return result, fmt.Errorf("invalid transform %q", part)
		}
		name = strings.TrimSpace(name)

		n, err := parseNumberList(args)
		if err != nil {
			return result, fmt.Errorf("invalid %s transform: %w", name, err)
		}

		op := mt.Identity()
		switch {
		case name == "matrix" && len(n) == 6:
			op[0][0], op[1][0], op[0][1], op[1][1], op[0][2], op[1][2] = n[0], n[1], n[2], n[3], n[4], n[5]
		case name == "translate" && len(n) == 1:
			op.Translate(n[0], 0)
		case name == "translate" && len(n) == 2:
			op.Translate(n[0], n[1])
		case name == "scale" && len(n) == 1:
			op.Scale(n[0], n[0])
		case name == "scale" && len(n) == 2:
			op.Scale(n[0], n[1])
		case name == "rotate" && (len(n) == 1 || len(n) == 3):
			op = rotation(n[0])
			if len(n) == 3 {
				there, back := mt.Identity(), mt.Identity()
				there.Translate(n[1], n[2])
				back.Translate(-n[1], -n[2])
				op = mt.MultiplyTransforms(mt.MultiplyTransforms(there, op), back)
			}
		case name == "skewX" && len(n) == 1:
			op[0][1] = math.Tan(n[0] * math.Pi / 180)
		case name == "skewY" && len(n) == 1:
			op[1][0] = math.Tan(n[0] * math.Pi / 180)
		case name == "matrix", name == "translate", name == "scale", name == "rotate", name == "skewX", name == "skewY":
			return result, fmt.Errorf("%s transform takes a different number of arguments, got %d", name, len(n))
		default:
			glg.Warnf("ignoring unsupported transform %q", name)
			continue
		}

		result = mt.MultiplyTransforms(result, op)
	}

	return result, nil
}

func rotation(degrees float64) mt.Transform {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	t := mt.Identity()
	t[0][0], t[0][1] = cos, -sin
	t[1][0], t[1][1] = sin, cos
	return t
}

// worldTransform combines the document, group and element transforms,
// outermost first.
func worldTransform(g *Group, owner *Svg, transform string) mt.Transform {
	var groups []*Group
	for ; g != nil; g = g.Parent {
		groups = append(groups, g)
		if owner == nil {
			owner = g.Owner
		}
	}

	result := mt.Identity()
	if owner != nil && owner.Transform != nil {
		result = *owner.Transform
	}

	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i].Transform != nil {
			result = mt.MultiplyTransforms(result, *groups[i].Transform)
		}
	}

	if transform != "" {
		t, err := parseTransform(transform)
		if err != nil {
			glg.Warnf("ignoring transform %q: %v", transform, err)
			return result
		}
		result = mt.MultiplyTransforms(result, t)
	}

	return result
}

func ownerScale(g *Group, owner *Svg) float64 {
	for ; owner == nil && g != nil; g = g.Parent {
		owner = g.Owner
	}

	if owner == nil || owner.scale == 0 {
		return 1
	}

	return owner.scale
}
