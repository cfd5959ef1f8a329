package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kpango/glg"
	gl "github.com/rustyoz/genericlexer"
)

// splitStyle splits a style attribute ("fill:none;stroke:#000") into its
// properties.
func splitStyle(style string) map[string]string {
	properties := make(map[string]string)
	for _, declaration := range strings.Split(style, ";") {
		if strings.TrimSpace(declaration) == "" {
			continue
		}

		key, val, ok := strings.Cut(declaration, ":")
		if !ok {
			glg.Warnf("ignoring style declaration %q", declaration)
			continue
		}
		properties[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	return properties
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected number, got %q", ErrUnexpectedToken, i.Value)
	}

	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing number %q: %w", i.Value, err)
	}

	return n, nil
}

// parseLength parses a number with an optional px unit.
func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}
