// Package node holds the attribute values shared by SVG elements.
package node

import (
	"sort"
	"strings"
)

// Value is a serialized attribute value.
type Value string

// String returns the raw attribute text.
func (v Value) String() string {
	return string(v)
}

// Attributes maps attribute names to their values.
type Attributes map[string]Value

// Set stores value under name, replacing any previous value.
// Empty values are not stored.
func (a Attributes) Set(name string, value Value) Attributes {
	if value == "" {
		delete(a, name)
		return a
	}

	a[name] = value
	return a
}

// Get returns the value stored under name.
func (a Attributes) Get(name string) (Value, bool) {
	v, ok := a[name]
	return v, ok
}

// Names returns the attribute names in lexical order.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// String renders the attributes as name="value" pairs in lexical order.
// Values are written as is; quoting is left to the XML encoder.
func (a Attributes) String() string {
	var b strings.Builder
	for i, name := range a.Names() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(string(a[name]))
		b.WriteByte('"')
	}

	return b.String()
}
