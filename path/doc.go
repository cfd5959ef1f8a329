// Package path models the SVG path data mini-language.
//
// A Data value collects drawing commands in order and renders them to the
// compact textual form found in the d attribute of a path element:
//
//	data := path.NewData().
//		MoveTo(10, 10).
//		LineBy(20, 0).
//		VerticalLineBy(20).
//		Close()
//
//	data.Value() // "M10,10 l20,0 v20 z"
//
// Building and rendering never fail. Callers are responsible for passing the
// right number of parameters to each command; Validate can be used to check
// a path explicitly.
package path
