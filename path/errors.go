package path

import "errors"

var (
	ErrArity     = errors.New("wrong number of parameters")
	ErrArcFlag   = errors.New("arc flag must be 0 or 1")
	ErrNotFinite = errors.New("parameter is not a finite number")
)
