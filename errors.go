package svg

import "errors"

var (
	ErrUnexpectedToken = errors.New("unexpected token in path data")
	ErrUnknownCommand  = errors.New("unknown path command")
	ErrMissingNumbers  = errors.New("path command is missing parameters")
)
