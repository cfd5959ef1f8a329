package path

import (
	"strconv"
)

// Number is any numeric type that widens to a parameter.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Parameters are the numeric operands of a command, in order.
type Parameters []float64

// Params widens values to Parameters, keeping their order.
func Params[T Number](values ...T) Parameters {
	result := make(Parameters, len(values))
	for i, v := range values {
		result[i] = float64(v)
	}

	return result
}

// String renders the parameters as a comma separated list.
func (p Parameters) String() string {
	return string(p.appendTo(nil))
}

func (p Parameters) appendTo(buf []byte) []byte {
	for i, v := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendNumber(buf, v)
	}

	return buf
}

// appendNumber writes v in its shortest decimal form: no exponent, no
// trailing zeros and no fractional part for integral values.
func appendNumber(buf []byte, v float64) []byte {
	if v == 0 {
		// drops the sign of negative zero
		return append(buf, '0')
	}

	return strconv.AppendFloat(buf, v, 'f', -1, 64)
}
