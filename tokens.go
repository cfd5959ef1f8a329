package svg

import (
	"fmt"
	"strings"
	"unicode/utf8"

	gl "github.com/rustyoz/genericlexer"
)

// tokens reads lexer items and keeps count of the input they cover. The
// lexer ends the stream early on a character it has no rule for, so a short
// count at the end of the stream means the input was not fully read.
type tokens struct {
	lex      *gl.Lexer
	items    chan gl.Item
	input    string
	consumed int
}

func lexTokens(name, input string) *tokens {
	input = normalizeNumbers(input)
	l, items := gl.Lex(name, input)
	return &tokens{lex: l, items: items, input: input}
}

func (t *tokens) next() gl.Item {
	i := t.lex.NextItem()
	t.consumed += len(i.Value)
	return i
}

func (t *tokens) peek() gl.Item {
	return t.lex.PeekItem()
}

// skipSeparators consumes whitespace around at most one comma.
func (t *tokens) skipSeparators() {
	comma := false
	for {
		switch t.peek().Type {
		case gl.ItemWSP:
		case gl.ItemComma:
			if comma {
				return
			}
			comma = true
		default:
			return
		}
		t.next()
	}
}

// numbers reads numbers up to the first item that is not one.
func (t *tokens) numbers() ([]float64, error) {
	var numbers []float64
	for {
		t.skipSeparators()
		if t.peek().Type != gl.ItemNumber {
			return numbers, nil
		}

		n, err := parseNumber(t.next())
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
}

// end reports the first character the lexer stopped at, if any.
func (t *tokens) end() error {
	if t.consumed >= len(t.input) {
		return nil
	}

	r, _ := utf8.DecodeRuneInString(t.input[t.consumed:])
	return fmt.Errorf("%w %q at offset %d", ErrUnexpectedToken, r, t.consumed)
}

// release lets the lexer goroutine deliver its remaining items and exit.
func (t *tokens) release() {
	go func() {
		for range t.items {
		}
	}()
}

// parseNumberList parses numbers separated by commas and/or whitespace.
// Signs separate numbers too, so "10-5" is two numbers.
func parseNumberList(s string) ([]float64, error) {
	t := lexTokens("numbers", s)
	defer t.release()

	n, err := t.numbers()
	if err != nil {
		return nil, err
	}

	t.skipSeparators()
	if i := t.next(); i.Type != gl.ItemEOS {
		return nil, fmt.Errorf("%w %q in number list %q", ErrUnexpectedToken, i.Value, s)
	}
	if err := t.end(); err != nil {
		return nil, err
	}

	return n, nil
}

const (
	inNone = iota
	inInteger
	inFraction
	inExponent
)

// normalizeNumbers rewrites the number forms the lexer cannot start on:
// ".5" becomes "0.5" and "0.5.5" becomes "0.5 0.5". Carriage returns and
// form feeds become spaces.
func normalizeNumbers(s string) string {
	if !strings.ContainsAny(s, ".\r\f") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	state := inNone
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if state == inNone {
				state = inInteger
			}
		case c == '.':
			switch state {
			case inNone:
				b.WriteByte('0')
			case inFraction, inExponent:
				b.WriteString(" 0")
			}
			state = inFraction
		case c == 'e' && (state == inInteger || state == inFraction):
			state = inExponent
		case c == '-' || c == '+':
			if state != inExponent || s[i-1] != 'e' {
				state = inInteger
			}
		case c == '\r' || c == '\f':
			c = ' '
			state = inNone
		default:
			state = inNone
		}
		b.WriteByte(c)
	}

	return b.String()
}
