package arith

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type TokenType uint64

const (
	EOF rune = 0

	TokenEOF TokenType = iota
	TokenNumber

	TokenPlus
	TokenMinus
	TokenMulti
	TokenDiv
	TokenOpenParentheses
	TokenCloseParentheses
)

var operatorTable = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMulti,
	'/': TokenDiv,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
}

var tokenNames = map[TokenType]string{
	TokenEOF:              "end of input",
	TokenNumber:           "number",
	TokenPlus:             "'+'",
	TokenMinus:            "'-'",
	TokenMulti:            "'*'",
	TokenDiv:              "'/'",
	TokenOpenParentheses:  "'('",
	TokenCloseParentheses: "')'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("token %d", uint64(t))
}

type Token struct {
	Typ   TokenType
	Value float64
}

func (t Token) String() string {
	if t.Typ == TokenNumber {
		return "number " + strconv.FormatFloat(t.Value, 'g', -1, 64)
	}

	return t.Typ.String()
}

// Lexer is a single-pass cursor over the source. Tokens are pulled one at a
// time; there is no backtracking.
type Lexer struct {
	src []rune
	pos int
	loc Location
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		src: []rune(input),
		loc: Location{Line: 1, Column: 1},
	}
}

// Location reports the position the cursor is currently at.
func (l *Lexer) Location() Location {
	return l.loc
}

// Next scans one token, skipping any leading whitespace. The returned
// location is that of the token's first character. Once the input is
// exhausted Next keeps returning the EOF token.
func (l *Lexer) Next() (Token, Location, error) {
	for unicode.IsSpace(l.peek()) {
		l.next()
	}

	start := l.loc
	switch r := l.peek(); {
	case r == EOF:
		return Token{Typ: TokenEOF}, start, nil
	case isDigit(r):
		return l.scanNumber()
	default:
		if typ, ok := operatorTable[r]; ok {
			l.next()
			return Token{Typ: typ}, start, nil
		}

		return Token{}, start, &LexerError{
			Message: fmt.Sprintf("unexpected character: %q", r),
			Loc:     start,
		}
	}
}

// scanNumber reads one or more digits, optionally followed by a decimal
// point and one or more digits. Errors point at the start of the literal.
func (l *Lexer) scanNumber() (Token, Location, error) {
	start := l.loc

	var lit strings.Builder
	for isDigit(l.peek()) {
		lit.WriteRune(l.next())
	}

	if l.peek() == '.' {
		lit.WriteRune(l.next())
		if !isDigit(l.peek()) {
			return Token{}, start, &LexerError{
				Message: "expected digits after decimal point",
				Loc:     start,
			}
		}

		for isDigit(l.peek()) {
			lit.WriteRune(l.next())
		}
	}

	v, err := strconv.ParseFloat(lit.String(), 64)
	if err != nil {
		return Token{}, start, &LexerError{
			Message: "invalid number: " + lit.String(),
			Loc:     start,
		}
	}

	return Token{Typ: TokenNumber, Value: v}, start, nil
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return EOF
	}

	return l.src[l.pos]
}

func (l *Lexer) next() rune {
	r := l.peek()
	if r == EOF {
		return EOF
	}

	l.pos++
	if r == '\n' {
		l.loc.Line++
		l.loc.Column = 1
	} else {
		l.loc.Column++
	}

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
