package arith

import (
	"errors"
	"fmt"
)

type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

type LexerError struct {
	Message string
	Loc     Location
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error at %s: %s", e.Loc, e.Message)
}

type ParseError struct {
	Message string
	Loc     Location
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Loc, e.Message)
}

func parseErrorFromLexer(err *LexerError) *ParseError {
	return &ParseError{
		Message: err.Message,
		Loc:     err.Loc,
	}
}

// Evaluation errors carry no location; they are properties of computed
// values, not of source positions.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("numeric overflow")
	ErrUnderflow      = errors.New("numeric underflow")
)
