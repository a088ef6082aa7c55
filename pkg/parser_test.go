package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser(t *testing.T) {
	cases := []struct {
		data   string
		expect Expr
	}{
		{
			"5",
			&LiteralExpr{5},
		},
		{
			"2 + 3",
			&BinaryExpr{BinaryAddition, &LiteralExpr{2}, &LiteralExpr{3}},
		},
		{
			"2 + 3 * 4",
			&BinaryExpr{
				BinaryAddition,
				&LiteralExpr{2},
				&BinaryExpr{BinaryMultiplication, &LiteralExpr{3}, &LiteralExpr{4}},
			},
		},
		{
			"10 - 2 - 3",
			&BinaryExpr{
				BinarySubtraction,
				&BinaryExpr{BinarySubtraction, &LiteralExpr{10}, &LiteralExpr{2}},
				&LiteralExpr{3},
			},
		},
		{
			"100 / 10 / 2",
			&BinaryExpr{
				BinaryDivision,
				&BinaryExpr{BinaryDivision, &LiteralExpr{100}, &LiteralExpr{10}},
				&LiteralExpr{2},
			},
		},
		{
			"(2 + 3) * 4",
			&BinaryExpr{
				BinaryMultiplication,
				&BinaryExpr{BinaryAddition, &LiteralExpr{2}, &LiteralExpr{3}},
				&LiteralExpr{4},
			},
		},
		{
			"-5",
			&UnaryExpr{UnaryNegative, &LiteralExpr{5}},
		},
		{
			"--5",
			&UnaryExpr{UnaryNegative, &UnaryExpr{UnaryNegative, &LiteralExpr{5}}},
		},
		{
			"2 * -3",
			&BinaryExpr{
				BinaryMultiplication,
				&LiteralExpr{2},
				&UnaryExpr{UnaryNegative, &LiteralExpr{3}},
			},
		},
		{
			"((1.5))",
			&LiteralExpr{1.5},
		},
	}

	for _, c := range cases {
		p, err := NewParser(c.data)
		assert.NoError(t, err)

		expr, err := p.Parse()
		assert.NoError(t, err)
		assert.Equal(t, c.expect, expr)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		data    string
		message string
		loc     Location
	}{
		{"(2 + 3", "expected ')', got end of input", Location{1, 7}},
		{"2 ++ 3", "expected expression, got '+'", Location{1, 4}},
		{"2 3", "expected end of input, got number 3", Location{1, 3}},
		{"2 + 3)", "expected end of input, got ')'", Location{1, 6}},
		{"()", "expected expression, got ')'", Location{1, 2}},
		{"", "expected expression, got end of input", Location{1, 1}},
		{"*2", "expected expression, got '*'", Location{1, 1}},
	}

	for _, c := range cases {
		p, err := NewParser(c.data)
		assert.NoError(t, err)

		_, err = p.Parse()
		var parseErr *ParseError
		if assert.ErrorAs(t, err, &parseErr) {
			assert.Equal(t, c.message, parseErr.Message)
			assert.Equal(t, c.loc, parseErr.Loc)
		}
	}
}

func TestParserLiftsLexerError(t *testing.T) {
	// The first token scans fine; the lexer fails mid-parse and the error
	// surfaces as a parse error with the lexer's location.
	p, err := NewParser("2 + @")
	assert.NoError(t, err)

	_, err = p.Parse()
	var parseErr *ParseError
	if assert.ErrorAs(t, err, &parseErr) {
		assert.Equal(t, "unexpected character: '@'", parseErr.Message)
		assert.Equal(t, Location{1, 5}, parseErr.Loc)
	}
}

func TestParserFirstTokenLexerError(t *testing.T) {
	_, err := NewParser("@")

	var lexErr *LexerError
	if assert.ErrorAs(t, err, &lexErr) {
		assert.Equal(t, Location{1, 1}, lexErr.Loc)
	}
}

func TestParserErrorLocationAcrossLines(t *testing.T) {
	p, err := NewParser("1 +\n+")
	assert.NoError(t, err)

	_, err = p.Parse()
	var parseErr *ParseError
	if assert.ErrorAs(t, err, &parseErr) {
		assert.Equal(t, Location{2, 1}, parseErr.Loc)
	}
}
