package arith

import "fmt"

// Parser is a recursive-descent parser with one token of lookahead.
//
// expr    → term (('+' | '-') term)*
// term    → unary (('*' | '/') unary)*
// unary   → '-' unary | primary
// primary → NUMBER | '(' expr ')'
type Parser struct {
	lexer      *Lexer
	current    Token
	currentLoc Location
}

// NewParser primes the lookahead with the first token. Fails with the
// lexer's error if the first token cannot be scanned.
func NewParser(input string) (*Parser, error) {
	lexer := NewLexer(input)
	tok, loc, err := lexer.Next()
	if err != nil {
		return nil, err
	}

	return &Parser{
		lexer:      lexer,
		current:    tok,
		currentLoc: loc,
	}, nil
}

// Parse reads one full expression and requires the input to end there.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenEOF) {
		return nil, &ParseError{
			Message: fmt.Sprintf("expected end of input, got %s", p.current),
			Loc:     p.currentLoc,
		}
	}

	return expr, nil
}

// advance returns the lookahead token and replaces it with the next one.
// Lexer errors are lifted to parse errors, keeping their location.
func (p *Parser) advance() (Token, error) {
	prev := p.current

	tok, loc, err := p.lexer.Next()
	if err != nil {
		return Token{}, parseErrorFromLexer(err.(*LexerError))
	}

	p.current = tok
	p.currentLoc = loc

	return prev, nil
}

func (p *Parser) check(typ TokenType) bool {
	return p.current.Typ == typ
}

func (p *Parser) expectAndAdvance(typ TokenType) error {
	if !p.check(typ) {
		return &ParseError{
			Message: fmt.Sprintf("expected %s, got %s", typ, p.current),
			Loc:     p.currentLoc,
		}
	}

	_, err := p.advance()
	return err
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.multiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := BinaryAddition
		if p.check(TokenMinus) {
			op = BinarySubtraction
		}

		if _, err := p.advance(); err != nil {
			return nil, err
		}

		rhs, err := p.multiplicativeExpr()
		if err != nil {
			return nil, err
		}

		// Chained operands (for example 1 - 3 + 1) fold leftward
		lhs = &BinaryExpr{
			Operation: op,
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) multiplicativeExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenMulti) || p.check(TokenDiv) {
		op := BinaryMultiplication
		if p.check(TokenDiv) {
			op = BinaryDivision
		}

		if _, err := p.advance(); err != nil {
			return nil, err
		}

		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		// Chained operands (for example 1 / 3 * 1) fold leftward
		lhs = &BinaryExpr{
			Operation: op,
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) unaryExpr() (Expr, error) {
	if p.check(TokenMinus) { // Unary negative
		if _, err := p.advance(); err != nil {
			return nil, err
		}

		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: UnaryNegative,
			Operand:   operand,
		}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch p.current.Typ {
	case TokenNumber:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}

		return &LiteralExpr{Value: tok.Value}, nil
	case TokenOpenParentheses:
		return p.parenthesisedExpression()
	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("expected expression, got %s", p.current),
			Loc:     p.currentLoc,
		}
	}
}

func (p *Parser) parenthesisedExpression() (Expr, error) {
	if _, err := p.advance(); err != nil { // Skip the opening parenthesis
		return nil, err
	}

	expr, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expectAndAdvance(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return expr, nil
}
