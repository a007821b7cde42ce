package parser

import "gavel/internal/ast"

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

// peek returns the current token. Callers check isAtEnd first.
func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	p.current++
	return tok
}

func (p *Parser) check(tt TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == tt
}

func (p *Parser) checkKeyword(kw string) bool {
	return !p.isAtEnd() && p.peek().IsKeyword(kw)
}

func (p *Parser) checkSymbol(sym string) bool {
	return !p.isAtEnd() && p.peek().IsSymbol(sym)
}

func (p *Parser) matchKeyword(kw string) bool {
	if p.checkKeyword(kw) {
		p.current++
		return true
	}
	return false
}

func (p *Parser) matchSymbol(sym string) bool {
	if p.checkSymbol(sym) {
		p.current++
		return true
	}
	return false
}

func (p *Parser) expectKeyword(kw string) (Token, error) {
	if p.checkKeyword(kw) {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent("'" + kw + "'")
}

func (p *Parser) expectSymbol(sym string) (Token, error) {
	if p.checkSymbol(sym) {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent("'" + sym + "'")
}

func (p *Parser) expectIdentifier(description string) (Token, error) {
	if p.check(IDENTIFIER) {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent(description)
}

func (p *Parser) expectNumber() (Token, error) {
	if p.check(NUMBER) {
		return p.advance(), nil
	}
	return Token{}, p.errorAtCurrent("number")
}

// errorAtCurrent reports that expected was wanted at the cursor.
func (p *Parser) errorAtCurrent(expected string) error {
	if p.isAtEnd() {
		return p.endOfInput(expected)
	}
	found := p.peek()
	return &ParseError{Kind: ExpectedButFound, Expected: expected, Found: &found, End: p.endPosition()}
}

// nest enters one level of parentheses or negation at tok. Callers pair it
// with a deferred p.depth--.
func (p *Parser) nest(tok Token) error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return &ParseError{Kind: NestingTooDeep, Found: &tok, End: p.endPosition()}
	}
	return nil
}

func (p *Parser) unexpected(tok Token) error {
	return &ParseError{Kind: UnexpectedToken, Found: &tok, End: p.endPosition()}
}

func (p *Parser) endOfInput(expected string) error {
	return &ParseError{Kind: UnexpectedEndOfInput, Expected: expected, End: p.endPosition()}
}

// endPosition is the position just past the last token.
func (p *Parser) endPosition() ast.Position {
	if len(p.tokens) == 0 {
		return ast.Position{Offset: 0, Line: 1, Column: 1}
	}
	last := p.tokens[len(p.tokens)-1]
	width := last.Length()
	return ast.Position{
		Offset: last.Position.Offset + width,
		Line:   last.Position.Line,
		Column: last.Position.Column + width,
	}
}
