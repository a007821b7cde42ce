package parser

import "gavel/internal/ast"

// condition := or_expr
func (p *Parser) parseCondition() (ast.Expr, error) {
	return p.parseOr()
}

// or_expr := and_expr ('or' and_expr)*
func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.matchKeyword("or") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		pos, _ := p.positions.Lookup(left)
		left = &ast.OrExpr{Left: left, Right: right}
		p.positions.Set(left, pos)
	}

	return left, nil
}

// and_expr := not_expr ('and' not_expr)*
func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.matchKeyword("and") {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		pos, _ := p.positions.Lookup(left)
		left = &ast.AndExpr{Left: left, Right: right}
		p.positions.Set(left, pos)
	}

	return left, nil
}

// not_expr := 'not' not_expr | predicate
func (p *Parser) parseNot() (ast.Expr, error) {
	if p.checkKeyword("not") {
		start := p.advance()
		defer func() { p.depth-- }()
		if err := p.nest(start); err != nil {
			return nil, err
		}
		value, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		expr := &ast.NotExpr{Value: value}
		p.positions.Set(expr, start.Position)
		return expr, nil
	}
	return p.parsePredicate()
}

// predicate := '(' condition ')'
//
//	| field 'in' '[' IDENT (',' IDENT)* ']'
//	| operand comp_op operand
func (p *Parser) parsePredicate() (ast.Expr, error) {
	if p.isAtEnd() {
		return nil, p.endOfInput("condition")
	}

	start := p.peek()
	switch {
	case start.IsSymbol("("):
		p.advance()
		defer func() { p.depth-- }()
		if err := p.nest(start); err != nil {
			return nil, err
		}
		inner, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		group := &ast.GroupExpr{Value: inner}
		p.positions.Set(group, start.Position)
		return group, nil
	case start.Type != IDENTIFIER && start.Type != NUMBER:
		return nil, p.errorAtCurrent("condition")
	}

	// A field path can span several tokens, so one token of lookahead cannot
	// tell `a.b in [...]` from `a.b == c`. Try the field, and rewind unless
	// 'in' follows it.
	checkpoint := p.current
	if field, err := p.parseField(); err == nil && p.matchKeyword("in") {
		return p.parseInList(field, start)
	}
	p.current = checkpoint

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	op, err := p.parseCompOp()
	if err != nil {
		return nil, err
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	expr := &ast.CompareExpr{Left: left, Op: op, Right: right}
	p.positions.Set(expr, start.Position)
	return expr, nil
}

// parseInList parses '[' IDENT (',' IDENT)* ']' after 'in'.
func (p *Parser) parseInList(field ast.Field, start Token) (ast.Expr, error) {
	if _, err := p.expectSymbol("["); err != nil {
		return nil, err
	}

	var set []string
	for {
		member, err := p.expectIdentifier("set member")
		if err != nil {
			return nil, err
		}
		set = append(set, member.Lexeme)

		if p.matchSymbol("]") {
			break
		}
		if _, err := p.expectSymbol(","); err != nil {
			return nil, err
		}
	}

	expr := &ast.InExpr{Field: field, Set: set}
	p.positions.Set(expr, start.Position)
	return expr, nil
}

// comp_op := '==' | '!=' | '>=' | '<=' | '>' | '<'
func (p *Parser) parseCompOp() (ast.CompOp, error) {
	if p.check(OPERATOR) {
		if op, ok := ast.LookupCompOp(p.peek().Lexeme); ok {
			p.advance()
			return op, nil
		}
	}
	return 0, p.errorAtCurrent("comparison operator")
}

// operand := NUMBER [IDENT] | field
func (p *Parser) parseOperand() (ast.Operand, error) {
	if p.check(NUMBER) {
		num, err := p.expectNumber()
		if err != nil {
			return nil, err
		}

		var operand ast.Operand
		if p.check(IDENTIFIER) {
			unit := p.advance()
			operand = &ast.DurationOperand{Value: num.Value, Unit: unit.Lexeme}
		} else {
			operand = &ast.NumberOperand{Value: num.Value}
		}
		p.positions.Set(operand, num.Position)
		return operand, nil
	}

	if p.isAtEnd() {
		return nil, p.endOfInput("operand")
	}
	start := p.peek()
	field, err := p.parseField()
	if err != nil {
		return nil, err
	}
	operand := &ast.FieldOperand{Field: field}
	p.positions.Set(operand, start.Position)
	return operand, nil
}

// field := IDENT ('.' IDENT)*
func (p *Parser) parseField() (ast.Field, error) {
	first, err := p.expectIdentifier("field name")
	if err != nil {
		return ast.Field{}, err
	}

	segments := []string{first.Lexeme}
	for p.matchSymbol(".") {
		next, err := p.expectIdentifier("field name after '.'")
		if err != nil {
			return ast.Field{}, err
		}
		segments = append(segments, next.Lexeme)
	}

	return ast.Field{Segments: segments}, nil
}
