package parser

import "gavel/internal/ast"

// Parser is a recursive-descent parser over a complete token sequence. The
// cursor only moves forward, except for the single checkpoint in
// parsePredicate.
type Parser struct {
	tokens    []Token
	current   int
	depth     int
	positions ast.PositionTable
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:    tokens,
		positions: ast.NewPositionTable(),
	}
}

// Parse builds a Program from tokens. On failure the error is a *ParseError
// and no program is returned.
func Parse(tokens []Token) (*ast.Program, error) {
	return NewParser(tokens).ParseProgram()
}

// ParseCondition parses tokens as a single condition that must consume the
// whole sequence.
func ParseCondition(tokens []Token) (ast.Expr, error) {
	return NewParser(tokens).ParseCondition()
}

// Positions returns the source positions recorded for the nodes built so far.
func (p *Parser) Positions() ast.PositionTable {
	return p.positions
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	p.positions.Set(program, ast.Position{Offset: 0, Line: 1, Column: 1})

	for !p.isAtEnd() {
		if !p.checkKeyword("rule") {
			return nil, p.unexpected(p.peek())
		}
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		program.Rules = append(program.Rules, rule)
	}

	return program, nil
}

func (p *Parser) ParseCondition() (ast.Expr, error) {
	expr, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.unexpected(p.peek())
	}
	return expr, nil
}

// rule := 'rule' IDENT '{' statement* '}'
func (p *Parser) parseRule() (*ast.Rule, error) {
	start, err := p.expectKeyword("rule")
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier("rule name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("{"); err != nil {
		return nil, err
	}

	rule := &ast.Rule{Name: name.Lexeme}
	p.positions.Set(rule, start.Position)

	for !p.matchSymbol("}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		rule.Statements = append(rule.Statements, stmt)
	}

	return rule, nil
}

// statement := 'if' condition 'then' action [';']
func (p *Parser) parseStatement() (*ast.Statement, error) {
	start, err := p.expectKeyword("if")
	if err != nil {
		return nil, err
	}
	condition, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	action, err := p.parseAction()
	if err != nil {
		return nil, err
	}
	p.matchSymbol(";")

	stmt := &ast.Statement{Condition: condition, Action: action}
	p.positions.Set(stmt, start.Position)
	return stmt, nil
}

// action := 'delete' | 'mask' | 'notify' | 'encrypt'
func (p *Parser) parseAction() (ast.Action, error) {
	if !p.check(KEYWORD) {
		return 0, p.errorAtCurrent("action keyword")
	}
	action, ok := ast.LookupAction(p.peek().Lexeme)
	if !ok {
		return 0, p.errorAtCurrent("action keyword")
	}
	p.advance()
	return action, nil
}
