package grammar

import (
	"fmt"
	"strconv"

	"gavel/internal/ast"
)

// Lower converts the grammar tree into the AST built by the hand-written
// parser: and/or fold to the left, parentheses become GroupExpr.
func (p *Program) Lower() (*ast.Program, error) {
	program := &ast.Program{}
	for _, r := range p.Rules {
		rule, err := r.lower()
		if err != nil {
			return nil, err
		}
		program.Rules = append(program.Rules, rule)
	}
	return program, nil
}

func (r *Rule) lower() (*ast.Rule, error) {
	rule := &ast.Rule{Name: r.Name}
	for _, s := range r.Statements {
		cond, err := s.Condition.lower()
		if err != nil {
			return nil, err
		}
		action, ok := ast.LookupAction(s.Action)
		if !ok {
			return nil, fmt.Errorf("%s: unknown action %q", s.Pos, s.Action)
		}
		rule.Statements = append(rule.Statements, &ast.Statement{Condition: cond, Action: action})
	}
	return rule, nil
}

func (o *Or) lower() (ast.Expr, error) {
	left, err := o.Left.lower()
	if err != nil {
		return nil, err
	}
	for _, r := range o.Right {
		right, err := r.lower()
		if err != nil {
			return nil, err
		}
		left = &ast.OrExpr{Left: left, Right: right}
	}
	return left, nil
}

func (a *And) lower() (ast.Expr, error) {
	left, err := a.Left.lower()
	if err != nil {
		return nil, err
	}
	for _, r := range a.Right {
		right, err := r.lower()
		if err != nil {
			return nil, err
		}
		left = &ast.AndExpr{Left: left, Right: right}
	}
	return left, nil
}

func (n *Not) lower() (ast.Expr, error) {
	if n.Negated != nil {
		value, err := n.Negated.lower()
		if err != nil {
			return nil, err
		}
		return &ast.NotExpr{Value: value}, nil
	}
	return n.Predicate.lower()
}

func (p *Predicate) lower() (ast.Expr, error) {
	switch {
	case p.Group != nil:
		inner, err := p.Group.lower()
		if err != nil {
			return nil, err
		}
		return &ast.GroupExpr{Value: inner}, nil
	case p.In != nil:
		return &ast.InExpr{Field: p.In.Field.lower(), Set: p.In.Set}, nil
	case p.Compare != nil:
		return p.Compare.lower()
	}
	return nil, fmt.Errorf("%s: empty predicate", p.Pos)
}

func (c *Compare) lower() (ast.Expr, error) {
	left, err := c.Left.lower()
	if err != nil {
		return nil, err
	}
	op, ok := ast.LookupCompOp(c.Op)
	if !ok {
		return nil, fmt.Errorf("%s: unknown comparison operator %q", c.Pos, c.Op)
	}
	right, err := c.Right.lower()
	if err != nil {
		return nil, err
	}
	return &ast.CompareExpr{Left: left, Op: op, Right: right}, nil
}

func (o *Operand) lower() (ast.Operand, error) {
	if o.Field != nil {
		return &ast.FieldOperand{Field: o.Field.lower()}, nil
	}

	value, err := strconv.ParseInt(o.Literal.Value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid number literal %q", o.Literal.Pos, o.Literal.Value)
	}
	if o.Literal.Unit != nil {
		return &ast.DurationOperand{Value: value, Unit: *o.Literal.Unit}, nil
	}
	return &ast.NumberOperand{Value: value}, nil
}

func (f *Field) lower() ast.Field {
	return ast.NewField(f.Segments...)
}
