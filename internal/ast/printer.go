package ast

import (
	"fmt"
	"strings"
)

// The String methods print canonical rule source. Parsing the output of any
// parsed node yields a structurally equal tree, since groups are kept as
// explicit nodes rather than re-derived from precedence.

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Rules))
	for _, r := range p.Rules {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "\n\n")
}

func (r *Rule) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("rule %s {\n", r.Name))
	for _, st := range r.Statements {
		b.WriteString("    " + st.String() + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (s *Statement) String() string {
	return fmt.Sprintf("if %s then %s;", s.Condition.String(), s.Action)
}

func (o *OrExpr) String() string {
	return fmt.Sprintf("%s or %s", o.Left.String(), o.Right.String())
}

func (a *AndExpr) String() string {
	return fmt.Sprintf("%s and %s", a.Left.String(), a.Right.String())
}

func (n *NotExpr) String() string {
	return "not " + n.Value.String()
}

func (g *GroupExpr) String() string {
	return "(" + g.Value.String() + ")"
}

func (c *CompareExpr) String() string {
	return fmt.Sprintf("%s %s %s", c.Left.String(), c.Op, c.Right.String())
}

func (i *InExpr) String() string {
	return fmt.Sprintf("%s in [%s]", i.Field, strings.Join(i.Set, ", "))
}

func (n *NumberOperand) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (d *DurationOperand) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Unit)
}

func (f *FieldOperand) String() string {
	return f.Field.String()
}
