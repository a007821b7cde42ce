package ast

// ProgramDoc is a serialization-friendly view of a Program used for YAML and
// JSON output. Field order follows declaration order in the source.
type ProgramDoc struct {
	Rules []RuleDoc `yaml:"rules" json:"rules"`
}

type RuleDoc struct {
	Name       string         `yaml:"name" json:"name"`
	Statements []StatementDoc `yaml:"statements" json:"statements"`
}

type StatementDoc struct {
	Condition *ExprDoc `yaml:"condition" json:"condition"`
	Action    string   `yaml:"action" json:"action"`
}

type ExprDoc struct {
	Kind  string      `yaml:"kind" json:"kind"`
	Left  *ExprDoc    `yaml:"left,omitempty" json:"left,omitempty"`
	Right *ExprDoc    `yaml:"right,omitempty" json:"right,omitempty"`
	Value *ExprDoc    `yaml:"value,omitempty" json:"value,omitempty"`
	Op    string      `yaml:"op,omitempty" json:"op,omitempty"`
	LHS   *OperandDoc `yaml:"lhs,omitempty" json:"lhs,omitempty"`
	RHS   *OperandDoc `yaml:"rhs,omitempty" json:"rhs,omitempty"`
	Field string      `yaml:"field,omitempty" json:"field,omitempty"`
	Set   []string    `yaml:"set,omitempty" json:"set,omitempty"`
}

type OperandDoc struct {
	Kind  string `yaml:"kind" json:"kind"`
	Value *int64 `yaml:"value,omitempty" json:"value,omitempty"`
	Unit  string `yaml:"unit,omitempty" json:"unit,omitempty"`
	Field string `yaml:"field,omitempty" json:"field,omitempty"`
}

// Export converts p into its document form.
func Export(p *Program) *ProgramDoc {
	doc := &ProgramDoc{Rules: make([]RuleDoc, 0, len(p.Rules))}
	for _, r := range p.Rules {
		rd := RuleDoc{Name: r.Name, Statements: make([]StatementDoc, 0, len(r.Statements))}
		for _, st := range r.Statements {
			rd.Statements = append(rd.Statements, StatementDoc{
				Condition: ExportExpr(st.Condition),
				Action:    st.Action.String(),
			})
		}
		doc.Rules = append(doc.Rules, rd)
	}
	return doc
}

func ExportExpr(e Expr) *ExprDoc {
	switch v := e.(type) {
	case *OrExpr:
		return &ExprDoc{Kind: "or", Left: ExportExpr(v.Left), Right: ExportExpr(v.Right)}
	case *AndExpr:
		return &ExprDoc{Kind: "and", Left: ExportExpr(v.Left), Right: ExportExpr(v.Right)}
	case *NotExpr:
		return &ExprDoc{Kind: "not", Value: ExportExpr(v.Value)}
	case *GroupExpr:
		return &ExprDoc{Kind: "group", Value: ExportExpr(v.Value)}
	case *CompareExpr:
		return &ExprDoc{
			Kind: "compare",
			Op:   v.Op.String(),
			LHS:  exportOperand(v.Left),
			RHS:  exportOperand(v.Right),
		}
	case *InExpr:
		return &ExprDoc{Kind: "in", Field: v.Field.String(), Set: v.Set}
	}
	return nil
}

func exportOperand(op Operand) *OperandDoc {
	switch v := op.(type) {
	case *NumberOperand:
		value := v.Value
		return &OperandDoc{Kind: "number", Value: &value}
	case *DurationOperand:
		value := v.Value
		return &OperandDoc{Kind: "duration", Value: &value, Unit: v.Unit}
	case *FieldOperand:
		return &OperandDoc{Kind: "field", Field: v.Field.String()}
	}
	return nil
}
