package ast

type Node interface {
	NodeType() NodeType
	String() string
}

// Program is an ordered list of rules in declaration order.
type Program struct {
	Rules []*Rule
}

// Rule is a named collection of if/then statements.
type Rule struct {
	Name       string
	Statements []*Statement
}

type Statement struct {
	Condition Expr
	Action    Action
}

func (*Program) NodeType() NodeType   { return PROGRAM }
func (*Rule) NodeType() NodeType      { return RULE }
func (*Statement) NodeType() NodeType { return STATEMENT }

func (*OrExpr) NodeType() NodeType      { return OR_EXPR }
func (*AndExpr) NodeType() NodeType     { return AND_EXPR }
func (*NotExpr) NodeType() NodeType     { return NOT_EXPR }
func (*GroupExpr) NodeType() NodeType   { return GROUP_EXPR }
func (*CompareExpr) NodeType() NodeType { return COMPARE_EXPR }
func (*InExpr) NodeType() NodeType      { return IN_EXPR }

func (*NumberOperand) NodeType() NodeType   { return NUMBER_OPERAND }
func (*DurationOperand) NodeType() NodeType { return DURATION_OPERAND }
func (*FieldOperand) NodeType() NodeType    { return FIELD_OPERAND }

// RuleByName returns the first rule with the given name.
func (p *Program) RuleByName(name string) (*Rule, bool) {
	for _, r := range p.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}
