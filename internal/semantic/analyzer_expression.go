package semantic

import (
	"gavel/internal/ast"
)

func (a *Analyzer) analyzeExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.OrExpr:
		a.analyzeExpr(e.Left)
		a.analyzeExpr(e.Right)
	case *ast.AndExpr:
		a.analyzeExpr(e.Left)
		a.analyzeExpr(e.Right)
	case *ast.NotExpr:
		if inner, ok := e.Value.(*ast.NotExpr); ok {
			a.addDoubleNegationWarning(e, inner)
		}
		a.analyzeExpr(e.Value)
	case *ast.GroupExpr:
		a.analyzeExpr(e.Value)
	case *ast.CompareExpr:
		a.analyzeCompare(e)
	case *ast.InExpr:
		a.analyzeIn(e)
	}
}

func (a *Analyzer) analyzeCompare(cmp *ast.CompareExpr) {
	if ast.IsLiteral(cmp.Left) && ast.IsLiteral(cmp.Right) {
		a.addConstantConditionError(cmp)
	}
	a.analyzeOperand(cmp.Left)
	a.analyzeOperand(cmp.Right)
}

func (a *Analyzer) analyzeOperand(operand ast.Operand) {
	switch o := operand.(type) {
	case *ast.DurationOperand:
		if !a.units[o.Unit] {
			a.addUnknownUnitError(o)
		}
	case *ast.FieldOperand:
		a.symbols.Define(o.Field.String(), SymbolField, o, a.positionOf(o))
	}
}

func (a *Analyzer) analyzeIn(in *ast.InExpr) {
	a.symbols.Define(in.Field.String(), SymbolField, in, a.positionOf(in))

	seen := make(map[string]bool, len(in.Set))
	reported := make(map[string]bool)
	for _, member := range in.Set {
		if seen[member] && !reported[member] {
			a.addDuplicateMemberWarning(in, member)
			reported[member] = true
		}
		seen[member] = true
	}
}
