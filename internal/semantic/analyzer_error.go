package semantic

import (
	"strconv"

	"gavel/internal/ast"
	"gavel/internal/errors"
)

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) addDuplicateRuleError(name string, pos, first ast.Position) {
	a.addCompilerError(errors.DuplicateRule(name, pos, first))
}

func (a *Analyzer) addUnknownUnitError(d *ast.DurationOperand) {
	err := errors.UnknownDurationUnit(d.Unit, a.positionOf(d), a.unitNames)
	// The span covers the number and the unit.
	err.Length = len(strconv.FormatInt(d.Value, 10)) + 1 + len([]rune(d.Unit))
	a.addCompilerError(err)
}

func (a *Analyzer) addConstantConditionError(cmp *ast.CompareExpr) {
	a.addCompilerError(errors.ConstantCondition(cmp.String(), a.positionOf(cmp)))
}

func (a *Analyzer) addDuplicateMemberWarning(in *ast.InExpr, member string) {
	a.addCompilerError(errors.DuplicateSetMember(member, in.Field.String(), a.positionOf(in)))
}

func (a *Analyzer) addDoubleNegationWarning(outer, inner *ast.NotExpr) {
	a.addCompilerError(errors.DoubleNegation(inner.Value.String(), a.positionOf(outer)))
}
