package semantic

import (
	"gavel/internal/ast"
	"gavel/internal/errors"
)

// DefaultUnits are the duration units accepted without configuration.
var DefaultUnits = []string{
	"ms",
	"s", "sec", "secs", "second", "seconds",
	"m", "min", "mins", "minute", "minutes",
	"h", "hour", "hours",
	"d", "day", "days",
	"w", "week", "weeks",
}

type Options struct {
	// Units extends DefaultUnits.
	Units []string

	// WarningsAsErrors reports every warning at error level.
	WarningsAsErrors bool
}

// Analyzer runs static checks over a parsed program. Checks never change the
// program; they only report diagnostics.
type Analyzer struct {
	opts      Options
	units     map[string]bool
	unitNames []string
	positions ast.PositionTable
	errors    []errors.CompilerError
	symbols   *SymbolTable
}

func NewAnalyzer(opts Options) *Analyzer {
	a := &Analyzer{
		opts:  opts,
		units: make(map[string]bool),
	}
	for _, u := range append(append([]string{}, DefaultUnits...), opts.Units...) {
		if !a.units[u] {
			a.units[u] = true
			a.unitNames = append(a.unitNames, u)
		}
	}
	return a
}

// Analyze checks program and returns its diagnostics in source order.
// positions may be nil, in which case diagnostics carry no location.
func (a *Analyzer) Analyze(program *ast.Program, positions ast.PositionTable) []errors.CompilerError {
	a.positions = positions
	a.errors = make([]errors.CompilerError, 0)
	a.symbols = NewSymbolTable()

	if program == nil {
		return a.errors
	}

	for _, rule := range program.Rules {
		a.analyzeRule(rule)
	}

	if a.opts.WarningsAsErrors {
		for i := range a.errors {
			a.errors[i] = errors.Promote(a.errors[i])
		}
	}
	return a.errors
}

// Symbols returns the rules and fields seen by the last Analyze call.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

// KnownUnits lists the accepted duration units, defaults first.
func (a *Analyzer) KnownUnits() []string {
	return append([]string{}, a.unitNames...)
}

func (a *Analyzer) analyzeRule(rule *ast.Rule) {
	pos := a.positionOf(rule)

	if existing := a.symbols.Lookup(rule.Name, SymbolRule); existing != nil {
		a.addDuplicateRuleError(rule.Name, pos, existing.Position)
	} else {
		a.symbols.Define(rule.Name, SymbolRule, rule, pos)
	}

	if len(rule.Statements) == 0 {
		a.addCompilerError(errors.EmptyRule(rule.Name, pos))
	}

	for _, stmt := range rule.Statements {
		a.analyzeExpr(stmt.Condition)
	}
}

func (a *Analyzer) positionOf(node ast.Node) ast.Position {
	pos, _ := a.positions.Lookup(node)
	return pos
}
