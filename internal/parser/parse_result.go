package parser

import "gavel/internal/ast"

// ParseResult bundles a parsed program with the tokens it came from and the
// positions of its nodes.
type ParseResult struct {
	Program   *ast.Program
	Tokens    []Token
	Positions ast.PositionTable
}

// PositionOf returns the source position of node, if it was produced by this
// parse.
func (pr *ParseResult) PositionOf(node ast.Node) (ast.Position, bool) {
	return pr.Positions.Lookup(node)
}

// RuleNames lists rule names in declaration order.
func (pr *ParseResult) RuleNames() []string {
	if pr.Program == nil {
		return nil
	}
	names := make([]string, 0, len(pr.Program.Rules))
	for _, r := range pr.Program.Rules {
		names = append(names, r.Name)
	}
	return names
}
