package ast

// PositionTable maps nodes to the source position of their first token.
// Nodes themselves carry no positions so that two parses of equivalent text
// compare equal; the parser fills this table alongside the tree.
type PositionTable map[Node]Position

func NewPositionTable() PositionTable {
	return make(PositionTable)
}

func (t PositionTable) Set(n Node, pos Position) {
	t[n] = pos
}

// Lookup returns the recorded position of n. The zero Position is returned
// for nodes that were not produced by a parser.
func (t PositionTable) Lookup(n Node) (Position, bool) {
	if t == nil {
		return Position{}, false
	}
	pos, ok := t[n]
	return pos, ok
}
