package semantic

import (
	"sort"

	"gavel/internal/ast"
)

type SymbolKind int

const (
	SymbolRule SymbolKind = iota
	SymbolField
)

type Symbol struct {
	Name     string
	Kind     SymbolKind
	Node     ast.Node
	Position ast.Position
}

// SymbolTable records the names a program declares (rules) and references
// (field paths). The first definition of a name wins.
type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

func (st *SymbolTable) Define(name string, kind SymbolKind, node ast.Node, pos ast.Position) *Symbol {
	if existing, ok := st.symbols[key(name, kind)]; ok {
		return existing
	}
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Node:     node,
		Position: pos,
	}
	st.symbols[key(name, kind)] = symbol
	return symbol
}

func (st *SymbolTable) Lookup(name string, kind SymbolKind) *Symbol {
	return st.symbols[key(name, kind)]
}

// Names returns the sorted names of all symbols of kind.
func (st *SymbolTable) Names(kind SymbolKind) []string {
	var names []string
	for _, s := range st.symbols {
		if s.Kind == kind {
			names = append(names, s.Name)
		}
	}
	sort.Strings(names)
	return names
}

func key(name string, kind SymbolKind) string {
	if kind == SymbolField {
		return "field:" + name
	}
	return "rule:" + name
}
