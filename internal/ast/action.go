package ast

import "fmt"

// Action is the effect applied when a statement's condition holds.
type Action int

const (
	Delete Action = iota
	Mask
	Notify
	Encrypt
)

var actionNames = [...]string{
	Delete:  "delete",
	Mask:    "mask",
	Notify:  "notify",
	Encrypt: "encrypt",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionNames lists the action keywords in declaration order.
func ActionNames() []string {
	names := make([]string, len(actionNames))
	copy(names, actionNames[:])
	return names
}

func LookupAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

type CompOp int

const (
	Eq CompOp = iota
	Ne
	Gt
	Lt
	Ge
	Le
)

var compOpSymbols = [...]string{
	Eq: "==",
	Ne: "!=",
	Gt: ">",
	Lt: "<",
	Ge: ">=",
	Le: "<=",
}

func (op CompOp) String() string {
	if op >= 0 && int(op) < len(compOpSymbols) {
		return compOpSymbols[op]
	}
	return fmt.Sprintf("CompOp(%d)", int(op))
}

func LookupCompOp(symbol string) (CompOp, bool) {
	for i, s := range compOpSymbols {
		if s == symbol {
			return CompOp(i), true
		}
	}
	return 0, false
}
