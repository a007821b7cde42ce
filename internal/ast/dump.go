package ast

import (
	"fmt"
	"strings"
)

// Dump renders node as an indented tree for inspection.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node Node, level int) {
	pad := strings.Repeat("  ", level)

	switch n := node.(type) {
	case *Program:
		b.WriteString(pad + "Program\n")
		for _, r := range n.Rules {
			dump(b, r, level+1)
		}
	case *Rule:
		b.WriteString(fmt.Sprintf("%sRule %s\n", pad, n.Name))
		for _, st := range n.Statements {
			dump(b, st, level+1)
		}
	case *Statement:
		b.WriteString(fmt.Sprintf("%sStatement -> %s\n", pad, n.Action))
		dump(b, n.Condition, level+1)
	case *OrExpr:
		b.WriteString(pad + "Or\n")
		dump(b, n.Left, level+1)
		dump(b, n.Right, level+1)
	case *AndExpr:
		b.WriteString(pad + "And\n")
		dump(b, n.Left, level+1)
		dump(b, n.Right, level+1)
	case *NotExpr:
		b.WriteString(pad + "Not\n")
		dump(b, n.Value, level+1)
	case *GroupExpr:
		b.WriteString(pad + "Group\n")
		dump(b, n.Value, level+1)
	case *CompareExpr:
		b.WriteString(fmt.Sprintf("%sCompare %s\n", pad, n.Op))
		dump(b, n.Left, level+1)
		dump(b, n.Right, level+1)
	case *InExpr:
		b.WriteString(fmt.Sprintf("%sIn %s [%s]\n", pad, n.Field, strings.Join(n.Set, ", ")))
	case *NumberOperand:
		b.WriteString(fmt.Sprintf("%sNumber %d\n", pad, n.Value))
	case *DurationOperand:
		b.WriteString(fmt.Sprintf("%sDuration %d %s\n", pad, n.Value, n.Unit))
	case *FieldOperand:
		b.WriteString(fmt.Sprintf("%sField %s\n", pad, n.Field))
	default:
		b.WriteString(fmt.Sprintf("%s<unknown %T>\n", pad, node))
	}
}
