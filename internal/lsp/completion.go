package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"gavel/internal/ast"
	"gavel/internal/parser"
)

func completionItems(units, fields []string) []protocol.CompletionItem {
	actions := make(map[string]bool)
	for _, name := range ast.ActionNames() {
		actions[name] = true
	}

	var keywords []string
	for kw := range parser.KEYWORDS {
		if !actions[kw] {
			keywords = append(keywords, kw)
		}
	}
	sort.Strings(keywords)

	var items []protocol.CompletionItem
	for _, kw := range keywords {
		items = append(items, completionItem(kw, protocol.CompletionItemKindKeyword, "keyword"))
	}
	for _, name := range ast.ActionNames() {
		items = append(items, completionItem(name, protocol.CompletionItemKindFunction, "action"))
	}
	for _, unit := range units {
		items = append(items, completionItem(unit, protocol.CompletionItemKindUnit, "duration unit"))
	}
	for _, field := range fields {
		items = append(items, completionItem(field, protocol.CompletionItemKindField, "field"))
	}
	return items
}

func completionItem(label string, kind protocol.CompletionItemKind, detail string) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:  label,
		Kind:   &kind,
		Detail: ptrString(detail),
	}
}
