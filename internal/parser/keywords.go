package parser

// KEYWORDS is the fixed set of reserved words. Matching is exact and
// case-sensitive.
var KEYWORDS = map[string]struct{}{
	"rule":    {},
	"if":      {},
	"then":    {},
	"in":      {},
	"and":     {},
	"or":      {},
	"not":     {},
	"delete":  {},
	"mask":    {},
	"notify":  {},
	"encrypt": {},
}

func IsKeyword(text string) bool {
	_, ok := KEYWORDS[text]
	return ok
}

func lookupIdentifier(text string) TokenType {
	if IsKeyword(text) {
		return KEYWORD
	}
	return IDENTIFIER
}
