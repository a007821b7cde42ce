package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var RulesLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Identifiers, keywords included; see promoteKeywords
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`, Action: nil},

		// Never matched directly, Ident always wins. Exists so keyword
		// tokens have their own type.
		{Name: "Keyword", Pattern: `rule|if|then|in|and|or|not|delete|mask|notify|encrypt`, Action: nil},

		// Integer literals
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// Operators, longest first
		{Name: "Operator", Pattern: `==|!=|<=|>=|[=<>]`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[{}()\[\],.;]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`, Action: nil},
	},
})

var keywords = map[string]bool{
	"rule": true, "if": true, "then": true, "in": true,
	"and": true, "or": true, "not": true,
	"delete": true, "mask": true, "notify": true, "encrypt": true,
}

var keywordType = RulesLexer.Symbols()["Keyword"]

// promoteKeywords retypes reserved identifiers so that @Ident never captures
// them.
func promoteKeywords(token lexer.Token) (lexer.Token, error) {
	if keywords[token.Value] {
		token.Type = keywordType
	}
	return token, nil
}
