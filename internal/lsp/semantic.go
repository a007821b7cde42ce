package lsp

import (
	"gavel/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the lexer's tokens. It works from the
// token stream alone, so highlighting survives parse errors.
func collectSemanticTokens(tokens []parser.Token) []SemanticToken {
	var out []SemanticToken
	inSet := false

	for i, tok := range tokens {
		var prev *parser.Token
		if i > 0 {
			prev = &tokens[i-1]
		}

		switch tok.Type {
		case parser.KEYWORD:
			out = append(out, makeToken(tok, "keyword", 0)...)
		case parser.NUMBER:
			out = append(out, makeToken(tok, "number", 0)...)
		case parser.OPERATOR:
			out = append(out, makeToken(tok, "operator", 0)...)
		case parser.SYMBOL:
			switch tok.Lexeme {
			case "[":
				inSet = true
			case "]":
				inSet = false
			}
		case parser.IDENTIFIER:
			switch {
			case prev != nil && prev.IsKeyword("rule"):
				out = append(out, makeToken(tok, "class", 1)...)
			case prev != nil && prev.Type == parser.NUMBER:
				// Duration unit
				out = append(out, makeToken(tok, "type", 0)...)
			case inSet:
				out = append(out, makeToken(tok, "enumMember", 0)...)
			default:
				out = append(out, makeToken(tok, "property", 0)...)
			}
		}
	}

	return out
}

// encodeSemanticTokens encodes tokens into LSP wire format using delta-line,
// delta-start compression. tokens must be in source order.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

func makeToken(tok parser.Token, tokenType string, declModifier int) []SemanticToken {
	if tok.Lexeme == "" || !tok.Position.IsValid() {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(tok.Length()),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
