package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "rule if then in and or not delete mask notify encrypt customIdent Rule IF"
	expected := []TokenType{
		KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD,
		KEYWORD, KEYWORD, KEYWORD, KEYWORD, IDENTIFIER, IDENTIFIER, IDENTIFIER,
	}

	tokens, err := Lex(input)
	require.NoError(t, err)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d (%q): expected %s, got %s", i, tokens[i].Lexeme, exp, tokens[i].Type)
		}
	}
}

func TestKeywordIdentifierBoundary(t *testing.T) {
	input := "delete123 ruler _if notify_me maské"
	expectedLexemes := []string{"delete123", "ruler", "_if", "notify_me", "maské"}

	tokens, err := Lex(input)
	require.NoError(t, err)
	require.Len(t, tokens, len(expectedLexemes))

	for i, exp := range expectedLexemes {
		if tokens[i].Type != IDENTIFIER {
			t.Errorf("token %d: expected IDENTIFIER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp, tokens[i].Lexeme)
		}
	}
}

func TestNumbers(t *testing.T) {
	tokens, err := Lex("0 42 007 9223372036854775807")
	require.NoError(t, err)

	expected := []int64{0, 42, 7, 9223372036854775807}
	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		if tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected NUMBER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Value != exp {
			t.Errorf("token %d: expected value %d, got %d", i, exp, tokens[i].Value)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	tokens, err := Lex("x > 9223372036854775808")
	assert.Nil(t, tokens)

	var scanErr *ScanError
	require.True(t, errors.As(err, &scanErr), "expected *ScanError, got %T", err)
	assert.Equal(t, InvalidNumberLiteral, scanErr.Kind)
	assert.Equal(t, "9223372036854775808", scanErr.Text)
	assert.Equal(t, 4, scanErr.Position.Offset)
	assert.Equal(t, 19, scanErr.Length)
	assert.Contains(t, scanErr.Error(), "invalid number literal")
}

func TestNumberFollowedByIdentifier(t *testing.T) {
	// The scanner does not decide what a unit is; that is left to the parser.
	tokens, err := Lex("30days")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, int64(30), tokens[0].Value)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)
	assert.Equal(t, "days", tokens[1].Lexeme)
}

func TestOperatorsAndSymbols(t *testing.T) {
	input := `{ } ( ) [ ] , . ; == != >= <= = > <`
	expected := []TokenType{
		SYMBOL, SYMBOL, SYMBOL, SYMBOL, SYMBOL, SYMBOL, SYMBOL, SYMBOL, SYMBOL,
		OPERATOR, OPERATOR, OPERATOR, OPERATOR, OPERATOR, OPERATOR, OPERATOR,
	}
	expectedLexemes := []string{"{", "}", "(", ")", "[", "]", ",", ".", ";", "==", "!=", ">=", "<=", "=", ">", "<"}

	tokens, err := Lex(input)
	require.NoError(t, err)
	require.Len(t, tokens, len(expected))

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme '%s', got '%s'", i, expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestMaximalMunchOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"==", []string{"=="}},
		{"=", []string{"="}},
		{"===", []string{"==", "="}},
		{"=>", []string{"=", ">"}},
		{">==", []string{">=", "="}},
		{"<<=", []string{"<", "<="}},
		{"a!=b", []string{"a", "!=", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.NoError(t, err)

			var got []string
			for _, tok := range tokens {
				got = append(got, tok.Lexeme)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		char   rune
		offset int
	}{
		{"at sign", "age @ 5", '@', 4},
		{"lone bang", "a ! b", '!', 2},
		{"bang at end", "a !", '!', 2},
		{"counts characters not bytes", "é@", '@', 1},
		{"quote", `name == "x"`, '"', 8},
		{"first character", "#", '#', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			assert.Nil(t, tokens)

			var scanErr *ScanError
			require.True(t, errors.As(err, &scanErr), "expected *ScanError, got %T", err)
			assert.Equal(t, UnexpectedCharacter, scanErr.Kind)
			assert.Equal(t, tt.char, scanErr.Char)
			assert.Equal(t, tt.offset, scanErr.Position.Offset)
		})
	}
}

func TestUnexpectedCharacterMessage(t *testing.T) {
	_, err := Lex("a @")
	require.Error(t, err)
	assert.Equal(t, "unexpected character '@' at position 2", err.Error())
}

func TestWhitespaceOnly(t *testing.T) {
	tokens, err := Lex(" \t\r\n  ")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = Lex("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenPositions(t *testing.T) {
	input := "rule r {\n  if x > 1 then mask\n}"
	tokens, err := Lex(input)
	require.NoError(t, err)

	expected := []struct {
		typ    TokenType
		lexeme string
		offset int
		line   int
		column int
	}{
		{KEYWORD, "rule", 0, 1, 1},
		{IDENTIFIER, "r", 5, 1, 6},
		{SYMBOL, "{", 7, 1, 8},
		{KEYWORD, "if", 11, 2, 3},
		{IDENTIFIER, "x", 14, 2, 6},
		{OPERATOR, ">", 16, 2, 8},
		{NUMBER, "1", 18, 2, 10},
		{KEYWORD, "then", 20, 2, 12},
		{KEYWORD, "mask", 25, 2, 17},
		{SYMBOL, "}", 30, 3, 1},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		tok := tokens[i]
		if tok.Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tok.Lexeme)
		}
		if tok.Position.Offset != exp.offset {
			t.Errorf("token %d: expected offset %d, got %d", i, exp.offset, tok.Position.Offset)
		}
		if tok.Position.Line != exp.line {
			t.Errorf("token %d: expected line %d, got %d", i, exp.line, tok.Position.Line)
		}
		if tok.Position.Column != exp.column {
			t.Errorf("token %d: expected column %d, got %d", i, exp.column, tok.Position.Column)
		}
	}
}

func TestTokenString(t *testing.T) {
	tokens, err := Lex("then age 18 { ==")
	require.NoError(t, err)

	expected := []string{"keyword 'then'", "identifier 'age'", "number 18", "symbol '{'", "operator '=='"}
	for i, exp := range expected {
		assert.Equal(t, exp, tokens[i].String())
	}
}
