package parser

import (
	"strconv"
	"unicode"

	"gavel/internal/ast"
)

// Scanner turns rule source into tokens. It keeps no state beyond its cursor
// and stops at the first error.
type Scanner struct {
	source      []rune
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: []rune(source),
		line:   1,
		column: 1,
	}
}

// Lex scans source completely. On failure no tokens are returned and the
// error is a *ScanError.
func Lex(source string) ([]Token, error) {
	return NewScanner(source).ScanTokens()
}

func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()

	switch {
	case unicode.IsSpace(c):
		return nil
	case isIdentStart(c):
		s.scanIdentifier()
		return nil
	case isDigit(c):
		return s.scanNumber()
	}

	switch c {
	case '{', '}', '(', ')', '[', ']', ',', '.', ';':
		s.addToken(SYMBOL)
	case '=', '>', '<':
		s.matchNext('=')
		s.addToken(OPERATOR)
	case '!':
		if !s.matchNext('=') {
			return s.unexpectedCharacter(c)
		}
		s.addToken(OPERATOR)
	default:
		return s.unexpectedCharacter(c)
	}

	return nil
}

func (s *Scanner) scanIdentifier() {
	for isIdentContinue(s.peek()) {
		s.advance()
	}
	text := string(s.source[s.start:s.current])
	s.addToken(lookupIdentifier(text))
}

func (s *Scanner) scanNumber() error {
	for isDigit(s.peek()) {
		s.advance()
	}
	text := string(s.source[s.start:s.current])

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return &ScanError{
			Kind:     InvalidNumberLiteral,
			Text:     text,
			Position: s.startPosition(),
			Length:   s.current - s.start,
		}
	}

	s.tokens = append(s.tokens, Token{
		Type:     NUMBER,
		Lexeme:   text,
		Value:    value,
		Position: s.startPosition(),
	})
	return nil
}

func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:     tokenType,
		Lexeme:   string(s.source[s.start:s.current]),
		Position: s.startPosition(),
	})
}

func (s *Scanner) startPosition() ast.Position {
	return ast.Position{Offset: s.start, Line: s.startLine, Column: s.startColumn}
}

func (s *Scanner) unexpectedCharacter(c rune) error {
	return &ScanError{
		Kind:     UnexpectedCharacter,
		Char:     c,
		Position: s.startPosition(),
		Length:   1,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentContinue(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c) || c == '_'
}
