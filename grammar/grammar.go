package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos   lexer.Position
	Rules []*Rule `parser:"@@*"`
}

type Rule struct {
	Pos        lexer.Position
	Name       string       `parser:"\"rule\" @Ident \"{\""`
	Statements []*Statement `parser:"@@* \"}\""`
}

type Statement struct {
	Pos       lexer.Position
	Condition *Or    `parser:"\"if\" @@ \"then\""`
	Action    string `parser:"@(\"delete\" | \"mask\" | \"notify\" | \"encrypt\") \";\"?"`
}

type Or struct {
	Pos   lexer.Position
	Left  *And   `parser:"@@"`
	Right []*And `parser:"( \"or\" @@ )*"`
}

type And struct {
	Pos   lexer.Position
	Left  *Not   `parser:"@@"`
	Right []*Not `parser:"( \"and\" @@ )*"`
}

type Not struct {
	Pos       lexer.Position
	Negated   *Not       `parser:"  \"not\" @@"`
	Predicate *Predicate `parser:"| @@"`
}

type Predicate struct {
	Pos     lexer.Position
	Group   *Or      `parser:"  \"(\" @@ \")\""`
	In      *In      `parser:"| @@"`
	Compare *Compare `parser:"| @@"`
}

type In struct {
	Pos   lexer.Position
	Field *Field   `parser:"@@ \"in\""`
	Set   []string `parser:"\"[\" @Ident ( \",\" @Ident )* \"]\""`
}

type Compare struct {
	Pos   lexer.Position
	Left  *Operand `parser:"@@"`
	Op    string   `parser:"@(\"==\" | \"!=\" | \">=\" | \"<=\" | \">\" | \"<\")"`
	Right *Operand `parser:"@@"`
}

type Operand struct {
	Pos     lexer.Position
	Literal *Literal `parser:"  @@"`
	Field   *Field   `parser:"| @@"`
}

type Literal struct {
	Pos   lexer.Position
	Value string  `parser:"@Int"`
	Unit  *string `parser:"@Ident?"`
}

type Field struct {
	Pos      lexer.Position
	Segments []string `parser:"@Ident ( \".\" @Ident )*"`
}
