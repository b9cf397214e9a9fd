package ebnf

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// --- Surface syntax --------------------------------------------------------

var ebnfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Define", Pattern: `:=`},
	{Name: "Punct", Pattern: `[;|\[\]{}()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var ebnfParser = participle.MustBuild[grammarSyntax](
	participle.Lexer(ebnfLexer),
	participle.Elide("Whitespace", "Comment"),
)

type grammarSyntax struct {
	Rules []*ruleSyntax `parser:"@@*"`
}

type ruleSyntax struct {
	Pos  lexer.Position
	Name string      `parser:"@Ident ':='"`
	Expr *exprSyntax `parser:"@@ ';'"`
}

// exprSyntax is a set of alternatives separated by '|'.
type exprSyntax struct {
	Alternatives []*seqSyntax `parser:"@@ ( '|' @@ )*"`
}

type seqSyntax struct {
	Terms []*termSyntax `parser:"@@+"`
}

type termSyntax struct {
	Pos      lexer.Position
	Name     string      `parser:"  @Ident"`
	Optional *exprSyntax `parser:"| '[' @@ ']'"`
	Repeated *exprSyntax `parser:"| '{' @@ '}'"`
	Group    *exprSyntax `parser:"| '(' @@ ')'"`
}

func parseSyntax(text string) (*grammarSyntax, error) {
	return ebnfParser.ParseString("grammar", text)
}
