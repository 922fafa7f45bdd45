package dsl

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PlanLexer defines the lexical structure of .plan files
var PlanLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - shell style (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive)
	{Name: "KwWall", Pattern: `(?i)\bwall\b`},
	{Name: "KwDoor", Pattern: `(?i)\bdoor\b`},
	{Name: "KwWindow", Pattern: `(?i)\bwindow\b`},
	{Name: "KwAt", Pattern: `(?i)\bat\b`},

	// Punctuation
	{Name: "Arrow", Pattern: `->`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Semicolon", Pattern: `;`},

	{Name: "Number", Pattern: `[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`},

	// Anything else is an identifier the grammar will reject
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
