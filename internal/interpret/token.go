package interpret

import "fmt"

type TokenType int

const (
	// Single-character tokens.
	LEFT_PAREN_TOKEN TokenType = iota
	RIGHT_PAREN_TOKEN
	LEFT_BRACE_TOKEN
	RIGHT_BRACE_TOKEN
	COMMA_TOKEN
	DOT_TOKEN
	MINUS_TOKEN
	PLUS_TOKEN
	SEMICOLON_TOKEN
	SLASH_TOKEN
	STAR_TOKEN

	// One or two character tokens.
	BANG_TOKEN
	BANG_EQUAL_TOKEN
	EQUAL_TOKEN
	EQUAL_EQUAL_TOKEN
	GREATER_TOKEN
	GREATER_EQUAL_TOKEN
	LESS_TOKEN
	LESS_EQUAL_TOKEN

	// Literals.
	IDENTIFIER_TOKEN
	STRING_TOKEN
	NUMBER_TOKEN

	// Keywords.
	AND_TOKEN
	CLASS_TOKEN
	ELSE_TOKEN
	FALSE_TOKEN
	FUN_TOKEN
	FOR_TOKEN
	IF_TOKEN
	NIL_TOKEN
	OR_TOKEN
	PRINT_TOKEN
	RETURN_TOKEN
	SUPER_TOKEN
	THIS_TOKEN
	TRUE_TOKEN
	VAR_TOKEN
	WHILE_TOKEN

	EOF_TOKEN
)

var tokenNames = [...]string{
	LEFT_PAREN_TOKEN:    "LEFT_PAREN",
	RIGHT_PAREN_TOKEN:   "RIGHT_PAREN",
	LEFT_BRACE_TOKEN:    "LEFT_BRACE",
	RIGHT_BRACE_TOKEN:   "RIGHT_BRACE",
	COMMA_TOKEN:         "COMMA",
	DOT_TOKEN:           "DOT",
	MINUS_TOKEN:         "MINUS",
	PLUS_TOKEN:          "PLUS",
	SEMICOLON_TOKEN:     "SEMICOLON",
	SLASH_TOKEN:         "SLASH",
	STAR_TOKEN:          "STAR",
	BANG_TOKEN:          "BANG",
	BANG_EQUAL_TOKEN:    "BANG_EQUAL",
	EQUAL_TOKEN:         "EQUAL",
	EQUAL_EQUAL_TOKEN:   "EQUAL_EQUAL",
	GREATER_TOKEN:       "GREATER",
	GREATER_EQUAL_TOKEN: "GREATER_EQUAL",
	LESS_TOKEN:          "LESS",
	LESS_EQUAL_TOKEN:    "LESS_EQUAL",
	IDENTIFIER_TOKEN:    "IDENTIFIER",
	STRING_TOKEN:        "STRING",
	NUMBER_TOKEN:        "NUMBER",
	AND_TOKEN:           "AND",
	CLASS_TOKEN:         "CLASS",
	ELSE_TOKEN:          "ELSE",
	FALSE_TOKEN:         "FALSE",
	FUN_TOKEN:           "FUN",
	FOR_TOKEN:           "FOR",
	IF_TOKEN:            "IF",
	NIL_TOKEN:           "NIL",
	OR_TOKEN:            "OR",
	PRINT_TOKEN:         "PRINT",
	RETURN_TOKEN:        "RETURN",
	SUPER_TOKEN:         "SUPER",
	THIS_TOKEN:          "THIS",
	TRUE_TOKEN:          "TRUE",
	VAR_TOKEN:           "VAR",
	WHILE_TOKEN:         "WHILE",
	EOF_TOKEN:           "EOF",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[t]
}

// keywords is read-only after package initialization.
var keywords = map[string]TokenType{
	"and":    AND_TOKEN,
	"class":  CLASS_TOKEN,
	"else":   ELSE_TOKEN,
	"false":  FALSE_TOKEN,
	"fun":    FUN_TOKEN,
	"for":    FOR_TOKEN,
	"if":     IF_TOKEN,
	"nil":    NIL_TOKEN,
	"or":     OR_TOKEN,
	"print":  PRINT_TOKEN,
	"return": RETURN_TOKEN,
	"super":  SUPER_TOKEN,
	"this":   THIS_TOKEN,
	"true":   TRUE_TOKEN,
	"var":    VAR_TOKEN,
	"while":  WHILE_TOKEN,
}

// Token is a lexeme of the source together with its classification. Lexeme is
// a substring of the scanned source. Literal is only meaningful for NUMBER,
// STRING, TRUE, FALSE and NIL tokens.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Value
	Line    int
}

func (t Token) String() string {
	switch t.Type {
	case NUMBER_TOKEN, STRING_TOKEN, TRUE_TOKEN, FALSE_TOKEN, NIL_TOKEN:
		return fmt.Sprintf("%s %q %s", t.Type, t.Lexeme, t.Literal)
	default:
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	}
}
