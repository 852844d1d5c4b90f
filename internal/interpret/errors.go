package interpret

import (
	"fmt"
	"strings"
)

type ErrorType int

const (
	UNEXPECTED_CHAR_ERROR ErrorType = iota
	UNTERMINATED_STRING_ERROR
	INVALID_SYNTAX_ERROR
	EVALUATION_FAILED_ERROR
)

// Error is the diagnostic raised by every stage of the pipeline. Char is set
// only for UNEXPECTED_CHAR_ERROR.
type Error struct {
	Type    ErrorType
	Char    rune
	Line    int
	Context string
	Message string
}

func NewUnexpectedCharError(char rune, line int) *Error {
	return &Error{
		Type:    UNEXPECTED_CHAR_ERROR,
		Char:    char,
		Line:    line,
		Context: string(char),
	}
}

func NewUnterminatedStringError(line int) *Error {
	return &Error{
		Type: UNTERMINATED_STRING_ERROR,
		Line: line,
	}
}

func NewSyntaxError(token Token, line int, message string) *Error {
	return &Error{
		Type:    INVALID_SYNTAX_ERROR,
		Line:    line,
		Context: token.Lexeme,
		Message: message,
	}
}

func NewEvaluationError(operator Token, message string) *Error {
	return &Error{
		Type:    EVALUATION_FAILED_ERROR,
		Line:    operator.Line,
		Context: operator.Lexeme,
		Message: message,
	}
}

func NewEvaluationErrorf(operator Token, format string, a ...any) *Error {
	return NewEvaluationError(operator, fmt.Sprintf(format, a...))
}

// Kind renders the error type, including the offending character when there is one.
func (e *Error) Kind() string {
	switch e.Type {
	case UNEXPECTED_CHAR_ERROR:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case UNTERMINATED_STRING_ERROR:
		return "unterminated string"
	case INVALID_SYNTAX_ERROR:
		return "invalid syntax"
	case EVALUATION_FAILED_ERROR:
		return "evaluation failed"
	default:
		return "unknown error"
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[line %d] Error", e.Line)
	if e.Context != "" {
		fmt.Fprintf(&b, " at '%s'", e.Context)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}
