package interpret_test

import (
	"testing"

	"github.com/ian-shakespeare/liblox/internal/interpret"
	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	t.Parallel()

	plus := interpret.Token{Type: interpret.PLUS_TOKEN, Lexeme: "+", Line: 4}

	errs := []struct {
		name   string
		err    *interpret.Error
		expect string
	}{
		{
			"unexpectedChar",
			interpret.NewUnexpectedCharError('~', 3),
			"[line 3] Error at '~': unexpected character '~'",
		},
		{
			"unterminatedString",
			interpret.NewUnterminatedStringError(2),
			"[line 2] Error: unterminated string",
		},
		{
			"invalidSyntax",
			interpret.NewSyntaxError(interpret.Token{Type: interpret.STAR_TOKEN, Lexeme: "*", Line: 1}, 1, "Expect expression."),
			"[line 1] Error at '*': invalid syntax: Expect expression.",
		},
		{
			"invalidSyntaxAtEnd",
			interpret.NewSyntaxError(interpret.Token{Type: interpret.EOF_TOKEN, Line: 1}, 1, "Expect ')' after expression."),
			"[line 1] Error: invalid syntax: Expect ')' after expression.",
		},
		{
			"evaluationFailed",
			interpret.NewEvaluationErrorf(plus, "Unsupported types for %s", plus.Lexeme),
			"[line 4] Error at '+': evaluation failed: Unsupported types for +",
		},
	}

	for _, input := range errs {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, input.expect, input.err.Error())
		})
	}
}
