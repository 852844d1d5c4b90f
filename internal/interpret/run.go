package interpret

import (
	"io"
	"log/slog"
)

// Runner drives source text through scanning, parsing and evaluation.
type Runner struct {
	interpreter *Interpreter
	logger      *slog.Logger
}

// NewRunner prints statement results to out. A nil logger discards records.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		interpreter: NewInterpreter(out),
		logger:      logger,
	}
}

// Run executes source and returns the first diagnostic raised by any stage.
// Statements before a failing one have already printed their values.
func (r *Runner) Run(source string) error {
	tokens, err := Scan(source)
	if err != nil {
		r.logger.Debug("scan failed", "error", err)
		return err
	}
	r.logger.Debug("scanned", "tokens", len(tokens))

	statements, err := Parse(tokens)
	if err != nil {
		r.logger.Debug("parse failed", "error", err)
		return err
	}
	r.logger.Debug("parsed", "statements", len(statements))

	if err := r.interpreter.Execute(statements); err != nil {
		r.logger.Debug("execution failed", "error", err)
		return err
	}
	return nil
}

func Run(source string, out io.Writer) error {
	return NewRunner(out, nil).Run(source)
}
