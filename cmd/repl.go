package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ian-shakespeare/liblox/internal/config"
	"github.com/ian-shakespeare/liblox/internal/interpret"
)

func runREPL(cfg config.REPL, logger *slog.Logger) int {
	historyFile := cfg.HistoryFile
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".lox_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	defer rl.Close()

	repl(rl, interpret.NewRunner(rl.Stdout(), logger), rl.Stderr())
	return exitOK
}

type lineReader interface {
	Readline() (string, error)
}

// repl reads until EOF or "exit". Diagnostics are reported and the session
// continues; Ctrl-C discards the current line.
func repl(r lineReader, runner *interpret.Runner, errOut io.Writer) {
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		if err := runner.Run(line); err != nil {
			fmt.Fprintln(errOut, err)
		}
	}
}
