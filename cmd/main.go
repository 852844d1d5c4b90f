package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ian-shakespeare/liblox/internal/config"
	"github.com/ian-shakespeare/liblox/internal/interpret"
	"github.com/ian-shakespeare/liblox/internal/logs"
)

// sysexits(3) codes, as used by other Lox implementations.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
	exitConfig   = 78
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage:
  lox [flags]                 start an interactive session
  lox [flags] <script>        run a script file
  lox [flags] check <suite>…  run YAML test suites
  lox [flags] serve           start the HTTP playground

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	logger, err := logs.New(os.Stderr, cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}
	slog.SetDefault(logger)

	args := flag.Args()
	switch {
	case len(args) == 0:
		os.Exit(runREPL(cfg.REPL, logger))
	case args[0] == "check":
		os.Exit(runCheck(args[1:], os.Stdout))
	case args[0] == "serve" && len(args) == 1:
		os.Exit(runServe(cfg.Server, logger))
	case len(args) == 1:
		os.Exit(runFile(args[0], logger))
	default:
		usage()
		os.Exit(exitUsage)
	}
}

func runFile(path string, logger *slog.Logger) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read script: %v\n", err)
		return exitNoInput
	}

	logger.Debug("running script", "path", path, "bytes", len(source))
	if err := interpret.NewRunner(os.Stdout, logger).Run(string(source)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps scan and parse diagnostics to a data error and evaluation
// failures to a software error.
func exitCode(err error) int {
	var diag *interpret.Error
	if !errors.As(err, &diag) {
		return exitFailure
	}
	if diag.Type == interpret.EVALUATION_FAILED_ERROR {
		return exitSoftware
	}
	return exitDataErr
}
