package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ian-shakespeare/liblox/internal/suite"
)

func runCheck(paths []string, out io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "check: no suite files given")
		return exitUsage
	}

	failed := 0
	for _, path := range paths {
		s, err := suite.LoadFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "check %s: %v\n", path, err)
			return exitNoInput
		}

		fmt.Fprintf(out, "# %s (%s)\n", s.Name, path)
		for result := range suite.Check(s) {
			fmt.Fprintln(out, result)
			if !result.Passed() {
				failed++
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(out, "%d case(s) failed\n", failed)
		return exitFailure
	}
	return exitOK
}
