package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/chzyer/readline"
	"github.com/ian-shakespeare/liblox/internal/interpret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
	errs  []error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line, err := r.lines[0], r.errs[0]
	r.lines, r.errs = r.lines[1:], r.errs[1:]
	return line, err
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	_, scanErr := interpret.Scan("~")
	assert.Equal(t, exitDataErr, exitCode(scanErr))

	var out bytes.Buffer
	assert.Equal(t, exitDataErr, exitCode(interpret.Run("(1", &out)))
	assert.Equal(t, exitSoftware, exitCode(interpret.Run("-nil", &out)))
	assert.Equal(t, exitFailure, exitCode(errors.New("disk on fire")))
}

func TestREPL(t *testing.T) {
	t.Parallel()

	r := &scriptedReader{
		lines: []string{"1 + 2", "", "1 + \"a\"", "half", "\"still here\"", "exit", "99"},
		errs:  []error{nil, nil, nil, readline.ErrInterrupt, nil, nil, nil},
	}

	var out, errOut bytes.Buffer
	repl(r, interpret.NewRunner(&out, nil), &errOut)

	assert.Equal(t, "3\nstill here\n", out.String())
	assert.Equal(t, "[line 1] Error at '+': evaluation failed: Unsupported types for +\n", errOut.String())
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	passing := filepath.Join(dir, "passing.yaml")
	require.NoError(t, os.WriteFile(passing, []byte("name: ok\ncases:\n  - name: one\n    source: \"1\"\n    output: \"1\\n\"\n"), 0o644))
	failing := filepath.Join(dir, "failing.yaml")
	require.NoError(t, os.WriteFile(failing, []byte("name: bad\ncases:\n  - name: two\n    source: \"2\"\n    output: \"3\\n\"\n"), 0o644))

	var out bytes.Buffer
	assert.Equal(t, exitOK, runCheck([]string{passing}, &out))
	assert.Contains(t, out.String(), "ok   one")

	out.Reset()
	assert.Equal(t, exitFailure, runCheck([]string{passing, failing}, &out))
	assert.Contains(t, out.String(), "FAIL two")
	assert.Contains(t, out.String(), "1 case(s) failed")

	assert.Equal(t, exitUsage, runCheck(nil, &out))
	assert.Equal(t, exitNoInput, runCheck([]string{filepath.Join(dir, "missing.yaml")}, &out))
}
