package suite

import (
	"bytes"
	"fmt"
	"iter"
	"os"

	"github.com/ian-shakespeare/liblox/internal/interpret"
	"gopkg.in/yaml.v3"
)

// Suite is a named list of programs with their expected printed output and,
// for failing programs, the expected diagnostic text.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

type Result struct {
	Case   Case
	Output string
	Error  string
}

func (r Result) Passed() bool {
	return r.Output == r.Case.Output && r.Error == r.Case.Error
}

func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("ok   %s", r.Case.Name)
	}
	return fmt.Sprintf("FAIL %s\n  output: %q, want %q\n  error:  %q, want %q",
		r.Case.Name, r.Output, r.Case.Output, r.Error, r.Case.Error)
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	seen := map[string]bool{}
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case at index %d has no name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("case %q is defined twice", c.Name)
		}
		seen[c.Name] = true
	}
	return &s, nil
}

// Check runs every case in a fresh interpreter.
func Check(s *Suite) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, c := range s.Cases {
			if !yield(run(c)) {
				return
			}
		}
	}
}

func run(c Case) Result {
	var out bytes.Buffer
	result := Result{Case: c}
	if err := interpret.Run(c.Source, &out); err != nil {
		result.Error = err.Error()
	}
	result.Output = out.String()
	return result
}
