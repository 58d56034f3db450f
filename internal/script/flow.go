package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Step kinds
const (
	KindLog    = "log"
	KindPrint  = "print"
	KindTs     = "ts"
	KindSet    = "set"
	KindSleep  = "sleep"
	KindRepeat = "repeat"
)

// Sentinel errors returned by Compile.
var (
	ErrUnknownStep = errors.New("unknown step kind")
	ErrInvalidStep = errors.New("invalid step")
)

// Flow is the decoded form of a flow file.
type Flow struct {
	Name  string     `yaml:"name"`
	Seed  any        `yaml:"seed"`
	Steps []StepSpec `yaml:"steps"`
}

// StepSpec holds one step as written: a single kind mapped to its argument.
type StepSpec map[string]yaml.Node

type repeatSpec struct {
	Times int        `yaml:"times"`
	Steps []StepSpec `yaml:"steps"`
}

// Parse decodes a flow from r. Unknown top-level fields are rejected.
func Parse(r io.Reader) (*Flow, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Flow
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty flow file")
		}
		return nil, fmt.Errorf("failed to parse flow: %w", err)
	}
	return &f, nil
}

// Load reads and parses the flow file at path.
func Load(path string) (*Flow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flow file: %w", err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = path
	}
	return f, nil
}

// kind returns the single kind of s and its argument node.
func (s StepSpec) kind() (string, yaml.Node, error) {
	if len(s) != 1 {
		return "", yaml.Node{}, fmt.Errorf("%w: want exactly one kind, got %d", ErrInvalidStep, len(s))
	}
	for k, v := range s {
		return k, v, nil
	}
	panic("unreachable")
}
