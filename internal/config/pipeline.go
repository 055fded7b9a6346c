// Package config loads the YAML pipeline descriptions evaluated by the lazyseq CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid pipeline")

var validate = validator.New()

// Pipeline describes an integer sequence and the steps applied to it.
type Pipeline struct {
	Name string `yaml:"name" validate:"required"`
	// Collector is "vector" (the default) or "stack".
	Collector string `yaml:"collector" validate:"oneof=vector stack"`
	Efficient bool   `yaml:"efficient"`
	Source    Source `yaml:"source"`
	Steps     []Step `yaml:"steps" validate:"dive"`
}

// Source is either a range or an explicit list of values, never both. With Stream set
// the values are read through a single-use source.
type Source struct {
	Range  *Range `yaml:"range" validate:"required_without=Values,excluded_with=Values"`
	Values []int  `yaml:"values" validate:"required_without=Range"`
	Stream bool   `yaml:"stream"`
}

// Range yields Start, Start+Step, ... up to but excluding End. Step defaults to 1.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
	Step  int `yaml:"step"`
}

// Step is one operation. Which argument fields are read depends on Op.
type Step struct {
	Op    string `yaml:"op" validate:"required,oneof=map filter take drop take-last drop-last take-while drop-while sort reverse distinct shuffle cycle intersperse scan plus plus-at with minus minus-at slice"`
	Fn    string `yaml:"fn" validate:"omitempty,oneof=add sub mul div mod neg square"`
	Pred  string `yaml:"pred" validate:"omitempty,oneof=even odd lt le gt ge eq ne"`
	Arg   int    `yaml:"arg"`
	N     int    `yaml:"n" validate:"gte=0"`
	Index int    `yaml:"index"`
	Value int    `yaml:"value"`
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Seed  uint64 `yaml:"seed"`
}

// Load reads and validates the pipeline description at path.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a pipeline description. Unknown fields are rejected.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Pipeline) applyDefaults() {
	if p.Collector == "" {
		p.Collector = "vector"
	}
	if p.Source.Range != nil && p.Source.Range.Step == 0 {
		p.Source.Range.Step = 1
	}
}

// Validate checks the struct constraints and the arguments each step needs.
func (p *Pipeline) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, st := range p.Steps {
		if err := st.check(); err != nil {
			return fmt.Errorf("%w: steps[%d] %s: %v", ErrInvalid, i, st.Op, err)
		}
	}
	return nil
}

func (s Step) check() error {
	switch s.Op {
	case "map":
		if s.Fn == "" {
			return errors.New("fn is required")
		}
		if (s.Fn == "div" || s.Fn == "mod") && s.Arg == 0 {
			return errors.New("arg must not be zero")
		}
	case "scan":
		if s.Fn != "add" && s.Fn != "sub" && s.Fn != "mul" {
			return fmt.Errorf("fn must be add, sub or mul, got %q", s.Fn)
		}
	case "filter", "take-while", "drop-while":
		if s.Pred == "" {
			return errors.New("pred is required")
		}
	}
	return nil
}
