// internal/suite/plan.go
package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"tengebench/internal/benchapp"
)

// Step is one program with its arguments, repeated Repeat times.
type Step struct {
	Program string            `yaml:"program" validate:"required,program"`
	Args    []string          `yaml:"args"`
	Repeat  int               `yaml:"repeat" validate:"gte=0"`
	Env     map[string]string `yaml:"env" validate:"omitempty,dive,keys,envkey,endkeys"`
}

// Plan is a YAML suite description:
//
//	name: nightly
//	repeat: 5
//	env: {BATCH_ITER: "3"}
//	runs:
//	  - program: sort
//	    args: ["100000"]
//	  - program: nbody_sym
//	    args: ["1024", "10"]
//	    repeat: 3
type Plan struct {
	Name   string            `yaml:"name"`
	Repeat int               `yaml:"repeat" validate:"gte=0"`
	Env    map[string]string `yaml:"env" validate:"omitempty,dive,keys,envkey,endkeys"`
	Runs   []Step            `yaml:"runs" validate:"required,min=1,dive"`
}

var envKeyRE = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

var planValidate *validator.Validate

func init() {
	planValidate = validator.New()
	mustRegister(planValidate, "program", func(fl validator.FieldLevel) bool {
		_, ok := benchapp.Lookup(fl.Field().String())
		return ok
	})
	mustRegister(planValidate, "envkey", func(fl validator.FieldLevel) bool {
		return envKeyRE.MatchString(fl.Field().String())
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("suite: register %q validation: %v", tag, err))
	}
}

// ParsePlan decodes and validates a plan. Unknown YAML fields are rejected.
func ParsePlan(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parse plan: empty document")
		}
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPlan reads a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	p, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks the plan against its struct tags.
func (p *Plan) Validate() error {
	err := planValidate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid plan: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %q", fe.Namespace(), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("invalid plan: %s: %w", strings.Join(msgs, "; "), verrs)
}

// Jobs expands the plan into individual invocations, in file order.
// A step's repeat overrides the plan's; zero means 1. Step env overrides
// plan env key by key.
func (p *Plan) Jobs() ([]Job, error) {
	var jobs []Job
	for _, s := range p.Runs {
		repeat := s.Repeat
		if repeat == 0 {
			repeat = p.Repeat
		}
		env := make(map[string]string, len(p.Env)+len(s.Env))
		for k, v := range p.Env {
			env[k] = v
		}
		for k, v := range s.Env {
			env[k] = v
		}
		js, err := Expand(s.Program, s.Args, repeat, env)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, js...)
	}
	return jobs, nil
}
