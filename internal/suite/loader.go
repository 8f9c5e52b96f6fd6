package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case at index %d has no name", i)
		}
		if c.Expression == "" && c.WantError == "" {
			return nil, fmt.Errorf("case %q has no expression", c.Name)
		}
		outcomes := 0
		if c.Want != nil {
			outcomes++
		}
		if c.WantInf {
			outcomes++
		}
		if c.WantNaN {
			outcomes++
		}
		if c.WantError != "" {
			outcomes++
		}
		if outcomes != 1 {
			return nil, fmt.Errorf("case %q must declare exactly one of want, want_inf, want_nan, want_error", c.Name)
		}
		switch c.WantError {
		case "", ErrInvalidToken, ErrMismatchedParentheses, ErrMalformedExpression:
		default:
			return nil, fmt.Errorf("case %q has unknown want_error %q", c.Name, c.WantError)
		}
	}

	return &s, nil
}
