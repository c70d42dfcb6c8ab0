// Package config loads cmd/numconv's optional defaults file, the way
// the teacher's test harness decodes YAML front-matter out of a test
// file (tc39_test.go's parseTC39File/yaml.Unmarshal) rather than
// hand-rolling a flat key=value parser.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the settings cmd/numconv falls back to when the
// corresponding flag isn't given explicitly.
type Defaults struct {
	Radix       int  `yaml:"radix"`
	RoundToEven bool `yaml:"round_to_even"`
}

// DefaultDefaults is what applies when no config file is given at all.
func DefaultDefaults() Defaults {
	return Defaults{Radix: 10, RoundToEven: true}
}

// Load reads and parses a YAML defaults file. A missing path is not an
// error; it just means the CLI's built-in defaults apply.
func Load(path string) (Defaults, error) {
	d := DefaultDefaults()
	if path == "" {
		return d, nil
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return Defaults{}, err
	}

	if err := yaml.Unmarshal(b, &d); err != nil {
		return Defaults{}, err
	}
	if d.Radix < 2 || d.Radix > 36 {
		return Defaults{}, &InvalidError{Field: "radix", Value: d.Radix}
	}
	return d, nil
}

// InvalidError reports a config value outside its valid range.
type InvalidError struct {
	Field string
	Value int
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("config: invalid %s: %d", e.Field, e.Value)
}
