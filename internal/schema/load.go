package schema

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// document is the on-disk shape of a survey declaration.
type document struct {
	Fields    []*FieldSchema `yaml:"fields"`
	Structure []Group        `yaml:"structure"`
}

// Parse decodes a survey declaration from YAML, applies field defaults,
// and validates it.
func Parse(data []byte) (*Survey, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse survey declaration: %w", err)
	}
	for _, f := range doc.Fields {
		f.applyDefaults()
	}
	s := &Survey{
		Catalog:   &Catalog{Fields: doc.Fields},
		Structure: doc.Structure,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid survey declaration: %w", err)
	}
	return s, nil
}

// Load reads a survey declaration from a YAML file.
func Load(path string) (*Survey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey declaration: %w", err)
	}
	return Parse(data)
}

// Builtin returns the built-in declaration of the 2018 survey.
func Builtin() *Survey {
	s, err := Parse(builtinYAML)
	if err != nil {
		// The embedded declaration is validated by tests; reaching
		// this means the binary itself is broken.
		panic(fmt.Sprintf("builtin survey declaration is invalid: %v", err))
	}
	return s
}
