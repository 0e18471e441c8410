package rubric

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Section is one expected rubric category and its optional sub-elements.
type Section struct {
	Key      string   `yaml:"key"`
	Elements []string `yaml:"elements"`
}

// Rubric is an ordered set of expected section categories.
type Rubric struct {
	Sections []Section `yaml:"sections"`
}

// Keys returns the rubric's category keys in declaration order.
func (r *Rubric) Keys() []string {
	keys := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}

// Parse reads a rubric from YAML bytes.
func Parse(data []byte) (*Rubric, error) {
	var r Rubric
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse rubric: %w", err)
	}
	if len(r.Sections) == 0 {
		return nil, errors.New("rubric has no sections")
	}
	for i, s := range r.Sections {
		if s.Key == "" {
			return nil, fmt.Errorf("rubric section %d has an empty key", i)
		}
	}
	return &r, nil
}

// LoadFile reads a rubric from a YAML file.
func LoadFile(path string) (*Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rubric file: %w", err)
	}
	return Parse(data)
}
