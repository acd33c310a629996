package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed problems.yaml
var problemsYAML []byte

// Problem describes one implemented exercise.
type Problem struct {
	Code  string `yaml:"code"`
	Title string `yaml:"title"`
	Input string `yaml:"input"`
	Brief string `yaml:"brief"`
}

// All returns every cataloged problem in catalog order.
func All() ([]Problem, error) {
	var doc struct {
		Problems []Problem `yaml:"problems"`
	}
	if err := yaml.Unmarshal(problemsYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse problem catalog: %w", err)
	}
	return doc.Problems, nil
}
