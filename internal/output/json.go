package output

import (
	"encoding/json"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter writes the results as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioResults) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter writes the results as YAML, with amounts as decimal strings
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ScenarioResults) ([]byte, error) {
	return yaml.Marshal(results)
}
