package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level YAML structure for a content catalog.
type CatalogSchema struct {
	Source    string           `yaml:"source"`
	Content   []ContentImport  `yaml:"content"`
	Questions []QuestionImport `yaml:"questions"`
}

// ContentImport defines one piece of learning material.
type ContentImport struct {
	Title   string   `yaml:"title"`
	URL     string   `yaml:"url"`
	Source  string   `yaml:"source,omitempty"`
	Summary string   `yaml:"summary,omitempty"`
	Topics  []string `yaml:"topics,omitempty"`
}

// QuestionImport defines a multiple-choice quiz question. Answer is the
// zero-based index of the correct choice.
type QuestionImport struct {
	Topic       string   `yaml:"topic"`
	Prompt      string   `yaml:"prompt"`
	Choices     []string `yaml:"choices"`
	Answer      *int     `yaml:"answer"`
	Explanation string   `yaml:"explanation,omitempty"`
}

// LoadCatalog reads and parses a YAML catalog file. Unknown fields are
// rejected so typos do not silently drop data.
func LoadCatalog(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
