package edm

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// LoadModel decodes a YAML metadata document and compiles it into a Model.
func LoadModel(data []byte) (*Model, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("edm: failed to decode metadata document: %w", err)
	}
	return BuildModel(&doc)
}

// LoadModelFile reads a YAML metadata document from disk and compiles it
// into a Model.
func LoadModelFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edm: failed to read metadata document: %w", err)
	}
	return LoadModel(data)
}
