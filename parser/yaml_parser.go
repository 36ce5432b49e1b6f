// Package parser provides functionality for parsing navigation contribution
// documents.
package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
)

// YamlDocumentParser implements DocumentParser for YAML.
type YamlDocumentParser struct{}

// NewYamlDocumentParser creates a new YamlDocumentParser.
func NewYamlDocumentParser() DocumentParser {
	return &YamlDocumentParser{}
}

// Parse unmarshals YAML bytes into a Document struct.
func (p *YamlDocumentParser) Parse(data []byte) (*dto.Document, error) {
	var doc dto.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
