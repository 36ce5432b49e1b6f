package parser

import (
	"encoding/json"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
)

// JSONDocumentParser implements DocumentParser for JSON.
type JSONDocumentParser struct{}

// NewJSONDocumentParser creates a new JSONDocumentParser.
func NewJSONDocumentParser() DocumentParser {
	return &JSONDocumentParser{}
}

// Parse unmarshals JSON bytes into a Document struct.
func (p *JSONDocumentParser) Parse(data []byte) (*dto.Document, error) {
	var doc dto.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
