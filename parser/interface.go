package parser

import "github.com/reglet-dev/reglet-nav-sdk/menu/dto"

// DocumentParser parses raw contribution bytes into a Document.
type DocumentParser interface {
	// Parse unmarshals contribution bytes into a Document struct.
	Parse(data []byte) (*dto.Document, error)
}
