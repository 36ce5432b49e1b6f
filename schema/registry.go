// Package schema implements an in-memory registry of JSON Schemas for
// navigation definition kinds. Schemas are generated from the definition
// DTO types and consumed by the validation layer.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
)

// Registry stores one JSON Schema document per definition kind.
type Registry struct {
	schemas    map[string]string
	reflector  *jsonschema.Reflector
	mu         sync.RWMutex
	strictMode bool
}

// Option configures the Registry.
type Option func(*Registry)

// WithStrictMode controls duplicate registration: strict rejects a second
// schema for the same kind, lenient replaces it.
func WithStrictMode(strict bool) Option {
	return func(r *Registry) {
		r.strictMode = strict
	}
}

// NewRegistry creates an empty schema registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		schemas:    make(map[string]string),
		reflector:  new(jsonschema.Reflector),
		strictMode: true,
	}
	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register generates a schema for a definition kind from a Go model type
// and stores it.
func (r *Registry) Register(kind string, model any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists && r.strictMode {
		return fmt.Errorf("definition kind already registered: %s", kind)
	}

	s := r.reflector.Reflect(model)
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling generated schema for %s: %w", kind, err)
	}

	r.schemas[kind] = string(b)
	return nil
}

// RegisterRaw stores a pre-built JSON Schema document for a kind.
func (r *Registry) RegisterRaw(kind, schemaJSON string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists && r.strictMode {
		return fmt.Errorf("definition kind already registered: %s", kind)
	}
	if !json.Valid([]byte(schemaJSON)) {
		return fmt.Errorf("schema for %s is not valid JSON", kind)
	}

	r.schemas[kind] = schemaJSON
	return nil
}

// GetSchema retrieves the JSON Schema for a definition kind.
func (r *Registry) GetSchema(kind string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// List returns all registered definition kinds.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		kinds = append(kinds, k)
	}
	return kinds
}
