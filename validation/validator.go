// Package validation checks the shape of raw navigation definitions before
// the registry accepts them. Structural checks run against JSON Schemas
// generated from the definition DTOs; field rules cover the
// required-together constraints a schema alone does not express well.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
	"github.com/reglet-dev/reglet-nav-sdk/menu/ports"
	"github.com/reglet-dev/reglet-nav-sdk/schema"
)

// Definition kinds registered in the schema registry.
const (
	KindMenuItem    = "menu-item"
	KindQuickAction = "quick-action"
)

// Validator implements ports.DefinitionValidator.
type Validator struct {
	menuSchema  *jsonschema.Schema
	quickSchema *jsonschema.Schema
}

// New creates a Validator backed by the given schema registry. Definition
// kinds missing from the registry are generated and registered from the DTO
// types.
func New(schemas *schema.Registry) (*Validator, error) {
	if _, ok := schemas.GetSchema(KindMenuItem); !ok {
		if err := schemas.Register(KindMenuItem, dto.MenuItemDefinition{}); err != nil {
			return nil, fmt.Errorf("registering %s schema: %w", KindMenuItem, err)
		}
	}
	if _, ok := schemas.GetSchema(KindQuickAction); !ok {
		if err := schemas.Register(KindQuickAction, dto.QuickActionDefinition{}); err != nil {
			return nil, fmt.Errorf("registering %s schema: %w", KindQuickAction, err)
		}
	}

	menuSchema, err := compile(schemas, KindMenuItem)
	if err != nil {
		return nil, err
	}
	quickSchema, err := compile(schemas, KindQuickAction)
	if err != nil {
		return nil, err
	}

	return &Validator{menuSchema: menuSchema, quickSchema: quickSchema}, nil
}

func compile(schemas *schema.Registry, kind string) (*jsonschema.Schema, error) {
	raw, ok := schemas.GetSchema(kind)
	if !ok {
		return nil, fmt.Errorf("no schema registered for kind %s", kind)
	}

	url := kind + ".schema.json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("loading %s schema: %w", kind, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", kind, err)
	}
	return compiled, nil
}

// ValidateMenuItems checks a batch of top-level definitions, including
// their nested side menu definitions. The first failure stops the batch.
func (v *Validator) ValidateMenuItems(defs []dto.MenuItemDefinition) ports.ValidationResult {
	for i, def := range defs {
		name := definitionName(def.Code, i)

		if err := validateDocument(v.menuSchema, def); err != nil {
			return failure("menu item %s: %v", name, err)
		}
		if def.Label == "" {
			return failure("menu item %s: label is required", name)
		}
		if def.Icon == "" && def.IconSVG == "" {
			return failure("menu item %s: an icon or an SVG icon is required", name)
		}
		if def.URL == "" {
			return failure("menu item %s: url is required", name)
		}

		for j, side := range def.SideMenu {
			sideName := definitionName(side.Code, j)
			if side.Label == "" {
				return failure("side menu item %s of %s: label is required", sideName, name)
			}
			if side.Icon == "" && side.IconSVG == "" {
				return failure("side menu item %s of %s: an icon or an SVG icon is required", sideName, name)
			}
			if side.URL == "" {
				return failure("side menu item %s of %s: url is required", sideName, name)
			}
		}
	}
	return ports.ValidationResult{Valid: true}
}

// ValidateQuickActions checks a batch of quick action definitions.
func (v *Validator) ValidateQuickActions(defs []dto.QuickActionDefinition) ports.ValidationResult {
	for i, def := range defs {
		name := definitionName(def.Code, i)

		if err := validateDocument(v.quickSchema, def); err != nil {
			return failure("quick action %s: %v", name, err)
		}
		if def.Label == "" {
			return failure("quick action %s: label is required", name)
		}
		if def.Icon == "" && def.IconSVG == "" {
			return failure("quick action %s: an icon or an SVG icon is required", name)
		}
		if def.URL == "" {
			return failure("quick action %s: url is required", name)
		}
	}
	return ports.ValidationResult{Valid: true}
}

// validateDocument round-trips the definition through JSON so the compiled
// schema sees the same document shape plugins supply on disk.
func validateDocument(compiled *jsonschema.Schema, def any) error {
	b, err := json.Marshal(def)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	return compiled.Validate(doc)
}

func definitionName(code string, index int) string {
	if code == "" {
		return fmt.Sprintf("#%d", index)
	}
	return fmt.Sprintf("%q", code)
}

func failure(format string, args ...any) ports.ValidationResult {
	return ports.ValidationResult{Valid: false, FirstError: fmt.Sprintf(format, args...)}
}
