package ports

import "github.com/reglet-dev/reglet-nav-sdk/menu/dto"

// ValidationResult reports the outcome of validating a definition batch.
type ValidationResult struct {
	// FirstError describes the first failing rule, empty when Valid.
	FirstError string

	// Valid is true when every definition in the batch passed.
	Valid bool
}

// DefinitionValidator checks the shape of raw definition batches before the
// registry accepts them.
type DefinitionValidator interface {
	// ValidateMenuItems checks a batch of top-level definitions, including
	// their nested side menu definitions.
	ValidateMenuItems(defs []dto.MenuItemDefinition) ValidationResult

	// ValidateQuickActions checks a batch of quick action definitions.
	ValidateQuickActions(defs []dto.QuickActionDefinition) ValidationResult
}
