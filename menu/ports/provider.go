// Package ports declares the collaborator contracts the navigation registry
// consumes. Implementations live in infrastructure packages.
package ports

import (
	"context"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
)

// MenuProvider enumerates plugins that may contribute navigation entries.
type MenuProvider interface {
	// ListPlugins returns all known plugins keyed by plugin identifier.
	ListPlugins(ctx context.Context) (map[string]PluginHandle, error)
}

// PluginHandle exposes one plugin's navigation contributions.
// A handle returning nil from both methods contributes nothing and is
// skipped without side effects.
type PluginHandle interface {
	// MenuItems returns the plugin's top-level menu definitions, or nil.
	MenuItems() []dto.MenuItemDefinition

	// QuickActions returns the plugin's quick action definitions, or nil.
	QuickActions() []dto.QuickActionDefinition
}
