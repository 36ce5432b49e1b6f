package registry

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
	"github.com/reglet-dev/reglet-nav-sdk/menu/ports"
)

// MockProvider implements ports.MenuProvider
type MockProvider struct {
	Handles map[string]ports.PluginHandle
	Err     error
}

func (m *MockProvider) ListPlugins(ctx context.Context) (map[string]ports.PluginHandle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Handles, nil
}

// MockHandle implements ports.PluginHandle
type MockHandle struct {
	Items   []dto.MenuItemDefinition
	Actions []dto.QuickActionDefinition
}

func (m *MockHandle) MenuItems() []dto.MenuItemDefinition {
	return m.Items
}

func (m *MockHandle) QuickActions() []dto.QuickActionDefinition {
	return m.Actions
}

// MockAuthorizer implements ports.Authorizer
type MockAuthorizer struct {
	Actor ports.Actor
	Err   error
}

func (m *MockAuthorizer) CurrentActor(ctx context.Context) (ports.Actor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Actor, nil
}

// MockActor implements ports.Actor with exact, case-insensitive grants.
type MockActor struct {
	Grants []string
}

func (m *MockActor) HasAnyPermission(permissions []string) bool {
	for _, p := range permissions {
		for _, g := range m.Grants {
			if strings.EqualFold(p, g) {
				return true
			}
		}
	}
	return false
}

// MockValidator implements ports.DefinitionValidator
type MockValidator struct {
	MenuResult  ports.ValidationResult
	QuickResult ports.ValidationResult
	MenuCalls   int
	QuickCalls  int
}

func (m *MockValidator) ValidateMenuItems(defs []dto.MenuItemDefinition) ports.ValidationResult {
	m.MenuCalls++
	return m.MenuResult
}

func (m *MockValidator) ValidateQuickActions(defs []dto.QuickActionDefinition) ports.ValidationResult {
	m.QuickCalls++
	return m.QuickResult
}

func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
