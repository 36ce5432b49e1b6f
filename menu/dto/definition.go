// Package dto holds the raw definition shapes plugins contribute, before
// validation and merging into registry entities.
package dto

import "github.com/reglet-dev/reglet-nav-sdk/menu/entities"

// Document is one plugin's full navigation contribution.
type Document struct {
	MenuItems    []MenuItemDefinition    `json:"menu,omitempty" yaml:"menu,omitempty"`
	QuickActions []QuickActionDefinition `json:"quickactions,omitempty" yaml:"quickactions,omitempty"`
}

// MenuItemDefinition is a raw top-level menu definition.
// Required shape: label, url, and one of icon or iconSvg.
type MenuItemDefinition struct {
	Code        string                   `json:"code" yaml:"code" jsonschema:"required,minLength=1"`
	Label       string                   `json:"label,omitempty" yaml:"label,omitempty"`
	Icon        string                   `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconSVG     string                   `json:"iconSvg,omitempty" yaml:"iconSvg,omitempty"`
	URL         string                   `json:"url,omitempty" yaml:"url,omitempty"`
	Badge       string                   `json:"badge,omitempty" yaml:"badge,omitempty"`
	Permissions []string                 `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Order       *int                     `json:"order,omitempty" yaml:"order,omitempty"`
	Counter     *int                     `json:"counter,omitempty" yaml:"counter,omitempty"`
	SideMenu    []SideMenuItemDefinition `json:"sideMenu,omitempty" yaml:"sideMenu,omitempty"`
}

// SideMenuItemDefinition is a raw nested menu definition.
type SideMenuItemDefinition struct {
	Code        string   `json:"code" yaml:"code" jsonschema:"required,minLength=1"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconSVG     string   `json:"iconSvg,omitempty" yaml:"iconSvg,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Badge       string   `json:"badge,omitempty" yaml:"badge,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Order       *int     `json:"order,omitempty" yaml:"order,omitempty"`
	Counter     *int     `json:"counter,omitempty" yaml:"counter,omitempty"`
}

// QuickActionDefinition is a raw quick action definition.
type QuickActionDefinition struct {
	Code        string   `json:"code" yaml:"code" jsonschema:"required,minLength=1"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconSVG     string   `json:"iconSvg,omitempty" yaml:"iconSvg,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Order       *int     `json:"order,omitempty" yaml:"order,omitempty"`
}

// Patch converts the definition to a typed partial update.
// Zero-valued string fields are treated as unset so a later registration
// cannot blank a field it did not supply.
func (d MenuItemDefinition) Patch() entities.ItemPatch {
	p := entities.ItemPatch{
		Label:       optString(d.Label),
		Icon:        optString(d.Icon),
		IconSVG:     optString(d.IconSVG),
		URL:         optString(d.URL),
		Badge:       optString(d.Badge),
		Order:       d.Order,
		Permissions: d.Permissions,
	}
	if d.Counter != nil {
		c := entities.LiteralCounter(*d.Counter)
		p.Counter = &c
	}
	return p
}

// Patch converts the definition to a typed partial update.
func (d SideMenuItemDefinition) Patch() entities.SidePatch {
	p := entities.SidePatch{
		Label:       optString(d.Label),
		Icon:        optString(d.Icon),
		IconSVG:     optString(d.IconSVG),
		URL:         optString(d.URL),
		Badge:       optString(d.Badge),
		Order:       d.Order,
		Permissions: d.Permissions,
	}
	if d.Counter != nil {
		c := entities.LiteralCounter(*d.Counter)
		p.Counter = &c
	}
	return p
}

// Patch converts the definition to a typed partial update.
func (d QuickActionDefinition) Patch() entities.QuickActionPatch {
	return entities.QuickActionPatch{
		Label:       optString(d.Label),
		Icon:        optString(d.Icon),
		IconSVG:     optString(d.IconSVG),
		URL:         optString(d.URL),
		Order:       d.Order,
		Permissions: d.Permissions,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
