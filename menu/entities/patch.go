package entities

// ItemPatch is a typed partial update for a MainMenuItem. Registering the
// same (owner, code) twice merges by applying the later patch onto the
// existing entry: set fields win, unset fields retain the old value.
type ItemPatch struct {
	Label       *string
	Icon        *string
	IconSVG     *string
	URL         *string
	Badge       *string
	Order       *int
	Permissions []string
	Counter     *Counter
}

// Apply merges the patch onto an existing item, field by field.
func (p ItemPatch) Apply(item *MainMenuItem) {
	if p.Label != nil {
		item.Label = *p.Label
	}
	if p.Icon != nil {
		item.Icon = *p.Icon
	}
	if p.IconSVG != nil {
		item.IconSVG = *p.IconSVG
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.Badge != nil {
		item.Badge = *p.Badge
	}
	if p.Order != nil {
		item.Order = *p.Order
	}
	if p.Permissions != nil {
		item.Permissions = p.Permissions
	}
	if p.Counter != nil {
		item.Counter = *p.Counter
	}
}

// SidePatch is a typed partial update for a SideMenuItem.
type SidePatch struct {
	Label       *string
	Icon        *string
	IconSVG     *string
	URL         *string
	Badge       *string
	Order       *int
	Permissions []string
	Counter     *Counter
}

// Apply merges the patch onto an existing side menu item.
func (p SidePatch) Apply(item *SideMenuItem) {
	if p.Label != nil {
		item.Label = *p.Label
	}
	if p.Icon != nil {
		item.Icon = *p.Icon
	}
	if p.IconSVG != nil {
		item.IconSVG = *p.IconSVG
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.Badge != nil {
		item.Badge = *p.Badge
	}
	if p.Order != nil {
		item.Order = *p.Order
	}
	if p.Permissions != nil {
		item.Permissions = p.Permissions
	}
	if p.Counter != nil {
		item.Counter = *p.Counter
	}
}

// QuickActionPatch is a typed partial update for a QuickActionItem.
type QuickActionPatch struct {
	Label       *string
	Icon        *string
	IconSVG     *string
	URL         *string
	Order       *int
	Permissions []string
}

// Apply merges the patch onto an existing quick action.
func (p QuickActionPatch) Apply(item *QuickActionItem) {
	if p.Label != nil {
		item.Label = *p.Label
	}
	if p.Icon != nil {
		item.Icon = *p.Icon
	}
	if p.IconSVG != nil {
		item.IconSVG = *p.IconSVG
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.Order != nil {
		item.Order = *p.Order
	}
	if p.Permissions != nil {
		item.Permissions = p.Permissions
	}
}
