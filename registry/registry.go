// Package registry implements the process-wide navigation registry: it
// collects menu contributions from callbacks, plugins, and post-load hooks,
// merges them by owner/code identity, orders them, and filters them by the
// current actor's permissions.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
	"github.com/reglet-dev/reglet-nav-sdk/menu/entities"
	"github.com/reglet-dev/reglet-nav-sdk/menu/ports"
	"github.com/reglet-dev/reglet-nav-sdk/menu/services"
	"github.com/reglet-dev/reglet-nav-sdk/menu/values"
)

// Callback is a registration hook run at the start of the population pass.
// Callbacks are expected to call back into the registration API.
type Callback func(r *Registry)

// PostLoadHook runs after all structured sources have loaded and before the
// sort and permission-filter passes. Hooks receive a mutable registry handle
// and may add or remove any entry.
type PostLoadHook func(ctx context.Context, r *Registry)

type populationState int

const (
	stateUnpopulated populationState = iota
	statePopulating
	statePopulated
)

// Registry is the navigation table for one process. Construct it once at
// startup, inject it into consumers, and treat it as read-mostly after the
// first query populates it.
type Registry struct {
	provider   ports.MenuProvider
	authorizer ports.Authorizer
	validator  ports.DefinitionValidator
	counters   *services.CounterResolver
	logger     *slog.Logger

	// popMu single-flights the population pass; mu guards the tables.
	popMu sync.Mutex
	mu    sync.RWMutex
	state populationState

	items        map[values.ItemKey]*entities.MainMenuItem
	itemOrder    []values.ItemKey
	quickActions map[values.ItemKey]*entities.QuickActionItem
	quickOrder   []values.ItemKey
	aliases      map[string]string

	callbacks []Callback
	hooks     []PostLoadHook

	strictMode bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithProvider sets the plugin enumerator supplying contributed definitions.
func WithProvider(p ports.MenuProvider) Option {
	return func(r *Registry) { r.provider = p }
}

// WithAuthorizer sets the authorization service used for permission filtering.
func WithAuthorizer(a ports.Authorizer) Option {
	return func(r *Registry) { r.authorizer = a }
}

// WithValidator sets the definition validator applied at registration.
func WithValidator(v ports.DefinitionValidator) Option {
	return func(r *Registry) { r.validator = v }
}

// WithStrictMode controls validation failure handling: strict aborts the
// registering call, lenient logs and registers the definitions anyway.
func WithStrictMode(strict bool) Option {
	return func(r *Registry) { r.strictMode = strict }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates an empty, unpopulated registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		items:        make(map[values.ItemKey]*entities.MainMenuItem),
		quickActions: make(map[values.ItemKey]*entities.QuickActionItem),
		aliases:      make(map[string]string),
		counters:     services.NewCounterResolver(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterCallback adds a registration callback run during population.
func (r *Registry) RegisterCallback(cb Callback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks = append(r.callbacks, cb)
}

// RegisterPostLoadHook adds a hook run after structured sources load and
// before sorting and filtering.
func (r *Registry) RegisterPostLoadHook(hook PostLoadHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, hook)
}

// RegisterOwnerAlias folds a historical or renamed owner identifier into a
// canonical owner for all subsequent key computation and context matching.
// Aliasing is not retroactive: register aliases before the registrations
// that depend on them.
func (r *Registry) RegisterOwnerAlias(owner, alias string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToUpper(alias)] = strings.ToUpper(owner)
}

// resolveOwner maps an owner through the alias table to its canonical
// uppercase form. Callers must hold mu.
func (r *Registry) resolveOwner(owner string) string {
	up := strings.ToUpper(owner)
	if canonical, ok := r.aliases[up]; ok {
		return canonical
	}
	return up
}

// makeKey computes the alias-resolved composite key for an owner/code pair.
// Callers must hold mu.
func (r *Registry) makeKey(owner, code string) values.ItemKey {
	return values.MakeItemKey(r.resolveOwner(owner), code)
}

// MakeKey exposes the alias-resolved composite key computation.
func (r *Registry) MakeKey(owner, code string) values.ItemKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.makeKey(owner, code)
}

// RegisterMenuItems validates a batch of top-level definitions and adds
// them. In strict mode a validation failure aborts the call; otherwise the
// failure is logged and registration proceeds with the supplied shape.
func (r *Registry) RegisterMenuItems(owner string, defs []dto.MenuItemDefinition) error {
	if _, err := values.NewOwner(owner); err != nil {
		return fmt.Errorf("registering menu items: %w", err)
	}

	if r.validator != nil {
		if result := r.validator.ValidateMenuItems(defs); !result.Valid {
			if r.strictMode {
				return &entities.ValidationError{Owner: owner, Reason: result.FirstError}
			}
			r.logger.Error("menu item definition failed validation",
				"owner", owner, "error", result.FirstError)
		}
	}

	r.AddMainMenuItems(owner, defs)
	return nil
}

// AddMainMenuItems adds top-level definitions without validation.
func (r *Registry) AddMainMenuItems(owner string, defs []dto.MenuItemDefinition) {
	for _, def := range defs {
		r.AddMainMenuItem(owner, def)
	}
}

// AddMainMenuItem adds one top-level definition. An existing entry under the
// same alias-resolved (owner, code) key is merged: the new definition's set
// fields win, its unset fields retain the old values. Nested side menu
// definitions merge recursively.
func (r *Registry) AddMainMenuItem(owner string, def dto.MenuItemDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.makeKey(owner, def.Code)
	item, ok := r.items[key]
	if !ok {
		item = entities.NewMainMenuItem(owner, def.Code)
		r.items[key] = item
		r.itemOrder = append(r.itemOrder, key)
	}
	def.Patch().Apply(item)

	for _, side := range def.SideMenu {
		addSideMenuItemLocked(item, owner, side)
	}
}

// AddSideMenuItems adds side menu definitions under an existing top-level
// entry. Returns false without registering anything when the parent does
// not exist; a missing parent is a soft no-op, not a fault.
func (r *Registry) AddSideMenuItems(owner, code string, defs []dto.SideMenuItemDefinition) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent, ok := r.items[r.makeKey(owner, code)]
	if !ok {
		return false
	}
	for _, def := range defs {
		addSideMenuItemLocked(parent, owner, def)
	}
	return true
}

// AddSideMenuItem adds one side menu definition under an existing top-level
// entry. Returns false when the parent does not exist.
func (r *Registry) AddSideMenuItem(owner, code string, def dto.SideMenuItemDefinition) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent, ok := r.items[r.makeKey(owner, code)]
	if !ok {
		return false
	}
	addSideMenuItemLocked(parent, owner, def)
	return true
}

func addSideMenuItemLocked(parent *entities.MainMenuItem, owner string, def dto.SideMenuItemDefinition) {
	item, ok := parent.SideItem(def.Code)
	if !ok {
		item = entities.NewSideMenuItem(owner, def.Code)
	}
	def.Patch().Apply(item)
	parent.PutSideItem(item)
}

// AddMainMenuItemPatch applies a typed partial update under the
// alias-resolved key, creating the entry when absent. This is the
// in-process path for counter variants a raw definition cannot express:
// hidden markers and computed counters.
func (r *Registry) AddMainMenuItemPatch(owner, code string, patch entities.ItemPatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.makeKey(owner, code)
	item, ok := r.items[key]
	if !ok {
		item = entities.NewMainMenuItem(owner, code)
		r.items[key] = item
		r.itemOrder = append(r.itemOrder, key)
	}
	patch.Apply(item)
}

// AddSideMenuItemPatch applies a typed partial update to a side menu entry,
// creating it when absent. Returns false when the parent does not exist.
func (r *Registry) AddSideMenuItemPatch(owner, code, sideCode string, patch entities.SidePatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent, ok := r.items[r.makeKey(owner, code)]
	if !ok {
		return false
	}
	item, ok := parent.SideItem(sideCode)
	if !ok {
		item = entities.NewSideMenuItem(owner, sideCode)
	}
	patch.Apply(item)
	parent.PutSideItem(item)
	return true
}

// RegisterQuickActions validates a batch of quick action definitions and
// adds them, with the same strict/lenient behavior as RegisterMenuItems.
func (r *Registry) RegisterQuickActions(owner string, defs []dto.QuickActionDefinition) error {
	if _, err := values.NewOwner(owner); err != nil {
		return fmt.Errorf("registering quick actions: %w", err)
	}

	if r.validator != nil {
		if result := r.validator.ValidateQuickActions(defs); !result.Valid {
			if r.strictMode {
				return &entities.ValidationError{Owner: owner, Reason: result.FirstError}
			}
			r.logger.Error("quick action definition failed validation",
				"owner", owner, "error", result.FirstError)
		}
	}

	r.AddQuickActionItems(owner, defs)
	return nil
}

// AddQuickActionItems adds quick action definitions without validation.
func (r *Registry) AddQuickActionItems(owner string, defs []dto.QuickActionDefinition) {
	for _, def := range defs {
		r.AddQuickActionItem(owner, def)
	}
}

// AddQuickActionItem adds one quick action definition, merging by key like
// AddMainMenuItem.
func (r *Registry) AddQuickActionItem(owner string, def dto.QuickActionDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.makeKey(owner, def.Code)
	item, ok := r.quickActions[key]
	if !ok {
		item = entities.NewQuickActionItem(owner, def.Code)
		r.quickActions[key] = item
		r.quickOrder = append(r.quickOrder, key)
	}
	def.Patch().Apply(item)
}

// RemoveMainMenuItem deletes a top-level entry and its side menu by key.
// Removing a nonexistent entry is a silent no-op.
func (r *Registry) RemoveMainMenuItem(owner, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.makeKey(owner, code)
	if _, ok := r.items[key]; !ok {
		return
	}
	delete(r.items, key)
	r.itemOrder = deleteKey(r.itemOrder, key)
}

// RemoveSideMenuItem deletes a side menu entry. Returns false when the
// parent or the side entry does not exist.
func (r *Registry) RemoveSideMenuItem(owner, code, sideCode string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent, ok := r.items[r.makeKey(owner, code)]
	if !ok {
		return false
	}
	return parent.RemoveSideItem(sideCode)
}

// RemoveQuickActionItem deletes a quick action by key.
// Removing a nonexistent entry is a silent no-op.
func (r *Registry) RemoveQuickActionItem(owner, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.makeKey(owner, code)
	if _, ok := r.quickActions[key]; !ok {
		return
	}
	delete(r.quickActions, key)
	r.quickOrder = deleteKey(r.quickOrder, key)
}

func deleteKey(keys []values.ItemKey, key values.ItemKey) []values.ItemKey {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}

// popCtxKey marks the context of the in-flight population pass. Hooks
// receive the marked context, so queries they issue read the live tables
// instead of re-entering the guard and deadlocking on popMu.
type popCtxKey struct{}

// ensurePopulated runs the population pass exactly once. Concurrent first
// readers share one pass; a failed pass resets to unpopulated so the next
// reader retries.
func (r *Registry) ensurePopulated(ctx context.Context) error {
	if ctx.Value(popCtxKey{}) != nil {
		// Issued from inside the population pass.
		return nil
	}

	r.mu.RLock()
	populated := r.state == statePopulated
	r.mu.RUnlock()
	if populated {
		return nil
	}

	r.popMu.Lock()
	defer r.popMu.Unlock()

	r.mu.Lock()
	if r.state == statePopulated {
		r.mu.Unlock()
		return nil
	}
	r.state = statePopulating
	callbacks := make([]Callback, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	if err := r.populate(context.WithValue(ctx, popCtxKey{}, struct{}{}), callbacks); err != nil {
		r.mu.Lock()
		r.state = stateUnpopulated
		r.mu.Unlock()
		return err
	}

	r.mu.Lock()
	r.state = statePopulated
	r.mu.Unlock()
	return nil
}

// populate loads every source in order: callbacks, plugin contributions,
// post-load hooks, then sorts and permission-filters both tables. The order
// matters for the final merge outcome.
func (r *Registry) populate(ctx context.Context, callbacks []Callback) error {
	for _, cb := range callbacks {
		cb(r)
	}

	if r.provider != nil {
		handles, err := r.provider.ListPlugins(ctx)
		if err != nil {
			return fmt.Errorf("enumerating plugins: %w", err)
		}

		ids := make([]string, 0, len(handles))
		for id := range handles {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			handle := handles[id]
			items := handle.MenuItems()
			actions := handle.QuickActions()
			if items == nil && actions == nil {
				continue
			}
			if items != nil {
				if err := r.RegisterMenuItems(id, items); err != nil {
					return fmt.Errorf("plugin %s: %w", id, err)
				}
			}
			if actions != nil {
				if err := r.RegisterQuickActions(id, actions); err != nil {
					return fmt.Errorf("plugin %s: %w", id, err)
				}
			}
		}
	}

	r.mu.RLock()
	hooks := make([]PostLoadHook, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, r)
	}

	var actor ports.Actor
	if r.authorizer != nil {
		var err error
		actor, err = r.authorizer.CurrentActor(ctx)
		if err != nil {
			return fmt.Errorf("resolving current actor: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sortLocked()
	r.filterLocked(actor)
	return nil
}

// sortLocked orders both tables and each side menu. Unassigned side orders
// are synthesized before sorting.
func (r *Registry) sortLocked() {
	mains := make([]*entities.MainMenuItem, len(r.itemOrder))
	mainKeys := make(map[*entities.MainMenuItem]values.ItemKey, len(r.itemOrder))
	for i, key := range r.itemOrder {
		mains[i] = r.items[key]
		mainKeys[mains[i]] = key
	}
	services.SortMainItems(mains)
	for i, item := range mains {
		r.itemOrder[i] = mainKeys[item]
	}

	quicks := make([]*entities.QuickActionItem, len(r.quickOrder))
	quickKeys := make(map[*entities.QuickActionItem]values.ItemKey, len(r.quickOrder))
	for i, key := range r.quickOrder {
		quicks[i] = r.quickActions[key]
		quickKeys[quicks[i]] = key
	}
	services.SortQuickActions(quicks)
	for i, item := range quicks {
		r.quickOrder[i] = quickKeys[item]
	}

	for _, key := range r.itemOrder {
		item := r.items[key]
		side := item.SideItems()
		services.AssignDefaultSideOrders(side)
		services.SortSideItems(side)
		item.SetSideItems(side)
	}
}

// filterLocked removes every entry the actor cannot see. A nil actor
// disables filtering. Filtered entries are gone for the lifetime of the
// populated table.
func (r *Registry) filterLocked(actor ports.Actor) {
	if actor == nil {
		return
	}

	kept := r.itemOrder[:0]
	for _, key := range r.itemOrder {
		item := r.items[key]
		if !visible(actor, item.Permissions) {
			delete(r.items, key)
			r.logger.Debug("menu item filtered by permissions",
				"owner", item.Owner, "code", item.Code)
			continue
		}
		kept = append(kept, key)

		side := item.SideItems()
		filtered := make([]*entities.SideMenuItem, 0, len(side))
		for _, s := range side {
			if visible(actor, s.Permissions) {
				filtered = append(filtered, s)
			}
		}
		item.SetSideItems(filtered)
	}
	r.itemOrder = kept

	keptQuick := r.quickOrder[:0]
	for _, key := range r.quickOrder {
		item := r.quickActions[key]
		if !visible(actor, item.Permissions) {
			delete(r.quickActions, key)
			continue
		}
		keptQuick = append(keptQuick, key)
	}
	r.quickOrder = keptQuick
}

// visible keeps an entry that declares no permissions or whose permissions
// intersect the actor's (OR semantics).
func visible(actor ports.Actor, permissions []string) bool {
	if len(permissions) == 0 {
		return true
	}
	return actor.HasAnyPermission(permissions)
}
