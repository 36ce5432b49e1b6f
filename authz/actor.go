// Package authz provides the in-process authorization adapter used for
// permission filtering. Grants are dot-separated permission codes and may
// carry glob patterns: "acme.blog.*" covers every permission directly under
// acme.blog, "acme.**" covers the whole subtree.
package authz

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/reglet-dev/reglet-nav-sdk/menu/ports"
)

// Actor implements ports.Actor for a fixed set of grants.
type Actor struct {
	name   string
	grants []string
}

// NewActor creates an actor with the given permission grants.
func NewActor(name string, grants ...string) *Actor {
	return &Actor{name: name, grants: grants}
}

// Name returns the actor's identifier.
func (a *Actor) Name() string {
	return a.name
}

// HasAnyPermission reports whether any grant covers any of the given
// permissions (OR semantics).
func (a *Actor) HasAnyPermission(permissions []string) bool {
	for _, permission := range permissions {
		for _, grant := range a.grants {
			if matches(grant, permission) {
				return true
			}
		}
	}
	return false
}

// matches checks one grant pattern against one permission code.
// Dots are mapped to path separators so glob stars stay segment-scoped.
func matches(grant, permission string) bool {
	if strings.EqualFold(grant, permission) {
		return true
	}

	pattern := strings.ReplaceAll(strings.ToLower(grant), ".", "/")
	name := strings.ReplaceAll(strings.ToLower(permission), ".", "/")

	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		// Malformed pattern never matches.
		return false
	}
	return ok
}

// StaticAuthorizer implements ports.Authorizer for a fixed actor, typically
// resolved once per request by the embedding application.
type StaticAuthorizer struct {
	actor ports.Actor
}

// NewStaticAuthorizer creates an authorizer that always reports the given
// actor. A nil actor disables permission filtering.
func NewStaticAuthorizer(actor ports.Actor) *StaticAuthorizer {
	return &StaticAuthorizer{actor: actor}
}

// CurrentActor returns the configured actor.
func (s *StaticAuthorizer) CurrentActor(ctx context.Context) (ports.Actor, error) {
	if s.actor == nil {
		return nil, nil
	}
	return s.actor, nil
}
