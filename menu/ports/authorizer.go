package ports

import "context"

// Authorizer resolves the actor the current population pass filters for.
type Authorizer interface {
	// CurrentActor returns the acting user, or nil when there is none.
	// A nil actor disables permission filtering entirely.
	CurrentActor(ctx context.Context) (Actor, error)
}

// Actor answers permission checks for one acting user.
type Actor interface {
	// HasAnyPermission reports whether the actor holds at least one of the
	// given permissions (OR semantics).
	HasAnyPermission(permissions []string) bool
}
