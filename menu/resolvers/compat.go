package resolvers

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// HostCompat decides whether a plugin's declared host-version requirement
// is satisfied by the host this registry runs inside.
type HostCompat struct {
	host *semver.Version
}

// NewHostCompat creates a HostCompat for the given host version string.
func NewHostCompat(hostVersion string) (*HostCompat, error) {
	v, err := semver.NewVersion(hostVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid host version %q: %w", hostVersion, err)
	}
	return &HostCompat{host: v}, nil
}

// Supports reports whether the host satisfies the given constraint.
// An empty constraint or "latest" places no requirement on the host.
func (c *HostCompat) Supports(constraint string) (bool, error) {
	if constraint == "" || constraint == "latest" {
		return true, nil
	}

	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	return cons.Check(c.host), nil
}
