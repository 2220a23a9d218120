// Package catalog holds the static role table: which resources each
// operational role may use, which role bypasses every check, and which role
// is allowed everything except a denied set.
package catalog

import (
	"github.com/opsboard/authz/types"
)

type resourceSet map[types.Resource]struct{}

func newResourceSet(rs ...types.Resource) resourceSet {
	set := make(resourceSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// Catalog maps roles to the resources they may use.
// It is immutable after construction and safe for concurrent reads.
type Catalog struct {
	bypass  types.Role
	denied  map[types.Role]resourceSet
	allowed map[types.Role]resourceSet
}

// Default returns the built-in role table of the ops dashboard
func Default() *Catalog {
	return &Catalog{
		bypass: types.SuperAdmin,
		denied: map[types.Role]resourceSet{
			types.Admin: newResourceSet(types.ResourceSuperAdmin),
		},
		allowed: map[types.Role]resourceSet{
			types.Manager: newResourceSet(
				types.ResourceDashboard,
				types.ResourceProducts,
				types.ResourceCustomers,
				types.ResourcePurchases,
				types.ResourceUnits,
				types.ResourceProduction,
				types.ResourceReports,
				types.ResourceBranches,
				types.ResourceStaff,
			),
			types.Supervisor: newResourceSet(
				types.ResourceDashboard,
				types.ResourceProducts,
				types.ResourcePurchases,
				types.ResourceUnits,
				types.ResourceProduction,
			),
			types.Marketer: newResourceSet(
				types.ResourceDashboard,
				types.ResourceProducts,
				types.ResourceCustomers,
				types.ResourceReports,
			),
			types.Staff: newResourceSet(
				types.ResourceDashboard,
				types.ResourceProducts,
				types.ResourcePurchases,
			),
		},
	}
}

// IsBypass tells if role bypasses every resource and branch check
func (c *Catalog) IsBypass(role types.Role) bool {
	return role == c.bypass
}

// IsDenyList tells if role is allowed everything except a denied set
func (c *Catalog) IsDenyList(role types.Role) bool {
	_, ok := c.denied[role]
	return ok
}

// Denied returns the denied resources of a deny-list role
func (c *Catalog) Denied(role types.Role) []types.Resource {
	set := c.denied[role]
	out := make([]types.Resource, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out
}

// IsDenied tells if role is a deny-list role with res in its denied set
func (c *Catalog) IsDenied(role types.Role, res types.Resource) bool {
	_, ok := c.denied[role][res]
	return ok
}

// Resources returns the static allow-list of role, and whether the role has
// one at all. The function is total: an unknown role yields an empty list
// and ok false, never an error.
func (c *Catalog) Resources(role types.Role) ([]types.Resource, bool) {
	set, ok := c.allowed[role]
	if !ok {
		return nil, false
	}
	out := make([]types.Resource, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out, true
}

// Allows tells if role has a static allow-list, and if res is in it.
// The allow-list is resource-only: actions are not checked here.
func (c *Catalog) Allows(role types.Role, res types.Resource) (allowed, listed bool) {
	set, ok := c.allowed[role]
	if !ok {
		return false, false
	}
	_, in := set[res]
	return in, true
}
