package model

import "fmt"

// UnitRole is the abstract role of a placeable unit, independent of the
// identifiers a particular engine build uses for it
type UnitRole string

const (
	RoleWall         UnitRole = "wall"
	RoleGenerator    UnitRole = "generator"
	RoleTurret       UnitRole = "turret"
	RoleFastAttacker UnitRole = "fast_attacker"
	RoleAreaAttacker UnitRole = "area_attacker"
	RoleDisruptor    UnitRole = "disruptor"
)

// RoleOrder lists roles in the order the engine declares them in its unit table
var RoleOrder = []UnitRole{
	RoleWall,
	RoleGenerator,
	RoleTurret,
	RoleFastAttacker,
	RoleAreaAttacker,
	RoleDisruptor,
}

// Stationary reports whether units of this role are structures
func (r UnitRole) Stationary() bool {
	switch r {
	case RoleWall, RoleGenerator, RoleTurret:
		return true
	default:
		return false
	}
}

// UnitKind is the engine identifier for a unit type (its shorthand)
type UnitKind string

// Owner identifies which side a unit belongs to
type Owner string

const (
	OwnerSelf  Owner = "self"
	OwnerEnemy Owner = "enemy"
)

// Unit is a unit currently on the board
type Unit struct {
	Kind   UnitKind
	Owner  Owner
	At     Coordinate
	Health float64
}

// Resource identifies one of the two currency pools
type Resource string

const (
	// ResourceStructural pays for stationary units
	ResourceStructural Resource = "structural"
	// ResourceMobile pays for mobile units
	ResourceMobile Resource = "mobile"
)

// Action is a single spawn queued for submission
type Action struct {
	Kind UnitKind   `json:"kind"`
	At   Coordinate `json:"at"`
}

// UnitBindings maps abstract roles to engine unit kinds.
// It is resolved once per game and never modified afterwards.
type UnitBindings struct {
	byRole map[UnitRole]UnitKind
	byKind map[UnitKind]UnitRole
}

// NewUnitBindings builds bindings from a role -> kind mapping.
// Every role in RoleOrder must be bound to a distinct, non-empty kind.
func NewUnitBindings(kinds map[UnitRole]UnitKind) (UnitBindings, error) {
	b := UnitBindings{
		byRole: make(map[UnitRole]UnitKind, len(RoleOrder)),
		byKind: make(map[UnitKind]UnitRole, len(RoleOrder)),
	}
	for _, role := range RoleOrder {
		kind, ok := kinds[role]
		if !ok || kind == "" {
			return UnitBindings{}, fmt.Errorf("%w: %s", ErrMissingUnitRole, role)
		}
		if other, dup := b.byKind[kind]; dup {
			return UnitBindings{}, fmt.Errorf("%w: %q bound to both %s and %s", ErrDuplicateUnitKind, kind, other, role)
		}
		b.byRole[role] = kind
		b.byKind[kind] = role
	}
	return b, nil
}

// Kind returns the engine kind bound to role, or "" if unbound
func (b UnitBindings) Kind(role UnitRole) UnitKind {
	return b.byRole[role]
}

// Role returns the role bound to kind
func (b UnitBindings) Role(kind UnitKind) (UnitRole, bool) {
	r, ok := b.byKind[kind]
	return r, ok
}

// IsStationary reports whether kind is bound to a stationary role
func (b UnitBindings) IsStationary(kind UnitKind) bool {
	r, ok := b.byKind[kind]
	return ok && r.Stationary()
}

// Map returns a copy of the role -> kind mapping
func (b UnitBindings) Map() map[UnitRole]UnitKind {
	m := make(map[UnitRole]UnitKind, len(b.byRole))
	for r, k := range b.byRole {
		m[r] = k
	}
	return m
}
