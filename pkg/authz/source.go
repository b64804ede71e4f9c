package authz

import "context"

// RoleSource provides role definitions from an external backend
// (static fixtures, config files, Redis, ...). Sources are consulted
// once at load time, never during a decision.
type RoleSource interface {
	Load(ctx context.Context) ([]Role, error)
}

// LoadRoles registers every role the source yields, in order, replacing
// roles with colliding names (last write wins). Typically called once at
// startup before the engine takes read traffic.
func (e *Engine) LoadRoles(ctx context.Context, source RoleSource) error {
	roles, err := source.Load(ctx)
	if err != nil {
		return err
	}
	for _, role := range roles {
		e.AddRole(role)
	}
	return nil
}

// staticRoleSource serves a fixed set of roles from memory.
type staticRoleSource struct {
	roles []Role
}

// NewStaticRoleSource creates a RoleSource over the given definitions.
// It deep-copies the input so later mutations by the caller do not leak
// into the source.
func NewStaticRoleSource(roles ...Role) RoleSource {
	rolesCopy := make([]Role, len(roles))
	for i, r := range roles {
		permsCopy := make([]string, len(r.Permissions))
		copy(permsCopy, r.Permissions)

		inheritsCopy := make([]string, len(r.Inherits))
		copy(inheritsCopy, r.Inherits)

		rolesCopy[i] = Role{
			Name:        r.Name,
			Level:       r.Level,
			Permissions: permsCopy,
			Inherits:    inheritsCopy,
		}
	}

	return &staticRoleSource{roles: rolesCopy}
}

// Load returns the stored role definitions.
func (s *staticRoleSource) Load(ctx context.Context) ([]Role, error) {
	return s.roles, nil
}
