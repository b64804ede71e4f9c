package authz

// EffectivePermissions collects every permission pattern reachable from
// the given role names through inheritance.
//
// Resolution is a depth-first traversal over the registry's adjacency
// map with a visited set keyed by role name, so inheritance cycles and
// diamond hierarchies terminate and each role contributes its patterns
// exactly once. Role names that are not registered are skipped silently:
// a subject referencing an unknown role degrades to "no permissions from
// that role" instead of failing the decision.
//
// The result is deduplicated and ordered by first discovery, which makes
// it deterministic for a fixed registry and input order.
func (e *Engine) EffectivePermissions(roleNames []string) []string {
	visited := make(map[string]bool, len(e.roles))
	seen := make(map[string]bool)
	var acc []string

	var walk func(name string)
	walk = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true

		role, ok := e.roles[name]
		if !ok {
			return
		}

		for _, p := range role.Permissions {
			if !seen[p] {
				seen[p] = true
				acc = append(acc, p)
			}
		}
		for _, parent := range role.Inherits {
			walk(parent)
		}
	}

	for _, name := range roleNames {
		walk(name)
	}
	return acc
}
