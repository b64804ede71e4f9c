// Package authz provides an in-process authorization engine combining
// role-based access control with contextual policy checks.
//
// The engine answers one question: given a subject (identity with roles,
// direct permissions and attributes) and a requested permission, is the
// action allowed — and why not if denied.
//
// Key concepts:
//
//   - Role: a named bundle of permission patterns that can inherit from
//     other roles; inheritance may contain cycles, resolution tolerates them
//   - Permission: a concrete capability string such as "post:edit"
//   - Permission pattern: a permission string with optional "*" / "**"
//     wildcards, granted to roles or subjects (see pkg/permissions)
//   - Policy: a predicate keyed by an exact permission string, adding
//     attribute/contextual constraints on top of role coverage
//
// # Decision pipeline
//
// Can runs three short-circuiting stages: resolve the subject's effective
// permission set (roles through inheritance, plus direct grants), match
// the requested permission against that set, then run the policy predicate
// registered for the exact permission string, if any. The result is a
// structured Authorization carrying the verdict and a denial reason.
//
// # Basic usage
//
//	engine := authz.New()
//
//	engine.AddRole(authz.Role{
//	    Name:        "viewer",
//	    Permissions: []string{"content:read"},
//	})
//	engine.AddRole(authz.Role{
//	    Name:        "editor",
//	    Permissions: []string{"content:write", "content:publish"},
//	    Inherits:    []string{"viewer"},
//	})
//
//	engine.AddPolicy("content:publish", func(ctx context.Context, s authz.Subject, c authz.Context) (bool, error) {
//	    return s.Attributes["verified"] == true, nil
//	})
//
//	subject := authz.Subject{ID: userID, Roles: []string{"editor"}}
//	decision, err := engine.Can(ctx, subject, "content:publish", nil)
//	if err != nil {
//	    // policy could not be evaluated; distinct from a denial
//	}
//	if !decision.Allowed {
//	    // decision.Reason explains the denial
//	}
//
// # Loading roles
//
// Role definitions can be registered one by one with AddRole or pulled
// from a RoleSource (static fixtures, a YAML file, a Redis hash):
//
//	if err := engine.LoadRoles(ctx, authz.NewFileRoleSource("roles.yaml")); err != nil {
//	    // handle error
//	}
//
// # Concurrency
//
// The engine holds no locks. Registries are meant to be populated at
// startup and are read-only during decisions, so any number of Can calls
// may run in parallel. Callers who re-register roles or policies under
// live traffic must bring their own synchronization.
//
// # HTTP integration
//
// RequirePermission guards handlers using the subject stored in the
// request context by an authentication layer:
//
//	r.Use(authz.RequirePermission(engine, "reports:export"))
//
// The modules/access package additionally exposes the engine as a small
// HTTP decision endpoint.
package authz
