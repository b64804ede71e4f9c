package authz

import "context"

// Denial reasons reported in Authorization.Reason.
const (
	// ReasonPermissionNotFound means the requested permission is not covered
	// by any pattern in the subject's effective permission set.
	ReasonPermissionNotFound = "Permission not found in subject roles/permissions"

	// ReasonPolicyDenied means the permission was covered, but the policy
	// predicate registered for it returned false.
	ReasonPolicyDenied = "Access denied by policy"
)

// Role is a named bundle of permission patterns, optionally inheriting
// other roles. The name is the registry key: registering a role with an
// existing name replaces the prior definition.
type Role struct {
	// Name uniquely identifies the role within one engine instance.
	Name string `json:"name" yaml:"name"`

	// Level is informational metadata reserved for future tie-break
	// policies. The decision pipeline does not read it.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Permissions are the patterns granted directly to this role.
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`

	// Inherits lists role names whose permissions this role also grants.
	// Targets are resolved lazily at decision time; forward references and
	// cycles are tolerated, unknown names contribute nothing.
	Inherits []string `json:"inherits,omitempty" yaml:"inherits,omitempty"`
}

// Subject is the identity requesting access. Subjects are caller-owned
// and never mutated by the engine.
type Subject struct {
	// ID identifies the subject; the engine treats it as opaque.
	ID string `json:"id"`

	// Roles are the role names assigned to the subject.
	Roles []string `json:"roles,omitempty"`

	// Permissions are patterns granted directly, bypassing roles entirely.
	Permissions []string `json:"permissions,omitempty"`

	// Attributes carry arbitrary subject data read only by policy predicates.
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Context is an opaque per-call mapping passed through to policy
// predicates. The engine never inspects its contents.
type Context map[string]any

// PolicyFn is a policy predicate keyed by an exact permission string.
// It receives the subject and the per-call Context and reports whether
// the contextual constraint holds. Slow predicates (external lookups)
// block on ctx-aware calls; a returned error fails the whole decision
// rather than denying it.
type PolicyFn func(ctx context.Context, subject Subject, authCtx Context) (bool, error)

// Authorization is the structured outcome of a single decision.
// Reason is set iff the decision is a denial.
type Authorization struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	Permission string `json:"permission"`
}

// Authorizer is the decision surface consumed by adapters (middleware,
// HTTP modules, decorators). *Engine implements it.
type Authorizer interface {
	Can(ctx context.Context, subject Subject, permission string, authCtx Context) (Authorization, error)
}
