package authz

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authzkit/pkg/permissions"
)

// Engine combines a role registry, a policy registry and the decision
// pipeline into one authorization unit. Create one instance per isolation
// boundary (e.g., per tenant).
//
// The engine performs no internal locking: registries are expected to be
// populated at startup and read-only afterwards. Concurrent Can calls are
// safe; callers who register roles or policies under live read traffic
// must synchronize those calls themselves.
type Engine struct {
	roles    map[string]Role
	policies map[string]PolicyFn
}

// New creates an empty authorization engine.
func New() *Engine {
	return &Engine{
		roles:    make(map[string]Role),
		policies: make(map[string]PolicyFn),
	}
}

// AddRole stores a role definition keyed by its name, replacing any prior
// definition with the same name. Inherits targets are not validated here;
// unknown names simply contribute nothing at decision time, which also
// permits forward references during startup wiring.
func (e *Engine) AddRole(role Role) {
	e.roles[role.Name] = role
}

// AddPolicy registers a policy predicate for an exact permission string,
// replacing any prior predicate for the same string. The key is the
// literal permission passed to Can, never a pattern.
func (e *Engine) AddPolicy(permission string, fn PolicyFn) {
	e.policies[permission] = fn
}

// Can answers whether the subject may exercise the requested permission.
//
// The decision runs in three short-circuiting stages:
//
//  1. Resolve the subject's effective permission set: every pattern
//     reachable from subject.Roles through inheritance, plus the
//     subject's direct permissions.
//  2. The request is denied with ReasonPermissionNotFound unless at
//     least one pattern in that set matches the permission.
//  3. If a policy predicate is registered for the exact permission
//     string, its verdict decides the outcome (ReasonPolicyDenied on
//     false); with no predicate the match alone grants access.
//
// A predicate error aborts the decision: Can returns a zero
// Authorization and an error wrapping ErrPolicyEvaluation, so callers
// can tell "access denied" apart from "policy could not be evaluated".
// A nil authCtx is replaced with an empty Context before the predicate
// runs.
func (e *Engine) Can(ctx context.Context, subject Subject, permission string, authCtx Context) (Authorization, error) {
	effective := e.EffectivePermissions(subject.Roles)
	effective = append(effective, subject.Permissions...)

	if !permissions.MatchAny(effective, permission) {
		return Authorization{
			Allowed:    false,
			Reason:     ReasonPermissionNotFound,
			Permission: permission,
		}, nil
	}

	fn, ok := e.policies[permission]
	if !ok {
		return Authorization{Allowed: true, Permission: permission}, nil
	}

	if authCtx == nil {
		authCtx = make(Context)
	}

	allowed, err := fn(ctx, subject, authCtx)
	if err != nil {
		return Authorization{}, errors.Join(ErrPolicyEvaluation, err)
	}
	if !allowed {
		return Authorization{
			Allowed:    false,
			Reason:     ReasonPolicyDenied,
			Permission: permission,
		}, nil
	}

	return Authorization{Allowed: true, Permission: permission}, nil
}

// CanAny reports the first allowed decision among the given permissions.
// With no permissions the request is vacuously allowed. If every check
// denies, the denial for the last permission is returned.
func (e *Engine) CanAny(ctx context.Context, subject Subject, perms []string, authCtx Context) (Authorization, error) {
	if len(perms) == 0 {
		return Authorization{Allowed: true}, nil
	}

	var last Authorization
	for _, p := range perms {
		decision, err := e.Can(ctx, subject, p, authCtx)
		if err != nil {
			return Authorization{}, err
		}
		if decision.Allowed {
			return decision, nil
		}
		last = decision
	}
	return last, nil
}

// CanAll reports whether every given permission is allowed, returning the
// first denial encountered. With no permissions the request is vacuously
// allowed.
func (e *Engine) CanAll(ctx context.Context, subject Subject, perms []string, authCtx Context) (Authorization, error) {
	var last Authorization
	for _, p := range perms {
		decision, err := e.Can(ctx, subject, p, authCtx)
		if err != nil {
			return Authorization{}, err
		}
		if !decision.Allowed {
			return decision, nil
		}
		last = decision
	}
	if len(perms) == 0 {
		return Authorization{Allowed: true}, nil
	}
	return last, nil
}
