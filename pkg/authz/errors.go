package authz

import "errors"

var (
	// ErrPolicyEvaluation wraps an error returned by a policy predicate.
	// It marks decisions that failed outright, as opposed to denials.
	ErrPolicyEvaluation = errors.New("authz: policy evaluation failed")

	// ErrNoSubjectInContext is returned by the middleware when the request
	// context carries no subject.
	ErrNoSubjectInContext = errors.New("authz: no subject in context")

	// ErrLoadingRoles wraps failures of a RoleSource backend.
	ErrLoadingRoles = errors.New("authz: failed to load roles")

	// ErrParsingRoles wraps malformed role definitions from a RoleSource.
	ErrParsingRoles = errors.New("authz: failed to parse role definitions")
)
