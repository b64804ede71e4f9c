package authz

import "net/http"

// ContextFn builds the policy Context for a request, e.g. from headers,
// route parameters or the client IP.
type ContextFn func(r *http.Request) Context

// SkipFunc defines a function that determines whether to skip the
// permission check for a request.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures the permission-check middleware.
type MiddlewareConfig struct {
	Authorizer Authorizer // decision engine, required
	Permission string     // permission required to pass, required
	ContextFn  ContextFn  // optional policy context builder
	Skip       SkipFunc   // optional request filter to bypass the check
}

// RequirePermission creates middleware that admits a request only when
// the subject in the request context holds the given permission.
// Requests without a subject are rejected with 401, denials with 403,
// and predicate failures with 500.
func RequirePermission(a Authorizer, permission string) func(next http.Handler) http.Handler {
	return RequirePermissionWithConfig(MiddlewareConfig{
		Authorizer: a,
		Permission: permission,
	})
}

// RequirePermissionWithConfig creates permission-check middleware with
// custom configuration.
func RequirePermissionWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			subject, ok := GetSubjectFromContext(r.Context())
			if !ok {
				http.Error(w, ErrNoSubjectInContext.Error(), http.StatusUnauthorized)
				return
			}

			var authCtx Context
			if config.ContextFn != nil {
				authCtx = config.ContextFn(r)
			}

			decision, err := config.Authorizer.Can(r.Context(), subject, config.Permission, authCtx)
			if err != nil {
				// Predicate failure, not a denial: the policy could not
				// be evaluated at all.
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if !decision.Allowed {
				http.Error(w, decision.Reason, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
