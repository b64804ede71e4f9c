package authz

import "context"

// subjectCtxKey is the context key for storing the request subject.
type subjectCtxKey struct{}

// SetSubjectToContext stores the authenticated subject in the context.
// Authentication adapters call this after resolving the request identity.
func SetSubjectToContext(ctx context.Context, subject Subject) context.Context {
	return context.WithValue(ctx, subjectCtxKey{}, subject)
}

// GetSubjectFromContext retrieves the subject stored in the context.
func GetSubjectFromContext(ctx context.Context) (Subject, bool) {
	subject, ok := ctx.Value(subjectCtxKey{}).(Subject)
	return subject, ok
}
