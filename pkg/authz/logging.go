package authz

import (
	"context"
	"log/slog"
	"time"
)

// LoggingAuthorizer decorates an Authorizer with structured decision
// logging: denials at warn level, grants at debug, evaluation failures
// at error. Wrap the engine once at wiring time:
//
//	engine := authz.New()
//	auth := authz.NewLoggingAuthorizer(engine, slog.Default())
type LoggingAuthorizer struct {
	next Authorizer
	log  *slog.Logger
}

// NewLoggingAuthorizer wraps an Authorizer with decision logging.
// A nil logger falls back to slog.Default().
func NewLoggingAuthorizer(next Authorizer, log *slog.Logger) *LoggingAuthorizer {
	if log == nil {
		log = slog.Default()
	}
	return &LoggingAuthorizer{next: next, log: log}
}

// Can delegates to the wrapped Authorizer and logs the outcome.
func (a *LoggingAuthorizer) Can(ctx context.Context, subject Subject, permission string, authCtx Context) (Authorization, error) {
	start := time.Now()
	decision, err := a.next.Can(ctx, subject, permission, authCtx)

	attrs := []any{
		slog.String("subject_id", subject.ID),
		slog.String("permission", permission),
		slog.Duration("duration", time.Since(start)),
	}

	switch {
	case err != nil:
		a.log.ErrorContext(ctx, "authorization failed", append(attrs, slog.Any("error", err))...)
	case !decision.Allowed:
		a.log.WarnContext(ctx, "authorization denied", append(attrs, slog.String("reason", decision.Reason))...)
	default:
		a.log.DebugContext(ctx, "authorization granted", attrs...)
	}

	return decision, err
}
