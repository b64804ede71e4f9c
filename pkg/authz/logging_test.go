package authz_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/pkg/authz"
)

func TestLoggingAuthorizer(t *testing.T) {
	t.Parallel()

	newLogger := func() (*slog.Logger, *bytes.Buffer) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return log, &buf
	}

	t.Run("granted decision passes through and logs", func(t *testing.T) {
		t.Parallel()

		log, buf := newLogger()
		auth := authz.NewLoggingAuthorizer(newTestEngine(), log)

		subject := authz.Subject{ID: uuid.NewString(), Roles: []string{"viewer"}}
		decision, err := auth.Can(context.Background(), subject, "content:read", nil)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Contains(t, buf.String(), "authorization granted")
		assert.Contains(t, buf.String(), subject.ID)
	})

	t.Run("denied decision logs reason", func(t *testing.T) {
		t.Parallel()

		log, buf := newLogger()
		auth := authz.NewLoggingAuthorizer(newTestEngine(), log)

		subject := authz.Subject{ID: uuid.NewString(), Roles: []string{"viewer"}}
		decision, err := auth.Can(context.Background(), subject, "content:write", nil)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Contains(t, buf.String(), "authorization denied")
	})

	t.Run("evaluation failure logs error and propagates", func(t *testing.T) {
		t.Parallel()

		engine := authz.New()
		engine.AddRole(authz.Role{Name: "viewer", Permissions: []string{"content:read"}})
		engine.AddPolicy("content:read", func(ctx context.Context, s authz.Subject, c authz.Context) (bool, error) {
			return false, errors.New("directory unavailable")
		})

		log, buf := newLogger()
		auth := authz.NewLoggingAuthorizer(engine, log)

		_, err := auth.Can(context.Background(), authz.Subject{ID: uuid.NewString(), Roles: []string{"viewer"}}, "content:read", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, authz.ErrPolicyEvaluation)
		assert.Contains(t, buf.String(), "authorization failed")
	})
}
