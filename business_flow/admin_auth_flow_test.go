package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuthFlowLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectPasswordEstablishesAdminSession", func(t *testing.T) {
		store := session.NewMemoryStore()
		flow := NewAdminAuthFlow(store, "secret", "", time.Hour)

		sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "secret"}, "")
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.True(t, sess.IsAdmin)
		assert.NotEmpty(t, sess.ID)

		// The saved session is immediately readable
		loaded, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.True(t, loaded.IsAdmin)
	})

	t.Run("WrongPasswordRejected", func(t *testing.T) {
		store := session.NewMemoryStore()
		flow := NewAdminAuthFlow(store, "secret", "", time.Hour)

		sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "wrong"}, "")
		assert.Nil(t, sess)
		assert.True(t, IsInvalidAdminPassword(err))
	})

	t.Run("MissingSecretFailsAtLoginTime", func(t *testing.T) {
		store := session.NewMemoryStore()
		flow := NewAdminAuthFlow(store, "", "", time.Hour)

		sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "anything"}, "")
		assert.Nil(t, sess)
		assert.True(t, IsAdminSecretMissing(err))
	})

	t.Run("BcryptHashPreferred", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
		require.NoError(t, err)

		store := session.NewMemoryStore()
		flow := NewAdminAuthFlow(store, "plaintext-ignored", string(hash), time.Hour)

		_, err = flow.Login(ctx, &dto.AdminLoginRequest{Password: "plaintext-ignored"}, "")
		assert.True(t, IsInvalidAdminPassword(err))

		sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "hashed-secret"}, "")
		require.NoError(t, err)
		assert.True(t, sess.IsAdmin)
	})

	t.Run("LoginRotatesSessionID", func(t *testing.T) {
		store := session.NewMemoryStore()
		flow := NewAdminAuthFlow(store, "secret", "", time.Hour)

		first, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "secret"}, "")
		require.NoError(t, err)

		second, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "secret"}, first.ID)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		// The old session no longer grants anything
		old, err := store.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Nil(t, old)
	})
}

func TestAdminAuthFlowLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	flow := NewAdminAuthFlow(store, "secret", "", time.Hour)

	sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "secret"}, "")
	require.NoError(t, err)

	require.NoError(t, flow.Logout(ctx, sess.ID))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Logout is idempotent: without a session and repeated
	assert.NoError(t, flow.Logout(ctx, sess.ID))
	assert.NoError(t, flow.Logout(ctx, ""))
}

func TestAdminAuthFlowStatus(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	flow := NewAdminAuthFlow(store, "secret", "", time.Hour)

	t.Run("NoSessionReadsFalse", func(t *testing.T) {
		status := flow.Status(ctx, "")
		assert.False(t, status.IsAdmin)
	})

	t.Run("UnknownSessionReadsFalse", func(t *testing.T) {
		status := flow.Status(ctx, "nope")
		assert.False(t, status.IsAdmin)
	})

	t.Run("AdminSessionReadsTrue", func(t *testing.T) {
		sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "secret"}, "")
		require.NoError(t, err)

		status := flow.Status(ctx, sess.ID)
		assert.True(t, status.IsAdmin)
	})

	t.Run("LogoutDowngradesStatus", func(t *testing.T) {
		sess, err := flow.Login(ctx, &dto.AdminLoginRequest{Password: "secret"}, "")
		require.NoError(t, err)
		require.NoError(t, flow.Logout(ctx, sess.ID))

		status := flow.Status(ctx, sess.ID)
		assert.False(t, status.IsAdmin)
	})
}
