package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/internal/api/store"
	"github.com/taskdesk/taskdesk/internal/api/store/drivers/sqlite"
	"github.com/taskdesk/taskdesk/pkg/cryptox"
	"github.com/taskdesk/taskdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// newFileTestStore backs the store with a temp file so concurrent goroutines
// share one database. It opens with the same DSN the application uses, so the
// busy-timeout and journal-mode pragmas are exercised here too.
func newFileTestStore(t *testing.T) store.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newIdentityService(t *testing.T, st store.Store) (*IdentityService, *jwtx.EdDSAVerifier) {
	t.Helper()

	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)

	svc := &IdentityService{
		Store:      st,
		Signer:     signer,
		Issuer:     "test-issuer",
		SessionTTL: time.Hour,
		InviteTTL:  24 * time.Hour,
	}
	return svc, jwtx.VerifierFor("test-issuer", signer)
}

func adminCaller(t *testing.T, st store.Store) domain.Caller {
	t.Helper()

	ctx := context.Background()
	hash, err := cryptox.HashPassword("admin-password")
	require.NoError(t, err)

	admin := domain.User{
		ID:           "01ADMIN0000000000000000000",
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
	}
	require.NoError(t, st.Users().CreateUser(ctx, admin))
	return domain.Caller{UserID: admin.ID, Role: domain.RoleAdmin}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, _ := newIdentityService(t, st)

	t.Run("creates pending client", func(t *testing.T) {
		user, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		require.NotEmpty(t, user.ID)
		require.Equal(t, domain.RoleClient, user.Role)
		require.Equal(t, domain.StatusPending, user.Status)

		// Only the one-way hash is stored, and it verifies.
		stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotEqual(t, "password123", stored.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("password123", stored.PasswordHash))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "Alice Again", "alice@example.com", "password456")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []struct {
			name     string
			userName string
			email    string
			password string
			field    string
		}{
			{"missing name", "", "bob@example.com", "password123", "name"},
			{"missing email", "Bob", "", "password123", "email"},
			{"malformed email", "Bob", "not-an-email", "password123", "email"},
			{"missing password", "Bob", "bob@example.com", "", "password"},
			{"short password", "Bob", "bob@example.com", "short", "password"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tc.userName, tc.email, tc.password)

				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.Contains(t, ve.Fields, tc.field)
			})
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, verifier := newIdentityService(t, st)
	admin := adminCaller(t, st)

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		_, errUnknown := svc.Authenticate(ctx, "ghost@example.com", "password123", "")
		_, errWrong := svc.Authenticate(ctx, "alice@example.com", "wrong-password", "")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown, errWrong)
	})

	t.Run("pending account requires invite token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "password123", "")
		require.ErrorIs(t, err, ErrInviteRequired)
	})

	t.Run("garbage invite token rejected", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "password123", "not-the-token")
		require.ErrorIs(t, err, ErrInvalidOrExpiredInvite)

		// Still pending: a bad token must not activate the account.
		user, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, user.Status)
	})

	t.Run("expired invite token rejected", func(t *testing.T) {
		user, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)

		token := "expired-token-value"
		require.NoError(t, st.Invites().UpsertInvite(ctx, domain.InviteToken{
			UserID:    user.ID,
			TokenHash: cryptox.FingerprintToken(token),
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}))

		_, err = svc.Authenticate(ctx, "alice@example.com", "password123", token)
		require.ErrorIs(t, err, ErrInvalidOrExpiredInvite)
	})

	t.Run("valid invite token activates and issues a session", func(t *testing.T) {
		invite, err := svc.IssueInvite(ctx, admin, "alice@example.com")
		require.NoError(t, err)

		session, err := svc.Authenticate(ctx, "alice@example.com", "password123", invite.Token)
		require.NoError(t, err)
		require.Equal(t, "Bearer", session.TokenType)
		require.Equal(t, int64(3600), session.ExpiresIn)

		user, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.StatusActive, user.Status)

		claims, err := verifier.Verify(session.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, string(domain.RoleClient), claims.Role)

		// The token was consumed; replaying it changes nothing because the
		// account is already active and logs in without one.
		_, err = st.Invites().GetInviteByUserID(ctx, user.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("active account logs in without a token", func(t *testing.T) {
		first, err := svc.Authenticate(ctx, "alice@example.com", "password123", "")
		require.NoError(t, err)
		second, err := svc.Authenticate(ctx, "alice@example.com", "password123", "")
		require.NoError(t, err)

		// Multiple live sessions are allowed and independent.
		require.NotEmpty(t, first.AccessToken)
		require.NotEmpty(t, second.AccessToken)
	})
}

func TestAuthenticateRedemptionRace(t *testing.T) {
	ctx := context.Background()
	st := newFileTestStore(t)
	svc, _ := newIdentityService(t, st)
	admin := adminCaller(t, st)

	_, err := svc.Register(ctx, "Bob", "bob@example.com", "password123")
	require.NoError(t, err)

	invite, err := svc.IssueInvite(ctx, admin, "bob@example.com")
	require.NoError(t, err)

	const attempts = 10
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Authenticate(ctx, "bob@example.com", "password123", invite.Token)
		}(i)
	}
	wg.Wait()

	// Exactly one goroutine consumed the token. The rest either lost the
	// conditional delete or arrived after activation, when no token is needed
	// and the supplied one is ignored; losers that raced the winner see the
	// invalid-token error.
	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrInvalidOrExpiredInvite)
		}
	}
	require.GreaterOrEqual(t, winners, 1)

	user, err := st.Users().GetUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, user.Status)

	_, err = st.Invites().GetInviteByUserID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

// TestConsumeInviteSingleWinner drives the conditional delete directly, with
// the same transaction shape Authenticate uses. Unlike the full login race
// there is no post-activation path that can also succeed, so the outcome is
// pinned: one consumer wins, every other loses the conditional delete cleanly
// rather than erroring with a busy database.
func TestConsumeInviteSingleWinner(t *testing.T) {
	ctx := context.Background()
	st := newFileTestStore(t)
	svc, _ := newIdentityService(t, st)
	admin := adminCaller(t, st)

	_, err := svc.Register(ctx, "Dave", "dave@example.com", "password123")
	require.NoError(t, err)

	invite, err := svc.IssueInvite(ctx, admin, "dave@example.com")
	require.NoError(t, err)

	user, err := st.Users().GetUserByEmail(ctx, "dave@example.com")
	require.NoError(t, err)
	hash := cryptox.FingerprintToken(invite.Token)

	const attempts = 16
	consumed := make([]bool, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.WithTx(ctx, func(tx store.Tx) error {
				ok, err := tx.Invites().ConsumeInvite(ctx, user.ID, hash)
				consumed[i] = ok
				return err
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if consumed[i] {
			winners++
		}
	}
	require.Equal(t, 1, winners)
}

func TestIssueInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, _ := newIdentityService(t, st)
	admin := adminCaller(t, st)

	_, err := svc.Register(ctx, "Carol", "carol@example.com", "password123")
	require.NoError(t, err)

	t.Run("non-admin callers rejected", func(t *testing.T) {
		client := domain.Caller{UserID: "some-client", Role: domain.RoleClient}
		_, err := svc.IssueInvite(ctx, client, "carol@example.com")
		require.ErrorIs(t, err, ErrNotAdmin)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := svc.IssueInvite(ctx, admin, "ghost@example.com")
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("admin accounts are not invite targets", func(t *testing.T) {
		_, err := svc.IssueInvite(ctx, admin, "admin@example.com")
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("issues a long single-view token", func(t *testing.T) {
		invite, err := svc.IssueInvite(ctx, admin, "carol@example.com")
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(invite.Token), 60)
		require.True(t, invite.ExpiresAt.After(time.Now()))

		// Only the fingerprint is stored.
		user, err := st.Users().GetUserByEmail(ctx, "carol@example.com")
		require.NoError(t, err)
		record, err := st.Invites().GetInviteByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.NotEqual(t, invite.Token, record.TokenHash)
		require.Equal(t, cryptox.FingerprintToken(invite.Token), record.TokenHash)
	})

	t.Run("reissuing replaces the previous token", func(t *testing.T) {
		first, err := svc.IssueInvite(ctx, admin, "carol@example.com")
		require.NoError(t, err)
		second, err := svc.IssueInvite(ctx, admin, "carol@example.com")
		require.NoError(t, err)
		require.NotEqual(t, first.Token, second.Token)

		// The replaced token no longer redeems.
		_, err = svc.Authenticate(ctx, "carol@example.com", "password123", first.Token)
		require.ErrorIs(t, err, ErrInvalidOrExpiredInvite)

		// The fresh one does.
		_, err = svc.Authenticate(ctx, "carol@example.com", "password123", second.Token)
		require.NoError(t, err)
	})

	t.Run("active accounts rejected", func(t *testing.T) {
		_, err := svc.IssueInvite(ctx, admin, "carol@example.com")
		require.ErrorIs(t, err, ErrAlreadyActive)
	})
}
