package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"time"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/internal/api/store"
	"github.com/taskdesk/taskdesk/pkg/cryptox"
	"github.com/taskdesk/taskdesk/pkg/idx"
	"github.com/taskdesk/taskdesk/pkg/jwtx"
	"github.com/taskdesk/taskdesk/pkg/slogx"
)

var (
	ErrEmailTaken             = errors.New("email address is already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInviteRequired         = errors.New("invite token required for first time login")
	ErrInvalidOrExpiredInvite = errors.New("invalid or expired invite token")
	ErrNotAdmin               = errors.New("caller is not an admin")
	ErrClientNotFound         = errors.New("client not found")
	ErrAlreadyActive          = errors.New("client status is already activated")
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 8
)

// IdentityService owns the account lifecycle: signup, invite issuance and the
// invite-gated first login. Sessions it hands out are signed JWTs; everything
// durable lives in the Store.
type IdentityService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration // lifetime of issued session tokens
	InviteTTL  time.Duration // lifetime of issued invite tokens
}

// Register creates a new client account in pending status. No invite token is
// issued here; that is an admin's move.
func (s *IdentityService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input shape before touching the store.
	fe := fieldErrors{}
	if name == "" {
		fe.add("name", "The name field is required.")
	} else if len(name) > maxNameLength {
		fe.add("name", "The name may not be greater than 255 characters.")
	}
	validateEmail(fe, email)
	if password == "" {
		fe.add("password", "The password field is required.")
	} else if len(password) < minPasswordLength {
		fe.add("password", "The password must be at least 8 characters long.")
	}
	if err := fe.err(); err != nil {
		return domain.User{}, err
	}

	// 2. Hash the password. Only the one-way hash is ever stored.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.RoleClient,
		Status:       domain.StatusPending,
	}

	// 3. Insert; the unique index on email is the duplicate check, so two
	// concurrent signups with the same address can't both win.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup attempted with registered email")
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("client registered, awaiting admin invite",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

// Authenticate checks credentials and, for pending accounts, redeems the
// invite token: the token record is deleted and the account flipped to active
// in one transaction, so concurrent redemptions of the same token produce
// exactly one winner. On success a fresh session credential is issued;
// multiple live sessions per user are fine.
func (s *IdentityService) Authenticate(ctx context.Context, email, password, inviteToken string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	fe := fieldErrors{}
	validateEmail(fe, email)
	if password == "" {
		fe.add("password", "The password field is required.")
	}
	if err := fe.err(); err != nil {
		return domain.Session{}, err
	}

	// 1. Look up the user. Unknown email and wrong password fail identically
	// so callers can't probe which addresses are registered.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login with wrong password", slog.String("user_id", user.ID))
		return domain.Session{}, ErrInvalidCredentials
	}

	// 2. First-time login: the invite token gates the pending → active
	// transition.
	if user.Status == domain.StatusPending {
		if inviteToken == "" {
			return domain.Session{}, ErrInviteRequired
		}

		fingerprint := cryptox.FingerprintToken(inviteToken)
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			// Conditional delete: only the matching, unexpired record goes,
			// and the affected-row count decides the race.
			consumed, err := tx.Invites().ConsumeInvite(ctx, user.ID, fingerprint)
			if err != nil {
				return err
			}
			if !consumed {
				return ErrInvalidOrExpiredInvite
			}
			return tx.Users().UpdateUserStatus(ctx, user.ID, domain.StatusActive)
		})
		if err != nil {
			if errors.Is(err, ErrInvalidOrExpiredInvite) {
				log.Warn("login with invalid or expired invite token",
					slog.String("user_id", user.ID),
				)
				return domain.Session{}, ErrInvalidOrExpiredInvite
			}
			log.Error("failed to redeem invite", slog.Any("error", err))
			return domain.Session{}, err
		}

		log.Info("invite redeemed, account activated", slog.String("user_id", user.ID))
	}

	// 3. Issue the session credential.
	claims := jwtx.NewSessionClaims(user.ID, string(user.Role), s.Issuer, s.SessionTTL, time.Now())
	accessToken, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Session{}, err
	}

	return domain.Session{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.SessionTTL.Seconds()),
	}, nil
}

// IssueInvite generates a first-login token for a pending client. The upsert
// is a single statement keyed by user id, so reissuing replaces the prior
// token and two live tokens can never coexist for one user.
func (s *IdentityService) IssueInvite(ctx context.Context, caller domain.Caller, email string) (domain.IssuedInvite, error) {
	log := slogx.FromContext(ctx)

	if !caller.IsAdmin() {
		log.Warn("non-admin attempted to issue invite", slog.String("user_id", caller.UserID))
		return domain.IssuedInvite{}, ErrNotAdmin
	}

	fe := fieldErrors{}
	validateEmail(fe, email)
	if err := fe.err(); err != nil {
		return domain.IssuedInvite{}, err
	}

	// 1. The target must be a client account that hasn't activated yet.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.IssuedInvite{}, ErrClientNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.IssuedInvite{}, err
	}
	if user.Role != domain.RoleClient {
		return domain.IssuedInvite{}, ErrClientNotFound
	}
	if user.Status == domain.StatusActive {
		return domain.IssuedInvite{}, ErrAlreadyActive
	}

	// 2. Generate the raw token and store only its fingerprint.
	token, err := cryptox.GenerateToken(cryptox.TokenSize512)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.IssuedInvite{}, err
	}

	expiresAt := time.Now().UTC().Add(s.InviteTTL)
	invite := domain.InviteToken{
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: expiresAt,
	}

	if err := s.Store.Invites().UpsertInvite(ctx, invite); err != nil {
		log.Error("failed to store invite token", slog.Any("error", err))
		return domain.IssuedInvite{}, err
	}

	log.Info("invite token issued",
		slog.String("target_user_id", user.ID),
		slog.String("issued_by", caller.UserID),
		slog.Time("expires_at", expiresAt),
	)

	// 3. Return the raw token; this is the only time it is visible.
	return domain.IssuedInvite{Token: token, ExpiresAt: expiresAt}, nil
}

func validateEmail(fe fieldErrors, email string) {
	if email == "" {
		fe.add("email", "The email field is required.")
		return
	}
	if len(email) > maxEmailLength {
		fe.add("email", "The email may not be greater than 255 characters.")
		return
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		fe.add("email", "Please provide a valid email address.")
	}
}
