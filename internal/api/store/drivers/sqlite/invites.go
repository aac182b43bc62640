package sqlite

import (
	"context"
	"time"

	"github.com/taskdesk/taskdesk/internal/api/domain"
)

type invitesRepo struct {
	q querier
}

// UpsertInvite replaces any existing token for the user in one statement.
// user_id is the table's primary key, so the conflict target serializes
// concurrent reissues to last-writer-wins with a single surviving row.
func (r *invitesRepo) UpsertInvite(ctx context.Context, inv domain.InviteToken) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO invite_tokens (user_id, token_hash, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   token_hash = excluded.token_hash,
		   expires_at = excluded.expires_at,
		   updated_at = excluded.updated_at`,
		inv.UserID, inv.TokenHash, inv.ExpiresAt.UTC(), now, now,
	)
	return err
}

// ConsumeInvite is the redemption primitive: a conditional delete whose
// affected-row count decides the race. Under concurrent redeemers of the same
// token, exactly one sees true.
func (r *invitesRepo) ConsumeInvite(ctx context.Context, userID, tokenHash string) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM invite_tokens
		 WHERE user_id = ? AND token_hash = ? AND expires_at > ?`,
		userID, tokenHash, time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitesRepo) GetInviteByUserID(ctx context.Context, userID string) (domain.InviteToken, error) {
	var inv domain.InviteToken
	row := r.q.QueryRowContext(ctx,
		`SELECT user_id, token_hash, expires_at, created_at, updated_at
		 FROM invite_tokens WHERE user_id = ?`, userID)
	err := row.Scan(&inv.UserID, &inv.TokenHash, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.InviteToken{}, mapNotFound(err)
	}
	return inv, nil
}
