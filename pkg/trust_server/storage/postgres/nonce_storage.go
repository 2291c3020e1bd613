package postgres

import (
	"context"
	"errors"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) ReserveNonce(ctx context.Context, tx storage.Tx, challenge model.AuthChallenge) error {
	query := `
INSERT INTO challenge_nonce (nonce, did, created_at, expires_at, consumed_at)
VALUES ($1, $2, $3, $4, 0)
ON CONFLICT (nonce) DO NOTHING
`
	result, err := tx.Exec(ctx, query, challenge.Nonce, challenge.DID, challenge.CreatedAt, challenge.ExpiresAt)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNonceConsumed
	}
	return nil
}

func (s *_Storage) ConsumeNonce(ctx context.Context, tx storage.Tx, ts int64, nonce string) (model.AuthChallenge, error) {
	// The row lock makes the check-and-set atomic against a concurrent
	// consume of the same nonce.
	query := `SELECT did, created_at, expires_at, consumed_at FROM challenge_nonce WHERE nonce = $1 FOR UPDATE`

	challenge := model.AuthChallenge{Nonce: nonce}
	var consumedAt int64
	err := tx.QueryRow(ctx, query, nonce).Scan(&challenge.DID, &challenge.CreatedAt, &challenge.ExpiresAt, &consumedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AuthChallenge{}, model.ErrNonceNotFound
	} else if err != nil {
		return model.AuthChallenge{}, err
	}

	if consumedAt != 0 {
		return model.AuthChallenge{}, model.ErrNonceConsumed
	}
	if challenge.ExpiresAt < ts {
		return model.AuthChallenge{}, model.ErrNonceNotFound
	}

	if _, err := tx.Exec(ctx, `UPDATE challenge_nonce SET consumed_at = $2 WHERE nonce = $1`, nonce, ts); err != nil {
		return model.AuthChallenge{}, err
	}
	return challenge, nil
}

func (s *_Storage) RemoveExpiredNonces(ctx context.Context, tx storage.Tx, ts int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM challenge_nonce WHERE expires_at < $1`, ts)
	return err
}
