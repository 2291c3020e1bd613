package postgres

import (
	"context"
	"errors"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) AddCertificate(ctx context.Context, tx storage.Tx, cert model.Certificate) error {
	query := `
WITH ins AS (
	INSERT INTO cert (id, version, type, status, subject_did, public_key, created_at, updated_at, cert)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		version = excluded.version,
		type = excluded.type,
		status = excluded.status,
		subject_did = excluded.subject_did,
		public_key = excluded.public_key,
		updated_at = excluded.updated_at,
		cert = excluded.cert
	RETURNING id, version, updated_at, cert
)
INSERT INTO cert_history (id, version, created_at, cert)
SELECT * FROM ins
`
	_, err := tx.Exec(
		ctx,
		query,
		cert.ID,
		cert.Version,
		cert.Type,
		cert.Status,
		cert.SubjectDID,
		cert.PublicKey,
		max(cert.IssuedAt, cert.RevokedAt),
		cert,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *_Storage) ListCertificates(ctx context.Context, tx storage.Tx, req storage.ListCertificatesRequest) (storage.ListCertificatesResponse, error) {
	query := `
WITH filtered AS (
	SELECT rec_id, "cert" FROM "cert"
	WHERE
		(COALESCE(ARRAY_LENGTH($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		(COALESCE(ARRAY_LENGTH($4::TEXT[], 1), 0) = 0 OR subject_did = ANY($4)) AND
		(COALESCE(ARRAY_LENGTH($5::TEXT[], 1), 0) = 0 OR status = ANY($5)) AND
		(COALESCE(ARRAY_LENGTH($6::TEXT[], 1), 0) = 0 OR type = ANY($6)) AND
		(COALESCE(ARRAY_LENGTH($7::TEXT[], 1), 0) = 0 OR public_key = ANY($7))
)
, paged AS (
	SELECT "cert" FROM filtered
	ORDER BY rec_id ASC
	OFFSET $1 LIMIT $2
)
, total AS (
	SELECT COUNT(*) AS total FROM filtered
)
SELECT total, "cert" FROM paged FULL JOIN total ON FALSE
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.IDs,
		req.SubjectDIDs,
		req.Statuses,
		req.Types,
		req.PublicKeys,
	)
	if err != nil {
		return storage.ListCertificatesResponse{}, err
	}
	defer rows.Close()

	result := storage.ListCertificatesResponse{}
	for rows.Next() {
		var total *int64
		var cert *model.Certificate
		if err := rows.Scan(&total, &cert); err != nil {
			return storage.ListCertificatesResponse{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if cert != nil {
			result.Certs = append(result.Certs, *cert)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListCertificatesResponse{}, err
	}

	return result, nil
}

func (s *_Storage) GetRevocationList(ctx context.Context, tx storage.Tx, issuerDID string) (model.RevocationList, error) {
	query := `SELECT list FROM revocation_list WHERE issuer_did = $1`

	list := model.RevocationList{}
	err := tx.QueryRow(ctx, query, issuerDID).Scan(&list)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.RevocationList{IssuerDID: issuerDID}, nil
	} else if err != nil {
		return model.RevocationList{}, err
	}
	return list, nil
}

func (s *_Storage) PutRevocationList(ctx context.Context, tx storage.Tx, list model.RevocationList) error {
	query := `
INSERT INTO revocation_list (issuer_did, updated_at, list)
VALUES ($1, $2, $3)
ON CONFLICT (issuer_did) DO UPDATE SET
	updated_at = excluded.updated_at,
	list = excluded.list
`
	_, err := tx.Exec(ctx, query, list.IssuerDID, list.UpdatedAt, list)
	return err
}
