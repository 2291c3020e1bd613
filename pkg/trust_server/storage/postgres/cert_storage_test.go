package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage/postgres"
)

type CertStorageSuite struct {
	suite.Suite

	ctx    context.Context
	pgPool *pgxpool.Pool

	storage storage.CertStorage
}

func TestCertStorage(t *testing.T) {
	suite.Run(t, new(CertStorageSuite))
}

func (s *CertStorageSuite) SetupTest() {
	s.ctx = context.Background()
	s.pgPool = testDBPool(s.T(), "cert", "cert_history", "revocation_list")
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *CertStorageSuite) TearDownTest() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
}

func (s *CertStorageSuite) TestAddCertificate() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	cert := model.Certificate{
		ID:         "test-id",
		Version:    1,
		Type:       model.IdentityCert,
		Status:     model.CertStatusActive,
		SubjectDID: "did:agent:alice",
		PublicKey:  "public key pem",
		IssuedAt:   12345,
	}
	s.Require().NoError(s.storage.AddCertificate(ctx, tx, cert))

	certV2 := cert
	certV2.Version = 2
	certV2.Status = model.CertStatusRevoked
	certV2.RevokedAt = 12346
	s.Require().NoError(s.storage.AddCertificate(ctx, tx, certV2))

	var certOnDB model.Certificate
	query := `SELECT cert FROM cert WHERE id = $1 AND version = $2 AND status = $3 AND updated_at = $4`
	row := tx.QueryRow(ctx, query, certV2.ID, certV2.Version, certV2.Status, certV2.RevokedAt)
	s.Require().NoError(row.Scan(&certOnDB))
	s.Assert().Equal(certV2, certOnDB)

	// Both versions stay in the history table.
	query = `SELECT cert FROM cert_history WHERE id = $1 AND version = $2`
	row = tx.QueryRow(ctx, query, cert.ID, cert.Version)
	s.Require().NoError(row.Scan(&certOnDB))
	s.Assert().Equal(cert, certOnDB)
	row = tx.QueryRow(ctx, query, certV2.ID, certV2.Version)
	s.Require().NoError(row.Scan(&certOnDB))
	s.Assert().Equal(certV2, certOnDB)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *CertStorageSuite) TestListCertificates() {
	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/cert"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())

	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	certIDs := func(resp storage.ListCertificatesResponse) []string {
		return lo.Map(resp.Certs, func(c model.Certificate, _ int) string { return c.ID })
	}

	// All certificates.
	resp, err := s.storage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{Limit: 100})
	s.Require().NoError(err)
	s.Assert().EqualValues(4, resp.Total)
	s.Assert().Equal([]string{"cert-root", "cert-alice-1", "cert-alice-2", "cert-bob-1"}, certIDs(resp))

	// Filter by subject DID.
	resp, err = s.storage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{
		Limit:       100,
		SubjectDIDs: []string{"did:agent:alice"},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"cert-alice-1", "cert-alice-2"}, certIDs(resp))

	// Filter by status and type.
	resp, err = s.storage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{
		Limit:    100,
		Statuses: []model.CertStatus{model.CertStatusRevoked},
		Types:    []model.CertType{model.IdentityCert},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"cert-alice-2"}, certIDs(resp))

	// Filter by public key.
	resp, err = s.storage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{
		Limit:      100,
		PublicKeys: []string{"bob-key-pem"},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"cert-bob-1"}, certIDs(resp))

	// Paging keeps the total.
	resp, err = s.storage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{Offset: 1, Limit: 2})
	s.Require().NoError(err)
	s.Assert().EqualValues(4, resp.Total)
	s.Assert().Equal([]string{"cert-alice-1", "cert-alice-2"}, certIDs(resp))
}

func (s *CertStorageSuite) TestRevocationList() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	// Unknown issuer yields an empty list, not an error.
	list, err := s.storage.GetRevocationList(ctx, tx, "did:agent:authority")
	s.Require().NoError(err)
	s.Assert().Equal("did:agent:authority", list.IssuerDID)
	s.Assert().Empty(list.Entries)

	list.Entries = append(list.Entries, model.RevocationEntry{
		CertificateID: "cert-1",
		RevokedAt:     1700000000,
		RevokedBy:     "did:agent:alice",
		Reason:        "key compromised",
	})
	list.UpdatedAt = 1700000000
	list.NextUpdate = 1700086400
	list.Signature = "signature"
	s.Require().NoError(s.storage.PutRevocationList(ctx, tx, list))

	stored, err := s.storage.GetRevocationList(ctx, tx, "did:agent:authority")
	s.Require().NoError(err)
	s.Assert().Equal(list, stored)

	// Upsert replaces the stored list.
	list.Entries = append(list.Entries, model.RevocationEntry{CertificateID: "cert-2", RevokedAt: 1700000500})
	list.UpdatedAt = 1700000500
	s.Require().NoError(s.storage.PutRevocationList(ctx, tx, list))

	stored, err = s.storage.GetRevocationList(ctx, tx, "did:agent:authority")
	s.Require().NoError(err)
	s.Assert().Len(stored.Entries, 2)

	s.Require().NoError(tx.Commit(ctx))
}
