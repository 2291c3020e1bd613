package audit_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/agenttrust/agenttrust/pkg/envelope"
	"github.com/agenttrust/agenttrust/pkg/trust_server/audit"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	mock_storage "github.com/agenttrust/agenttrust/test/mock/trust_server/storage"
)

type LedgerTestSuite struct {
	suite.Suite

	ctx          context.Context
	ctrl         *gomock.Controller
	auditStorage *mock_storage.MockAuditStorage
	tx           *mock_storage.MockTx
	ledger       audit.Ledger
}

func TestLedger(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.auditStorage = mock_storage.NewMockAuditStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.ledger = audit.NewLedger(audit.WithAuditStorage(s.auditStorage))
}

func (s *LedgerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerTestSuite) TestAppendGenesis() {
	req := audit.AppendRequest{
		Source: "cert-authority",
		Action: "certificate_issued",
		Actor:  "did:agent:ca",
	}

	var appended model.AuditEvent
	gomock.InOrder(
		s.auditStorage.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.tx, s.ctx, nil),
		s.auditStorage.EXPECT().GetLastEvent(gomock.Any(), s.tx).Return(model.AuditEvent{}, model.ErrAuditEventNotFound),
		s.auditStorage.EXPECT().AppendEvent(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, event model.AuditEvent) error {
				appended = event
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	event, err := s.ledger.Append(s.ctx, 1700000000, req)
	s.Require().NoError(err)
	s.Assert().Equal(appended, event)
	s.Assert().NotEmpty(event.ID)
	s.Assert().Equal(model.AuditGenesisHash, event.PreviousHash)

	body, err := event.CanonicalBody()
	s.Require().NoError(err)
	s.Assert().Equal(envelope.SHA512(body), event.Hash)
}

func (s *LedgerTestSuite) TestAppendChainsToLastEvent() {
	lastEvent := model.AuditEvent{
		ID:           "prev-event",
		Timestamp:    1699999999,
		Source:       "cert-authority",
		Action:       "ca_bootstrapped",
		PreviousHash: model.AuditGenesisHash,
		Hash:         envelope.SHA512([]byte("previous body")),
	}

	var appended model.AuditEvent
	gomock.InOrder(
		s.auditStorage.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.tx, s.ctx, nil),
		s.auditStorage.EXPECT().GetLastEvent(gomock.Any(), s.tx).Return(lastEvent, nil),
		s.auditStorage.EXPECT().AppendEvent(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, event model.AuditEvent) error {
				appended = event
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.ledger.Append(s.ctx, 1700000000, audit.AppendRequest{
		Source: "cert-authority",
		Action: "certificate_revoked",
		Actor:  "did:agent:ca",
	})
	s.Require().NoError(err)
	s.Assert().Equal(lastEvent.Hash, appended.PreviousHash)
}

func (s *LedgerTestSuite) TestAppendRejectsInvalidRequest() {
	_, err := s.ledger.Append(s.ctx, 1700000000, audit.AppendRequest{})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *LedgerTestSuite) TestAppendTxUsesCallerTransaction() {
	gomock.InOrder(
		s.auditStorage.EXPECT().GetLastEvent(gomock.Any(), s.tx).Return(model.AuditEvent{}, model.ErrAuditEventNotFound),
		s.auditStorage.EXPECT().AppendEvent(gomock.Any(), s.tx, gomock.Any()).Return(nil),
	)

	event, err := s.ledger.AppendTx(s.ctx, s.tx, 1700000000, audit.AppendRequest{
		Source: "auth-service",
		Action: "challenge_verified",
		Actor:  "did:agent:alice",
	})
	s.Require().NoError(err)
	s.Assert().Equal(model.AuditGenesisHash, event.PreviousHash)
}

func (s *LedgerTestSuite) TestAppendSignsEvents() {
	signKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	s.Require().NoError(err)

	ledger := audit.NewLedger(
		audit.WithAuditStorage(s.auditStorage),
		audit.WithSigningKey(signKey, envelope.ES256),
	)

	gomock.InOrder(
		s.auditStorage.EXPECT().GetLastEvent(gomock.Any(), s.tx).Return(model.AuditEvent{}, model.ErrAuditEventNotFound),
		s.auditStorage.EXPECT().AppendEvent(gomock.Any(), s.tx, gomock.Any()).Return(nil),
	)

	event, err := ledger.AppendTx(s.ctx, s.tx, 1700000000, audit.AppendRequest{
		Source: "cert-authority",
		Action: "certificate_issued",
		Actor:  "did:agent:ca",
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(event.Signature)

	body, err := event.CanonicalBody()
	s.Require().NoError(err)
	s.Assert().NoError(envelope.VerifyDetached(event.Signature, body, envelope.ES256, &signKey.PublicKey))
}

func (s *LedgerTestSuite) TestAppendSealsSensitiveDetails() {
	encryptKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	s.Require().NoError(err)

	ledger := audit.NewLedger(
		audit.WithAuditStorage(s.auditStorage),
		audit.WithDetailEncryption(&encryptKey.PublicKey, "public_key"),
	)

	gomock.InOrder(
		s.auditStorage.EXPECT().GetLastEvent(gomock.Any(), s.tx).Return(model.AuditEvent{}, model.ErrAuditEventNotFound),
		s.auditStorage.EXPECT().AppendEvent(gomock.Any(), s.tx, gomock.Any()).Return(nil),
	)

	event, err := ledger.AppendTx(s.ctx, s.tx, 1700000000, audit.AppendRequest{
		Source: "cert-authority",
		Action: "certificate_issued",
		Actor:  "did:agent:ca",
		Details: map[string]string{
			"cert_id":    "cert-1",
			"public_key": "pem bytes",
		},
	})
	s.Require().NoError(err)

	s.Assert().Equal("cert-1", event.Details["cert_id"])
	s.Require().NotEqual("pem bytes", event.Details["public_key"])

	sealed := envelope.JWE{}
	s.Require().NoError(json.Unmarshal([]byte(event.Details["public_key"]), &sealed))
	decrypted, err := envelope.Decrypt(sealed, []any{encryptKey})
	s.Require().NoError(err)
	s.Assert().Equal("pem bytes", string(decrypted))
}

func (s *LedgerTestSuite) TestVerifyChainIntegrity() {
	events := s.makeChain(3)

	s.auditStorage.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	s.auditStorage.EXPECT().ListEvents(gomock.Any(), s.tx, gomock.Any()).Return(
		storage.ListAuditEventsResponse{Total: int64(len(events)), Events: events}, nil,
	)

	result, err := s.ledger.VerifyChainIntegrity(s.ctx)
	s.Require().NoError(err)
	s.Assert().True(result.Valid)
	s.Assert().Empty(result.BrokenAtEventID)
	s.Assert().EqualValues(3, result.CheckedEvents)
}

func (s *LedgerTestSuite) TestVerifyChainIntegrityDetectsTampering() {
	events := s.makeChain(3)
	events[1].Action = "rewritten history"

	s.auditStorage.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	s.auditStorage.EXPECT().ListEvents(gomock.Any(), s.tx, gomock.Any()).Return(
		storage.ListAuditEventsResponse{Total: int64(len(events)), Events: events}, nil,
	)

	result, err := s.ledger.VerifyChainIntegrity(s.ctx)
	s.Require().NoError(err)
	s.Assert().False(result.Valid)
	s.Assert().Equal(events[1].ID, result.BrokenAtEventID)
}

func (s *LedgerTestSuite) TestVerifyChainIntegrityDetectsBrokenLink() {
	events := s.makeChain(3)
	events[2].PreviousHash = envelope.SHA512([]byte("forged"))

	s.auditStorage.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	s.auditStorage.EXPECT().ListEvents(gomock.Any(), s.tx, gomock.Any()).Return(
		storage.ListAuditEventsResponse{Total: int64(len(events)), Events: events}, nil,
	)

	result, err := s.ledger.VerifyChainIntegrity(s.ctx)
	s.Require().NoError(err)
	s.Assert().False(result.Valid)
	s.Assert().Equal(events[2].ID, result.BrokenAtEventID)
}

// makeChain builds a well formed chain of n events starting at the genesis hash.
func (s *LedgerTestSuite) makeChain(n int) []model.AuditEvent {
	events := make([]model.AuditEvent, 0, n)
	previousHash := model.AuditGenesisHash
	for i := 0; i < n; i++ {
		event := model.AuditEvent{
			ID:           "event-" + string(rune('a'+i)),
			Timestamp:    1700000000 + int64(i),
			Source:       "cert-authority",
			Action:       "certificate_issued",
			Actor:        "did:agent:ca",
			PreviousHash: previousHash,
		}
		body, err := event.CanonicalBody()
		s.Require().NoError(err)
		event.Hash = envelope.SHA512(body)
		previousHash = event.Hash
		events = append(events, event)
	}
	return events
}
