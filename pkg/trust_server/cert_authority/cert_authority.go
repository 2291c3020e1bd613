// Package cert_authority implements the certificate authority of the trust
// server: issuing, revoking and verifying identity certificates that bind a
// subject DID to a public key at a trust level.
package cert_authority

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/agenttrust/agenttrust/pkg/did"
	"github.com/agenttrust/agenttrust/pkg/envelope"
	"github.com/agenttrust/agenttrust/pkg/pkix"
	"github.com/agenttrust/agenttrust/pkg/trust_server/audit"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/agenttrust/agenttrust/pkg/util"
)

const (
	auditSource = "cert-authority"

	// Validity of the self-signed root certificate.
	rootCertValiditySeconds = 20 * 365 * 86400

	// How long a published revocation list stays fresh.
	revocationListNextUpdateSeconds = 86400
)

type CertAuthority interface {
	// Bootstrap loads the root identity of the authority, creating and
	// self-signing it on first run.
	Bootstrap(ctx context.Context, ts int64) error

	IssueCertificate(ctx context.Context, ts int64, req IssueCertificateRequest) (model.Certificate, error)
	RevokeCertificate(ctx context.Context, ts int64, req RevokeCertificateRequest) (model.Certificate, error)

	// VerifyCertificate verifies the stored certificate with the given ID.
	// Failing a check yields an invalid result, not an error; errors are
	// reserved for storage failures.
	VerifyCertificate(ctx context.Context, ts int64, certID string) (VerifyResult, error)

	GetCertificate(ctx context.Context, certID string) (model.Certificate, error)
	GetCertificatesByDID(ctx context.Context, subjectDID string) ([]model.Certificate, error)
	ListCertificates(ctx context.Context, req storage.ListCertificatesRequest) (storage.ListCertificatesResponse, error)
	GetRevocationList(ctx context.Context) (model.RevocationList, error)
	GetCACertificate(ctx context.Context) (model.Certificate, error)
}

type IssueCertificateRequest struct {
	Requester string `json:"requester"` // Who makes the request.

	SubjectDID   string                `json:"subject_did"`   // DID of the certificate subject.
	PublicKey    string                `json:"public_key"`    // PEM encoded public key to be certified.
	KeyUsages    []model.KeyUsage      `json:"key_usages"`    // Requested key usages.
	TrustLevel   model.TrustLevel      `json:"trust_level"`   // Requested trust level.
	Extensions   []model.CertExtension `json:"extensions"`    // Optional extensions.
	ValidityDays int                   `json:"validity_days"` // Length of the validity window in days.

	// Proof of possession: a compact JWS over Challenge, signed with the
	// private half of PublicKey.
	Challenge         string `json:"challenge"`
	ProofOfPossession string `json:"proof_of_possession"`
}

type RevokeCertificateRequest struct {
	CertID     string `json:"cert_id"`     // ID of the certificate to be revoked.
	Reason     string `json:"reason"`      // Reason of the revocation.
	RevokerDID string `json:"revoker_did"` // DID requesting the revocation.
}

// VerifyResult is the outcome of a certificate verification.
type VerifyResult struct {
	Valid      bool             `json:"valid"`
	TrustLevel model.TrustLevel `json:"trust_level,omitempty"` // Trust level of the certificate when valid.
	Reason     string           `json:"reason,omitempty"`      // Why the certificate is invalid.
}

type _CertAuthority struct {
	certStorage storage.CertStorage
	ledger      audit.Ledger

	caDID     string
	keyOption pkix.PrivateKeyOption

	mtx      sync.RWMutex
	rootCert model.Certificate
	rootKey  any
}

type CertAuthorityOption func(*_CertAuthority)

func WithCertStorage(certStorage storage.CertStorage) CertAuthorityOption {
	return func(ca *_CertAuthority) {
		ca.certStorage = certStorage
	}
}

func WithLedger(ledger audit.Ledger) CertAuthorityOption {
	return func(ca *_CertAuthority) {
		ca.ledger = ledger
	}
}

func WithCADID(caDID string) CertAuthorityOption {
	return func(ca *_CertAuthority) {
		ca.caDID = caDID
	}
}

func WithKeyOption(option pkix.PrivateKeyOption) CertAuthorityOption {
	return func(ca *_CertAuthority) {
		ca.keyOption = option
	}
}

func NewCertAuthority(opts ...CertAuthorityOption) *_CertAuthority {
	ca := &_CertAuthority{
		keyOption: pkix.PrivateKeyOption{
			KeyType:   pkix.PrivateKeyTypeECDSA,
			CurveType: pkix.ECDSACurveTypeP256,
		},
	}
	for _, opt := range opts {
		opt(ca)
	}

	if ca.certStorage == nil {
		panic("certStorage is required")
	}
	if ca.ledger == nil {
		panic("ledger is required")
	}
	return ca
}

func (ca *_CertAuthority) Bootstrap(ctx context.Context, ts int64) error {
	tx, ctx, err := ca.certStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	resp, err := ca.certStorage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{
		Types: []model.CertType{model.RootCert},
		Limit: 1,
	})
	if err != nil {
		return err
	}
	if len(resp.Certs) > 0 {
		return ca.adoptRoot(resp.Certs[0])
	}

	if ca.caDID == "" {
		ca.caDID = did.NewDID("agent", util.NewUUID()).String()
	}

	privKey, err := pkix.CreatePrivateKey(ca.keyOption)
	if err != nil {
		return err
	}
	privKeyPEM, err := pkix.MarshalPrivateKey(privKey)
	if err != nil {
		return err
	}
	pubKey, err := pkix.PublicKeyOf(privKey)
	if err != nil {
		return err
	}
	pubKeyPEM, err := pkix.MarshalPublicKey(pubKey)
	if err != nil {
		return err
	}

	rootCert := model.Certificate{
		ID:         util.NewUUID(),
		Version:    1,
		Type:       model.RootCert,
		Status:     model.CertStatusActive,
		SubjectDID: ca.caDID,
		IssuerDID:  ca.caDID,
		PublicKey:  pubKeyPEM,
		KeyUsages:  []model.KeyUsage{model.KeyUsageDigitalSignature, model.KeyUsageAssertion},
		TrustLevel: model.TrustLevelEnterprise,
		Extensions: []model.CertExtension{
			{ID: "basic-constraints", Value: "CA:TRUE,pathlen:0", Critical: true},
		},
		NotBefore:  ts,
		NotAfter:   ts + rootCertValiditySeconds,
		IssuedAt:   ts,
		IssuedBy:   ca.caDID,
		PrivateKey: privKeyPEM,
	}
	if err := ca.seal(&rootCert, privKey); err != nil {
		return err
	}

	if err := ca.certStorage.AddCertificate(ctx, tx, rootCert); err != nil {
		return err
	}

	_, err = ca.ledger.AppendTx(ctx, tx, ts, audit.AppendRequest{
		Source:   auditSource,
		Action:   "ca-initialized",
		Resource: rootCert.ID,
		Actor:    ca.caDID,
		Details:  map[string]string{"fingerprint": rootCert.Fingerprint},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	return ca.adoptRoot(rootCert)
}

func (ca *_CertAuthority) adoptRoot(rootCert model.Certificate) error {
	rootKey, err := pkix.ParsePrivateKey([]byte(rootCert.PrivateKey))
	if err != nil {
		return fmt.Errorf("parse root private key: %w", err)
	}

	ca.mtx.Lock()
	defer ca.mtx.Unlock()
	ca.rootCert = rootCert
	ca.rootKey = rootKey
	ca.caDID = rootCert.SubjectDID
	return nil
}

func (ca *_CertAuthority) root() (model.Certificate, any, error) {
	ca.mtx.RLock()
	defer ca.mtx.RUnlock()
	if ca.rootKey == nil {
		return model.Certificate{}, nil, fmt.Errorf("certificate authority is not bootstrapped%w", model.ErrWrongStatus)
	}
	return ca.rootCert, ca.rootKey, nil
}

func (ca *_CertAuthority) IssueCertificate(ctx context.Context, ts int64, req IssueCertificateRequest) (model.Certificate, error) {
	if err := ValidateIssueCertificateRequest(req); err != nil {
		return model.Certificate{}, err
	}

	rootCert, rootKey, err := ca.root()
	if err != nil {
		return model.Certificate{}, err
	}

	if !did.IsValid(req.SubjectDID) {
		return model.Certificate{}, fmt.Errorf("subject DID %q: %w", req.SubjectDID, model.ErrInvalidDID)
	}
	for _, usage := range req.KeyUsages {
		if _, ok := model.AllowedKeyUsages[usage]; !ok {
			return model.Certificate{}, fmt.Errorf("key usage %q: %w", usage, model.ErrInvalidKeyUsage)
		}
	}
	if !rootCert.TrustLevel.IsAuthorized(req.TrustLevel) {
		return model.Certificate{}, fmt.Errorf("authority cannot issue at level %s: %w", req.TrustLevel, model.ErrUnauthorizedTrustLevel)
	}

	subjectKey, err := pkix.ParsePublicKey([]byte(req.PublicKey))
	if err != nil {
		return model.Certificate{}, fmt.Errorf("parse subject public key: %s%w", err.Error(), model.ErrInvalidParameter)
	}
	if err := verifyProofOfPossession(req, subjectKey); err != nil {
		return model.Certificate{}, err
	}

	// Normalized encoding, so key equality is byte equality in the store.
	subjectKeyPEM, err := pkix.MarshalPublicKey(subjectKey)
	if err != nil {
		return model.Certificate{}, err
	}

	tx, ctx, err := ca.certStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Certificate{}, err
	}
	defer tx.Rollback(ctx)

	// One active certificate per (subject DID, public key). A new key or a
	// new DID may always be certified; re-certifying the same pair requires
	// revoking the old certificate first.
	existing, err := ca.certStorage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{
		SubjectDIDs: []string{req.SubjectDID},
		PublicKeys:  []string{subjectKeyPEM},
		Statuses:    []model.CertStatus{model.CertStatusActive},
		Limit:       1,
	})
	if err != nil {
		return model.Certificate{}, err
	}
	if len(existing.Certs) > 0 {
		return model.Certificate{}, fmt.Errorf("certificate %s: %w", existing.Certs[0].ID, model.ErrActiveCertExists)
	}

	cert := model.Certificate{
		ID:         util.NewUUID(),
		Version:    1,
		Type:       model.IdentityCert,
		Status:     model.CertStatusActive,
		SubjectDID: req.SubjectDID,
		IssuerDID:  ca.caDID,
		PublicKey:  subjectKeyPEM,
		KeyUsages:  req.KeyUsages,
		TrustLevel: req.TrustLevel,
		Extensions: req.Extensions,
		NotBefore:  ts,
		NotAfter:   ts + int64(req.ValidityDays)*86400,
		IssuedAt:   ts,
		IssuedBy:   req.Requester,
	}
	if err := ca.seal(&cert, rootKey); err != nil {
		return model.Certificate{}, err
	}

	if err := ca.certStorage.AddCertificate(ctx, tx, cert); err != nil {
		return model.Certificate{}, err
	}

	_, err = ca.ledger.AppendTx(ctx, tx, ts, audit.AppendRequest{
		Source:   auditSource,
		Action:   "certificate-issued",
		Resource: cert.ID,
		Actor:    req.Requester,
		Details: map[string]string{
			"subject_did": cert.SubjectDID,
			"trust_level": cert.TrustLevel.String(),
			"fingerprint": cert.Fingerprint,
		},
	})
	if err != nil {
		return model.Certificate{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Certificate{}, err
	}
	return cert, nil
}

func (ca *_CertAuthority) RevokeCertificate(ctx context.Context, ts int64, req RevokeCertificateRequest) (model.Certificate, error) {
	if err := ValidateRevokeCertificateRequest(req); err != nil {
		return model.Certificate{}, err
	}

	_, rootKey, err := ca.root()
	if err != nil {
		return model.Certificate{}, err
	}

	tx, ctx, err := ca.certStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Certificate{}, err
	}
	defer tx.Rollback(ctx)

	cert, err := ca.getCert(ctx, tx, req.CertID)
	if err != nil {
		return model.Certificate{}, err
	}

	if req.RevokerDID != ca.caDID && req.RevokerDID != cert.SubjectDID {
		return model.Certificate{}, fmt.Errorf("%s may not revoke certificate %s: %w", req.RevokerDID, cert.ID, model.ErrUnauthorizedRevoker)
	}
	if cert.Status == model.CertStatusRevoked {
		return model.Certificate{}, fmt.Errorf("certificate %s is already revoked%w", req.CertID, model.ErrWrongStatus)
	}

	cert.Status = model.CertStatusRevoked
	cert.Version += 1
	cert.RevokedAt = ts
	cert.RevokedBy = req.RevokerDID
	cert.RevokeReason = req.Reason

	if err := ca.certStorage.AddCertificate(ctx, tx, cert); err != nil {
		return model.Certificate{}, err
	}

	list, err := ca.certStorage.GetRevocationList(ctx, tx, ca.caDID)
	if err != nil {
		return model.Certificate{}, err
	}
	list.IssuerDID = ca.caDID
	list.Entries = append(list.Entries, model.RevocationEntry{
		CertificateID: cert.ID,
		RevokedAt:     ts,
		RevokedBy:     req.RevokerDID,
		Reason:        req.Reason,
	})
	list.UpdatedAt = ts
	list.NextUpdate = ts + revocationListNextUpdateSeconds
	if err := ca.signRevocationList(&list, rootKey); err != nil {
		return model.Certificate{}, err
	}
	if err := ca.certStorage.PutRevocationList(ctx, tx, list); err != nil {
		return model.Certificate{}, err
	}

	_, err = ca.ledger.AppendTx(ctx, tx, ts, audit.AppendRequest{
		Source:   auditSource,
		Action:   "certificate-revoked",
		Resource: cert.ID,
		Actor:    req.RevokerDID,
		Details: map[string]string{
			"subject_did": cert.SubjectDID,
			"reason":      req.Reason,
		},
	})
	if err != nil {
		return model.Certificate{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Certificate{}, err
	}

	cert.PrivateKey = "" // Do not return the private key.
	return cert, nil
}

func (ca *_CertAuthority) VerifyCertificate(ctx context.Context, ts int64, certID string) (VerifyResult, error) {
	rootCert, rootKey, err := ca.root()
	if err != nil {
		return VerifyResult{}, err
	}
	rootPubKey, err := pkix.PublicKeyOf(rootKey)
	if err != nil {
		return VerifyResult{}, err
	}

	// Write transaction because verification may observe and persist a lapsed
	// validity window. The serializable level keeps the status check atomic
	// against a concurrent revocation.
	tx, ctx, err := ca.certStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return VerifyResult{}, err
	}
	defer tx.Rollback(ctx)

	cert, err := ca.getCert(ctx, tx, certID)
	if err != nil {
		if errors.Is(err, model.ErrDataNotFound) {
			return VerifyResult{Valid: false, Reason: "certificate not found"}, nil
		}
		return VerifyResult{}, err
	}

	if cert.Status == model.CertStatusRevoked {
		return VerifyResult{Valid: false, Reason: "certificate is revoked"}, nil
	}
	if cert.Status == model.CertStatusExpired {
		return VerifyResult{Valid: false, Reason: "certificate is expired"}, nil
	}

	if ts > cert.NotAfter {
		// Lazily observed expiry. Persist the terminal state.
		cert.Status = model.CertStatusExpired
		cert.Version += 1
		if err := ca.certStorage.AddCertificate(ctx, tx, cert); err != nil {
			return VerifyResult{}, err
		}
		if err := tx.Commit(ctx); err != nil {
			return VerifyResult{}, err
		}
		return VerifyResult{Valid: false, Reason: "certificate is expired"}, nil
	}
	if ts < cert.NotBefore {
		return VerifyResult{Valid: false, Reason: "certificate is not yet valid"}, nil
	}

	body, err := cert.CanonicalBody()
	if err != nil {
		return VerifyResult{}, err
	}
	fingerprint, err := cert.CalculateFingerprint()
	if err != nil {
		return VerifyResult{}, err
	}
	if fingerprint != cert.Fingerprint {
		return VerifyResult{Valid: false, Reason: "certificate fingerprint mismatch"}, nil
	}

	algorithm := envelope.AlgorithmForKey(rootPubKey)
	payload, err := envelope.VerifyCompact(cert.Signature, algorithm, rootPubKey)
	if err != nil || !bytes.Equal(payload, body) {
		return VerifyResult{Valid: false, Reason: "certificate signature mismatch"}, nil
	}

	list, err := ca.certStorage.GetRevocationList(ctx, tx, rootCert.SubjectDID)
	if err != nil {
		return VerifyResult{}, err
	}
	if list.Contains(cert.ID) {
		return VerifyResult{Valid: false, Reason: "certificate is revoked"}, nil
	}

	return VerifyResult{Valid: true, TrustLevel: cert.TrustLevel}, nil
}

func (ca *_CertAuthority) GetCertificate(ctx context.Context, certID string) (model.Certificate, error) {
	tx, ctx, err := ca.certStorage.CreateTx(ctx)
	if err != nil {
		return model.Certificate{}, err
	}
	defer tx.Rollback(ctx)

	cert, err := ca.getCert(ctx, tx, certID)
	if err != nil {
		return model.Certificate{}, err
	}
	cert.PrivateKey = "" // Do not return the private key.
	return cert, nil
}

func (ca *_CertAuthority) GetCertificatesByDID(ctx context.Context, subjectDID string) ([]model.Certificate, error) {
	resp, err := ca.ListCertificates(ctx, storage.ListCertificatesRequest{
		SubjectDIDs: []string{subjectDID},
		Types:       []model.CertType{model.IdentityCert},
		Limit:       100,
	})
	if err != nil {
		return nil, err
	}
	return resp.Certs, nil
}

func (ca *_CertAuthority) ListCertificates(ctx context.Context, req storage.ListCertificatesRequest) (storage.ListCertificatesResponse, error) {
	if err := ValidateListCertificatesRequest(req); err != nil {
		return storage.ListCertificatesResponse{}, err
	}

	tx, ctx, err := ca.certStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListCertificatesResponse{}, err
	}
	defer tx.Rollback(ctx)

	result, err := ca.certStorage.ListCertificates(ctx, tx, req)
	if err != nil {
		return storage.ListCertificatesResponse{}, err
	}
	for i := range result.Certs {
		result.Certs[i].PrivateKey = "" // Do not return the private key.
	}
	return result, nil
}

func (ca *_CertAuthority) GetRevocationList(ctx context.Context) (model.RevocationList, error) {
	rootCert, _, err := ca.root()
	if err != nil {
		return model.RevocationList{}, err
	}

	tx, ctx, err := ca.certStorage.CreateTx(ctx)
	if err != nil {
		return model.RevocationList{}, err
	}
	defer tx.Rollback(ctx)

	return ca.certStorage.GetRevocationList(ctx, tx, rootCert.SubjectDID)
}

func (ca *_CertAuthority) GetCACertificate(ctx context.Context) (model.Certificate, error) {
	rootCert, _, err := ca.root()
	if err != nil {
		return model.Certificate{}, err
	}
	rootCert.PrivateKey = "" // Do not return the private key.
	return rootCert, nil
}

func (ca *_CertAuthority) getCert(ctx context.Context, tx storage.Tx, certID string) (model.Certificate, error) {
	resp, err := ca.certStorage.ListCertificates(ctx, tx, storage.ListCertificatesRequest{
		IDs:   []string{certID},
		Limit: 1,
	})
	if err != nil {
		return model.Certificate{}, err
	}
	if len(resp.Certs) == 0 {
		return model.Certificate{}, model.ErrCertNotFound
	}
	return resp.Certs[0], nil
}

// seal computes the fingerprint and signature of the certificate body.
func (ca *_CertAuthority) seal(cert *model.Certificate, signKey any) error {
	fingerprint, err := cert.CalculateFingerprint()
	if err != nil {
		return err
	}
	cert.Fingerprint = fingerprint

	body, err := cert.CanonicalBody()
	if err != nil {
		return err
	}
	pubKey, err := pkix.PublicKeyOf(signKey)
	if err != nil {
		return err
	}
	signature, err := envelope.SignCompact(body, envelope.AlgorithmForKey(pubKey), signKey)
	if err != nil {
		return err
	}
	cert.Signature = signature
	return nil
}

func (ca *_CertAuthority) signRevocationList(list *model.RevocationList, signKey any) error {
	list.Signature = ""
	body, err := list.CanonicalBody()
	if err != nil {
		return err
	}
	pubKey, err := pkix.PublicKeyOf(signKey)
	if err != nil {
		return err
	}
	signature, err := envelope.SignCompact(body, envelope.AlgorithmForKey(pubKey), signKey)
	if err != nil {
		return err
	}
	list.Signature = signature
	return nil
}

func verifyProofOfPossession(req IssueCertificateRequest, subjectKey any) error {
	algorithm := envelope.AlgorithmForKey(subjectKey)
	payload, err := envelope.VerifyCompact(req.ProofOfPossession, algorithm, subjectKey)
	if err != nil || !bytes.Equal(payload, []byte(req.Challenge)) {
		return model.ErrInvalidProofOfPossession
	}
	return nil
}

