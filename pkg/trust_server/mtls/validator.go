// Package mtls binds TLS client certificates to DID identities. A client
// certificate that carries a DID is checked against the certificates issued to
// that DID and against the DID document's published TLS bindings. A plain
// certificate without a DID only gets the baseline trust level.
package mtls

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/samber/lo"

	"github.com/agenttrust/agenttrust/pkg/did"
	"github.com/agenttrust/agenttrust/pkg/pkix"
	"github.com/agenttrust/agenttrust/pkg/trust_server/cert_authority"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
)

type ValidationResult struct {
	Valid      bool             `json:"valid"`
	DID        string           `json:"did,omitempty"`         // DID bound to the certificate, if any.
	TrustLevel model.TrustLevel `json:"trust_level,omitempty"` // Trust level granted by the validation.
	CertID     string           `json:"cert_id,omitempty"`     // Matching issued certificate, if any.
	Reason     string           `json:"reason,omitempty"`      // Why the certificate is rejected.

	// Certificate is the issued certificate matching the client key. Present
	// only on a valid DID-bound result.
	Certificate *model.Certificate `json:"certificate,omitempty"`
}

type Validator interface {
	// ExtractClientCertificate returns the leaf certificate of the TLS peer.
	ExtractClientCertificate(state *tls.ConnectionState) (*x509.Certificate, error)

	// ValidateClientCertificate validates the client certificate and resolves
	// the trust level of the connection.
	ValidateClientCertificate(ctx context.Context, ts int64, clientCert *x509.Certificate) (ValidationResult, error)
}

type _Validator struct {
	ca       cert_authority.CertAuthority
	resolver did.Resolver
}

type ValidatorOption func(*_Validator)

func WithCertAuthority(ca cert_authority.CertAuthority) ValidatorOption {
	return func(v *_Validator) {
		v.ca = ca
	}
}

func WithDIDResolver(resolver did.Resolver) ValidatorOption {
	return func(v *_Validator) {
		v.resolver = resolver
	}
}

func NewValidator(opts ...ValidatorOption) *_Validator {
	v := &_Validator{}
	for _, opt := range opts {
		opt(v)
	}

	if v.ca == nil {
		panic("cert authority is required")
	}
	if v.resolver == nil {
		panic("DID resolver is required")
	}
	return v
}

func (v *_Validator) ExtractClientCertificate(state *tls.ConnectionState) (*x509.Certificate, error) {
	if state == nil || len(state.PeerCertificates) == 0 {
		return nil, fmt.Errorf("no client certificate presented%w", model.ErrAuthorization)
	}
	return state.PeerCertificates[0], nil
}

func (v *_Validator) ValidateClientCertificate(ctx context.Context, ts int64, clientCert *x509.Certificate) (ValidationResult, error) {
	if clientCert == nil {
		return ValidationResult{Valid: false, Reason: "no client certificate"}, nil
	}

	certDID := pkix.ExtractDID(clientCert)
	if certDID == "" {
		return v.validateAnonymous(ctx, ts, clientCert)
	}
	return v.validateBound(ctx, ts, clientCert, certDID)
}

// validateAnonymous handles certificates without a DID. They are accepted at
// the baseline trust level as long as the validity window holds and the
// fingerprint has not been revoked.
func (v *_Validator) validateAnonymous(ctx context.Context, ts int64, clientCert *x509.Certificate) (ValidationResult, error) {
	if !pkix.VerifyValidityWindow(clientCert, ts) {
		return ValidationResult{Valid: false, Reason: "certificate is outside its validity window"}, nil
	}

	list, err := v.ca.GetRevocationList(ctx)
	if err != nil {
		return ValidationResult{}, err
	}
	if list.Contains(pkix.CertificateFingerprint(clientCert)) {
		return ValidationResult{Valid: false, Reason: "certificate is revoked"}, nil
	}

	return ValidationResult{Valid: true, TrustLevel: model.TrustLevelBasic}, nil
}

// validateBound handles certificates that carry a DID. The certificate must
// match an issued certificate of that DID, that certificate must verify, and
// the DID document must publish a TLS binding for the certificate. All three
// checks must pass; a DID resolution failure fails the validation.
func (v *_Validator) validateBound(ctx context.Context, ts int64, clientCert *x509.Certificate, certDID string) (ValidationResult, error) {
	issued, err := v.ca.GetCertificatesByDID(ctx, certDID)
	if err != nil {
		return ValidationResult{}, err
	}

	pubKeyPEM, err := pkix.MarshalPublicKey(clientCert.PublicKey)
	if err != nil {
		return ValidationResult{}, err
	}
	matched, ok := lo.Find(issued, func(c model.Certificate) bool {
		return c.PublicKey == pubKeyPEM
	})
	if !ok {
		return ValidationResult{Valid: false, DID: certDID, Reason: "no issued certificate matches the client key"}, nil
	}

	verify, err := v.ca.VerifyCertificate(ctx, ts, matched.ID)
	if err != nil {
		return ValidationResult{}, err
	}
	if !verify.Valid {
		return ValidationResult{Valid: false, DID: certDID, CertID: matched.ID, Reason: verify.Reason}, nil
	}

	doc, err := v.resolver.Resolve(ctx, certDID)
	if err != nil {
		// Fail closed. An unresolvable DID cannot confirm the binding.
		return ValidationResult{
			Valid:  false,
			DID:    certDID,
			CertID: matched.ID,
			Reason: fmt.Sprintf("DID resolution failed: %s", err.Error()),
		}, nil
	}

	fingerprint := pkix.CertificateFingerprint(clientCert)
	if !lo.Contains(doc.TLSBindingFingerprints(), fingerprint) {
		return ValidationResult{
			Valid:  false,
			DID:    certDID,
			CertID: matched.ID,
			Reason: "DID document does not bind this certificate",
		}, nil
	}

	return ValidationResult{
		Valid:       true,
		DID:         certDID,
		CertID:      matched.ID,
		TrustLevel:  verify.TrustLevel,
		Certificate: &matched,
	}, nil
}
