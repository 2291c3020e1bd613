package model

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

type CertStatus string
type CertType string
type KeyUsage string

const (
	CertStatusActive  CertStatus = "active"
	CertStatusRevoked CertStatus = "revoked"
	CertStatusExpired CertStatus = "expired"

	RootCert     CertType = "root"
	IdentityCert CertType = "identity"

	KeyUsageDigitalSignature     KeyUsage = "digital-signature"
	KeyUsageKeyAgreement         KeyUsage = "key-agreement"
	KeyUsageAuthentication       KeyUsage = "authentication"
	KeyUsageAssertion            KeyUsage = "assertion"
	KeyUsageCapabilityInvocation KeyUsage = "capability-invocation"
)

// AllowedKeyUsages is the closed set of key usages the CA will sign.
var AllowedKeyUsages = map[KeyUsage]struct{}{
	KeyUsageDigitalSignature:     {},
	KeyUsageKeyAgreement:         {},
	KeyUsageAuthentication:       {},
	KeyUsageAssertion:            {},
	KeyUsageCapabilityInvocation: {},
}

// CertExtension is an explicit, tagged certificate extension entry.
type CertExtension struct {
	ID       string `json:"id"`       // Extension identifier.
	Value    string `json:"value"`    // Extension value.
	Critical bool   `json:"critical"` // Whether a verifier must understand the extension.
}

type Certificate struct {
	ID      string     `json:"id"`      // Unique ID of the certificate.
	Version int64      `json:"version"` // Version of the certificate record.
	Type    CertType   `json:"type"`    // Type of the certificate.
	Status  CertStatus `json:"status"`  // Status of the certificate.

	SubjectDID string          `json:"subject_did"` // DID of the certificate subject.
	IssuerDID  string          `json:"issuer_did"`  // DID of the issuing authority.
	PublicKey  string          `json:"public_key"`  // PEM encoded public key of the subject.
	KeyUsages  []KeyUsage      `json:"key_usages"`  // Allowed usages of the subject key.
	TrustLevel TrustLevel      `json:"trust_level"` // Trust level asserted by the certificate.
	Extensions []CertExtension `json:"extensions,omitempty"`

	NotBefore int64 `json:"not_before"` // Unix Time (in second) when the certificate becomes valid.
	NotAfter  int64 `json:"not_after"`  // Unix Time (in second) when the certificate becomes invalid.

	IssuedAt     int64  `json:"issued_at"`     // Unix Time (in second) when the certificate was issued.
	IssuedBy     string `json:"issued_by"`     // Requester on whose behalf the certificate was issued.
	RevokedAt    int64  `json:"revoked_at"`    // Unix Time (in second) when the certificate was revoked.
	RevokedBy    string `json:"revoked_by"`    // DID that revoked the certificate.
	RevokeReason string `json:"revoke_reason"` // Reason of the revocation.

	PrivateKey  string `json:"private_key,omitempty"` // PEM encoded private key. Present only on the CA root record.
	Fingerprint string `json:"fingerprint"`           // Fingerprint of the canonical body. The format is [HASH_ALGORITHM]:[FINGERPRINT_HEX_ENCODED].
	Signature   string `json:"signature"`             // Compact JWS of the canonical body, signed by the issuer key.
}

// certificateBody is the canonical, signed portion of a certificate. Status
// and revocation bookkeeping mutate after issuance and are therefore outside
// the signed body. Field order is frozen; changing it invalidates every
// previously issued signature.
type certificateBody struct {
	ID         string          `json:"id"`
	Type       CertType        `json:"type"`
	SubjectDID string          `json:"subject_did"`
	IssuerDID  string          `json:"issuer_did"`
	PublicKey  string          `json:"public_key"`
	KeyUsages  []KeyUsage      `json:"key_usages"`
	TrustLevel TrustLevel      `json:"trust_level"`
	Extensions []CertExtension `json:"extensions,omitempty"`
	NotBefore  int64           `json:"not_before"`
	NotAfter   int64           `json:"not_after"`
	IssuedAt   int64           `json:"issued_at"`
}

// CanonicalBody returns the frozen serialization of the signed portion of the
// certificate. Fingerprint and signature are computed over these exact bytes.
func (c Certificate) CanonicalBody() ([]byte, error) {
	body := certificateBody{
		ID:         c.ID,
		Type:       c.Type,
		SubjectDID: c.SubjectDID,
		IssuerDID:  c.IssuerDID,
		PublicKey:  c.PublicKey,
		KeyUsages:  c.KeyUsages,
		TrustLevel: c.TrustLevel,
		Extensions: c.Extensions,
		NotBefore:  c.NotBefore,
		NotAfter:   c.NotAfter,
		IssuedAt:   c.IssuedAt,
	}
	return json.Marshal(body)
}

// CalculateFingerprint hashes the canonical body of the certificate.
func (c Certificate) CalculateFingerprint() (string, error) {
	body, err := c.CanonicalBody()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256(body)), nil
}

type RevocationEntry struct {
	CertificateID string `json:"certificate_id"` // ID of the revoked certificate.
	RevokedAt     int64  `json:"revoked_at"`     // Unix Time (in second) of the revocation.
	RevokedBy     string `json:"revoked_by"`     // DID that revoked the certificate.
	Reason        string `json:"reason"`         // Reason of the revocation.
}

// RevocationList is the signed list of revoked certificates of one issuer.
// Every append re-signs the whole list so relying parties can fetch and
// verify it as a standalone artifact.
type RevocationList struct {
	IssuerDID  string            `json:"issuer_did"`  // DID of the issuing authority.
	Entries    []RevocationEntry `json:"entries"`     // Revoked certificates, in revocation order.
	UpdatedAt  int64             `json:"updated_at"`  // Unix Time (in second) of the last re-signing.
	NextUpdate int64             `json:"next_update"` // Unix Time (in second) a relying party should refresh by.
	Signature  string            `json:"signature"`   // Compact JWS of the canonical body, signed by the issuer key.
}

// CanonicalBody returns the serialization of the list with the signature
// cleared. The list signature is computed over these exact bytes.
func (l RevocationList) CanonicalBody() ([]byte, error) {
	body := l
	body.Signature = ""
	return json.Marshal(body)
}

// Contains reports whether the list carries an entry for the certificate.
func (l RevocationList) Contains(certID string) bool {
	for _, entry := range l.Entries {
		if entry.CertificateID == certID {
			return true
		}
	}
	return false
}
