package did

import (
	"crypto"
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

const (
	// Service types announcing a transport certificate binding.
	ServiceTypeTLSCertificate  = "TLSCertificate"
	ServiceTypeX509Certificate = "X509Certificate"
)

// Document is the resolved DID document. It is consumed read-only; the
// resolver owns its schema.
type Document struct {
	Context            []string             `json:"@context,omitempty"`
	ID                 string               `json:"id"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string             `json:"authentication,omitempty"`
	Service            []Service            `json:"service,omitempty"`
}

// VerificationMethod is a public key entry of a DID document.
type VerificationMethod struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Controller   string          `json:"controller"`
	PublicKeyJwk json.RawMessage `json:"publicKeyJwk,omitempty"`
	PublicKeyPem string          `json:"publicKeyPem,omitempty"`
}

// Service is a service entry of a DID document.
type Service struct {
	ID                     string `json:"id"`
	Type                   string `json:"type"`
	ServiceEndpoint        string `json:"serviceEndpoint,omitempty"`
	CertificateFingerprint string `json:"certificateFingerprint,omitempty"`
}

// PublicKey returns the raw public key of the verification method.
func (m VerificationMethod) PublicKey() (crypto.PublicKey, error) {
	if len(m.PublicKeyJwk) > 0 {
		key, err := jwk.ParseKey(m.PublicKeyJwk)
		if err != nil {
			return nil, fmt.Errorf("parse publicKeyJwk of %s: %w", m.ID, err)
		}
		var rawKey any
		if err := key.Raw(&rawKey); err != nil {
			return nil, fmt.Errorf("materialize publicKeyJwk of %s: %w", m.ID, err)
		}
		return rawKey, nil
	}
	if m.PublicKeyPem != "" {
		return parsePublicKeyPEM([]byte(m.PublicKeyPem))
	}
	return nil, fmt.Errorf("verification method %s carries no public key", m.ID)
}

// AuthenticationKeys returns the public keys usable for authentication.
// When the document declares no authentication section, every verification
// method is eligible.
func (d Document) AuthenticationKeys() ([]crypto.PublicKey, error) {
	eligible := d.VerificationMethod
	if len(d.Authentication) > 0 {
		byID := make(map[string]VerificationMethod, len(d.VerificationMethod))
		for _, m := range d.VerificationMethod {
			byID[m.ID] = m
		}
		eligible = eligible[:0:0]
		for _, ref := range d.Authentication {
			if m, ok := byID[ref]; ok {
				eligible = append(eligible, m)
			}
		}
	}

	keys := make([]crypto.PublicKey, 0, len(eligible))
	for _, m := range eligible {
		key, err := m.PublicKey()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// TLSBindingFingerprints returns the certificate fingerprints recorded on the
// TLS binding service entries of the document.
func (d Document) TLSBindingFingerprints() []string {
	fingerprints := make([]string, 0, len(d.Service))
	for _, svc := range d.Service {
		if svc.Type != ServiceTypeTLSCertificate && svc.Type != ServiceTypeX509Certificate {
			continue
		}
		if svc.CertificateFingerprint != "" {
			fingerprints = append(fingerprints, svc.CertificateFingerprint)
		}
	}
	return fingerprints
}
