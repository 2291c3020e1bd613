// Package pkix wraps the X.509 and key handling the trust server needs:
// parsing transport certificates, deriving fingerprints, extracting DIDs from
// certificate subjects, and creating/marshalling key pairs.
package pkix

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

type PrivateKeyType string
type ECDSACurveType string

const (
	PrivateKeyTypeRSA   PrivateKeyType = "RSA"
	PrivateKeyTypeECDSA PrivateKeyType = "ECDSA"

	ECDSACurveTypeP256 ECDSACurveType = "P-256"
	ECDSACurveTypeP384 ECDSACurveType = "P-384"
	ECDSACurveTypeP521 ECDSACurveType = "P-521"
)

var ErrInvalidParameter = errors.New("invalid parameter")

type PrivateKeyOption struct {
	KeyType   PrivateKeyType `json:"key_type" yaml:"key_type"`     // Type of the private key.
	BitLength int            `json:"bit_length" yaml:"bit_length"` // Bit length for RSA keys.
	CurveType ECDSACurveType `json:"curve_type" yaml:"curve_type"` // Curve for ECDSA keys.
}

func CreatePrivateKey(option PrivateKeyOption) (any, error) {
	switch option.KeyType {
	case PrivateKeyTypeRSA:
		if option.BitLength < 2048 {
			return nil, fmt.Errorf("RSA bit length %d too small: %w", option.BitLength, ErrInvalidParameter)
		}
		return rsa.GenerateKey(rand.Reader, option.BitLength)
	case PrivateKeyTypeECDSA:
		var curve elliptic.Curve
		switch option.CurveType {
		case ECDSACurveTypeP256:
			curve = elliptic.P256()
		case ECDSACurveTypeP384:
			curve = elliptic.P384()
		case ECDSACurveTypeP521:
			curve = elliptic.P521()
		default:
			return nil, fmt.Errorf("unknown curve %q: %w", option.CurveType, ErrInvalidParameter)
		}
		return ecdsa.GenerateKey(curve, rand.Reader)
	}
	return nil, fmt.Errorf("unknown key type %q: %w", option.KeyType, ErrInvalidParameter)
}

func MarshalPrivateKey(key any) (string, error) {
	raw, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", err
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: raw})
	return string(pemBytes), nil
}

func ParsePrivateKey(key []byte) (any, error) {
	pemBlock, _ := pem.Decode(key)
	if pemBlock == nil {
		return nil, errors.New("invalid private key")
	}

	ecPrivateKey, ecErr := x509.ParseECPrivateKey(pemBlock.Bytes)
	if ecErr == nil {
		return ecPrivateKey, nil
	}

	privKey, pkcs8Err := x509.ParsePKCS8PrivateKey(pemBlock.Bytes)
	if pkcs8Err == nil {
		return privKey, nil
	}

	// Fallback to PKCS1
	privKey, pkcs1Err := x509.ParsePKCS1PrivateKey(pemBlock.Bytes)
	if pkcs1Err == nil {
		return privKey, nil
	}

	return nil, pkcs8Err
}

func MarshalPublicKey(key any) (string, error) {
	raw, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", err
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: raw})
	return string(pemBytes), nil
}

func ParsePublicKey(key []byte) (any, error) {
	pemBlock, _ := pem.Decode(key)
	if pemBlock == nil {
		return nil, errors.New("invalid public key")
	}
	return x509.ParsePKIXPublicKey(pemBlock.Bytes)
}

// PublicKeyOf returns the public half of a private key.
func PublicKeyOf(privateKey any) (crypto.PublicKey, error) {
	signer, ok := privateKey.(crypto.Signer)
	if !ok {
		return nil, errors.New("private key does not expose a public key")
	}
	return signer.Public(), nil
}

// IsPublicKeyOf reports whether publicKey is the public half of privateKey.
func IsPublicKeyOf(privateKey any, publicKey any) bool {
	switch priv := privateKey.(type) {
	case *rsa.PrivateKey:
		pub, ok := publicKey.(*rsa.PublicKey)
		return ok && priv.PublicKey.Equal(pub)
	case *ecdsa.PrivateKey:
		pub, ok := publicKey.(*ecdsa.PublicKey)
		return ok && priv.PublicKey.Equal(pub)
	case ed25519.PrivateKey:
		pub, ok := publicKey.(ed25519.PublicKey)
		return ok && priv.Public().(ed25519.PublicKey).Equal(pub)
	}
	return false
}

func ParseCertificate(certRaw []byte) ([]*x509.Certificate, error) {
	certs := make([]*x509.Certificate, 0, 4)
	for {
		pemBlock, remains := pem.Decode(certRaw)
		if pemBlock == nil {
			return nil, errors.New("invalid certificate")
		}

		cert, err := x509.ParseCertificate(pemBlock.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)

		if len(remains) == 0 {
			break
		}
		certRaw = remains
	}

	return certs, nil
}

func MarshalCertificates(certs ...*x509.Certificate) ([]byte, error) {
	buf := &strings.Builder{}
	for _, cert := range certs {
		if err := pem.Encode(buf, &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}); err != nil {
			return nil, err
		}
	}
	return []byte(buf.String()), nil
}

// CertificateFingerprint returns the fingerprint of the DER encoded
// certificate. The format is [HASH_ALGORITHM]:[FINGERPRINT_HEX_ENCODED].
func CertificateFingerprint(cert *x509.Certificate) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(cert.Raw))
}

// PublicKeyFingerprint returns the fingerprint of the PKIX encoding of the
// certificate public key.
func PublicKeyFingerprint(cert *x509.Certificate) (string, error) {
	raw, err := x509.MarshalPKIXPublicKey(cert.PublicKey)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256(raw)), nil
}

// ExtractDID extracts a DID from the certificate subject. The DID may appear
// as the subject common name or as a URI subject-alternative-name with the
// DID scheme. Returns an empty string when the certificate carries no DID.
func ExtractDID(cert *x509.Certificate) string {
	if strings.HasPrefix(cert.Subject.CommonName, "did:") {
		return cert.Subject.CommonName
	}
	for _, uri := range cert.URIs {
		if uri.Scheme == "did" {
			return uri.String()
		}
	}
	return ""
}

// VerifyValidityWindow reports whether ts falls inside the certificate
// validity window.
func VerifyValidityWindow(cert *x509.Certificate, ts int64) bool {
	return ts >= cert.NotBefore.Unix() && ts <= cert.NotAfter.Unix()
}
