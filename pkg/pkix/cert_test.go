package pkix_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localpkix "github.com/agenttrust/agenttrust/pkg/pkix"
)

func TestCreatePrivateKey(t *testing.T) {
	key, err := localpkix.CreatePrivateKey(localpkix.PrivateKeyOption{
		KeyType:   localpkix.PrivateKeyTypeECDSA,
		CurveType: localpkix.ECDSACurveTypeP256,
	})
	require.NoError(t, err)
	ecKey, ok := key.(*ecdsa.PrivateKey)
	require.True(t, ok)
	assert.Equal(t, elliptic.P256(), ecKey.Curve)

	key, err = localpkix.CreatePrivateKey(localpkix.PrivateKeyOption{
		KeyType:   localpkix.PrivateKeyTypeRSA,
		BitLength: 2048,
	})
	require.NoError(t, err)
	rsaKey, ok := key.(*rsa.PrivateKey)
	require.True(t, ok)
	assert.Equal(t, 2048, rsaKey.N.BitLen())

	_, err = localpkix.CreatePrivateKey(localpkix.PrivateKeyOption{
		KeyType:   localpkix.PrivateKeyTypeRSA,
		BitLength: 1024,
	})
	assert.ErrorIs(t, err, localpkix.ErrInvalidParameter)

	_, err = localpkix.CreatePrivateKey(localpkix.PrivateKeyOption{
		KeyType:   localpkix.PrivateKeyTypeECDSA,
		CurveType: "P-123",
	})
	assert.ErrorIs(t, err, localpkix.ErrInvalidParameter)

	_, err = localpkix.CreatePrivateKey(localpkix.PrivateKeyOption{KeyType: "DSA"})
	assert.ErrorIs(t, err, localpkix.ErrInvalidParameter)
}

func TestMarshalParsePrivateKey(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	pemStr, err := localpkix.MarshalPrivateKey(key)
	require.NoError(t, err)
	assert.Contains(t, pemStr, "PRIVATE KEY")

	parsed, err := localpkix.ParsePrivateKey([]byte(pemStr))
	require.NoError(t, err)
	parsedKey, ok := parsed.(*ecdsa.PrivateKey)
	require.True(t, ok)
	assert.True(t, key.Equal(parsedKey))

	_, err = localpkix.ParsePrivateKey([]byte("garbage"))
	assert.Error(t, err)
}

func TestMarshalParsePublicKey(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	pemStr, err := localpkix.MarshalPublicKey(&key.PublicKey)
	require.NoError(t, err)
	assert.Contains(t, pemStr, "PUBLIC KEY")

	parsed, err := localpkix.ParsePublicKey([]byte(pemStr))
	require.NoError(t, err)
	parsedKey, ok := parsed.(*ecdsa.PublicKey)
	require.True(t, ok)
	assert.True(t, key.PublicKey.Equal(parsedKey))

	_, err = localpkix.ParsePublicKey([]byte("garbage"))
	assert.Error(t, err)
}

func TestIsPublicKeyOf(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	assert.True(t, localpkix.IsPublicKeyOf(ecKey, &ecKey.PublicKey))
	assert.False(t, localpkix.IsPublicKeyOf(ecKey, &otherKey.PublicKey))
	assert.False(t, localpkix.IsPublicKeyOf(ecKey, "not a key"))
	assert.False(t, localpkix.IsPublicKeyOf("not a key", &ecKey.PublicKey))
}

func selfSignedCert(t *testing.T, template *x509.Certificate) *x509.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	raw, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(raw)
	require.NoError(t, err)
	return cert
}

func TestParseMarshalCertificates(t *testing.T) {
	cert := selfSignedCert(t, &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	})

	pemBytes, err := localpkix.MarshalCertificates(cert, cert)
	require.NoError(t, err)

	certs, err := localpkix.ParseCertificate(pemBytes)
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, cert.Raw, certs[0].Raw)
	assert.Equal(t, cert.Raw, certs[1].Raw)

	_, err = localpkix.ParseCertificate([]byte("garbage"))
	assert.Error(t, err)
}

func TestFingerprints(t *testing.T) {
	cert := selfSignedCert(t, &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	})

	fingerprintPattern := regexp.MustCompile(`^sha256:[0-9a-f]{64}$`)

	fp := localpkix.CertificateFingerprint(cert)
	assert.Regexp(t, fingerprintPattern, fp)
	assert.Equal(t, fp, localpkix.CertificateFingerprint(cert))

	keyFp, err := localpkix.PublicKeyFingerprint(cert)
	require.NoError(t, err)
	assert.Regexp(t, fingerprintPattern, keyFp)
	assert.NotEqual(t, fp, keyFp)
}

func TestExtractDID(t *testing.T) {
	cnCert := selfSignedCert(t, &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "did:agent:alice"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	})
	assert.Equal(t, "did:agent:alice", localpkix.ExtractDID(cnCert))

	didURI, err := url.Parse("did:agent:bob")
	require.NoError(t, err)
	uriCert := selfSignedCert(t, &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "agent gateway"},
		URIs:         []*url.URL{didURI},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	})
	assert.Equal(t, "did:agent:bob", localpkix.ExtractDID(uriCert))

	plainCert := selfSignedCert(t, &x509.Certificate{
		SerialNumber: big.NewInt(3),
		Subject:      pkix.Name{CommonName: "example.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	})
	assert.Empty(t, localpkix.ExtractDID(plainCert))
}

func TestVerifyValidityWindow(t *testing.T) {
	now := time.Now()
	cert := selfSignedCert(t, &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test"},
		NotBefore:    now.Add(-time.Hour),
		NotAfter:     now.Add(time.Hour),
	})

	assert.True(t, localpkix.VerifyValidityWindow(cert, now.Unix()))
	assert.False(t, localpkix.VerifyValidityWindow(cert, now.Add(-2*time.Hour).Unix()))
	assert.False(t, localpkix.VerifyValidityWindow(cert, now.Add(2*time.Hour).Unix()))
}
