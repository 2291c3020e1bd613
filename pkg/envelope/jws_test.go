package envelope_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenttrust/agenttrust/pkg/envelope"
)

func TestSignVerifyCompact(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	payload := []byte(`{"hello": "world"}`)
	serialized, err := envelope.SignCompact(payload, envelope.ES256, key)
	require.NoError(t, err)

	recovered, err := envelope.VerifyCompact(serialized, envelope.ES256, &key.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, payload, recovered)

	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	_, err = envelope.VerifyCompact(serialized, envelope.ES256, &otherKey.PublicKey)
	assert.Error(t, err)
}

func TestSignVerifyDetached(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	payload := []byte("canonical body bytes")
	serialized, err := envelope.SignDetached(payload, envelope.ES256, key)
	require.NoError(t, err)

	require.NoError(t, envelope.VerifyDetached(serialized, payload, envelope.ES256, &key.PublicKey))
	assert.Error(t, envelope.VerifyDetached(serialized, []byte("tampered"), envelope.ES256, &key.PublicKey))

	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	assert.Error(t, envelope.VerifyDetached(serialized, payload, envelope.ES256, &otherKey.PublicKey))
}

func TestAlgorithmForKey(t *testing.T) {
	p256, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	p384, _ := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	p521, _ := ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	rsaKey, _ := rsa.GenerateKey(rand.Reader, 2048)
	edPub, _, _ := ed25519.GenerateKey(rand.Reader)

	assert.Equal(t, envelope.ES256, envelope.AlgorithmForKey(&p256.PublicKey))
	assert.Equal(t, envelope.ES384, envelope.AlgorithmForKey(&p384.PublicKey))
	assert.Equal(t, envelope.ES512, envelope.AlgorithmForKey(&p521.PublicKey))
	assert.Equal(t, envelope.RS256, envelope.AlgorithmForKey(&rsaKey.PublicKey))
	assert.Equal(t, envelope.EdDSA, envelope.AlgorithmForKey(edPub))
	assert.Equal(t, envelope.ES256, envelope.AlgorithmForKey(nil))
}

func TestSHA512(t *testing.T) {
	digest := envelope.SHA512([]byte("abc"))
	assert.Len(t, digest, 128)
	assert.Equal(t,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		digest,
	)
	assert.NotEqual(t, digest, envelope.SHA512([]byte("abd")))
}
