package envelope_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenttrust/agenttrust/pkg/envelope"
)

func TestEncryptDecrypt(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	payload := []byte(`{"secret": "value"}`)
	encrypted, err := envelope.Encrypt(
		payload,
		envelope.A256GCM,
		[]envelope.KeyEncryptionSetting{
			{PublicKey: &ecKey.PublicKey, Algorithm: envelope.ECDH_ES_A256KW},
			{PublicKey: &rsaKey.PublicKey, Algorithm: envelope.RSA_OAEP_256},
		},
	)
	require.NoError(t, err)

	// Either recipient key recovers the payload.
	decrypted, err := envelope.Decrypt(encrypted, []any{ecKey})
	require.NoError(t, err)
	assert.Equal(t, payload, decrypted)

	decrypted, err = envelope.Decrypt(encrypted, []any{rsaKey})
	require.NoError(t, err)
	assert.Equal(t, payload, decrypted)

	strangerKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	_, err = envelope.Decrypt(encrypted, []any{strangerKey})
	assert.Error(t, err)
}

func TestEncryptForKey(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	payload := []byte("archived audit batch")
	encrypted, err := envelope.EncryptForKey(payload, &ecKey.PublicKey)
	require.NoError(t, err)

	decrypted, err := envelope.Decrypt(encrypted, []any{ecKey})
	require.NoError(t, err)
	assert.Equal(t, payload, decrypted)
}
