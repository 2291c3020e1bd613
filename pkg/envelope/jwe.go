package envelope

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/json"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwe"
	"github.com/samber/lo"
)

type KeyEncryptionSetting struct {
	PublicKey any
	Algorithm KeyEncryptionAlgorithm
}

func Encrypt(payload []byte, enc ContentEncryptionAlgorithm, keySettings []KeyEncryptionSetting) (JWE, error) {
	options := make([]jwe.EncryptOption, 0, len(keySettings)+2)
	for _, ks := range keySettings {
		options = append(options, jwe.WithKey(jwa.KeyEncryptionAlgorithm(ks.Algorithm), ks.PublicKey))
	}
	options = append(options, jwe.WithContentEncryption(jwa.ContentEncryptionAlgorithm(enc)), jwe.WithJSON())

	output, err := jwe.Encrypt(payload, options...)
	if err != nil {
		return JWE{}, err
	}

	result := JWE{}
	if err := json.Unmarshal(output, &result); err != nil {
		return JWE{}, err
	}
	return result, nil
}

func Decrypt(in JWE, keys []any) ([]byte, error) {
	algorithms := lo.Uniq(
		lo.Map(in.Recipients, func(r JWERecipient, _ int) jwa.KeyEncryptionAlgorithm {
			return jwa.KeyEncryptionAlgorithm(r.Header.Alg)
		}),
	)
	if len(algorithms) == 0 && in.Header != nil {
		algorithms = append(algorithms, jwa.KeyEncryptionAlgorithm(in.Header.Alg))
	}

	options := make([]jwe.DecryptOption, 0, len(keys)*len(algorithms))
	for _, key := range keys {
		for _, alg := range algorithms {
			switch alg {
			case jwa.ECDH_ES_A128KW, jwa.ECDH_ES_A192KW, jwa.ECDH_ES_A256KW:
				if _, ok := key.(*ecdsa.PrivateKey); ok {
					options = append(options, jwe.WithKey(alg, key))
				}
			case jwa.RSA1_5, jwa.RSA_OAEP, jwa.RSA_OAEP_256:
				if _, ok := key.(*rsa.PrivateKey); ok {
					options = append(options, jwe.WithKey(alg, key))
				}
			}
		}
	}

	raw, _ := json.Marshal(in)
	return jwe.Decrypt(raw, options...)
}

// EncryptForKey encrypts the payload for a single recipient public key with
// the key encryption algorithm matching the key type.
func EncryptForKey(payload []byte, publicKey any) (JWE, error) {
	setting := KeyEncryptionSetting{PublicKey: publicKey}
	switch publicKey.(type) {
	case *rsa.PublicKey:
		setting.Algorithm = RSA_OAEP_256
	default:
		setting.Algorithm = ECDH_ES_A256KW
	}
	return Encrypt(payload, A256GCM, []KeyEncryptionSetting{setting})
}
