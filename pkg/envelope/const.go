package envelope

import "github.com/lestrrat-go/jwx/v2/jwa"

type SignatureAlgorithm jwa.SignatureAlgorithm                 // SignatureAlgorithm represents the algorithm used for signature
type ContentEncryptionAlgorithm jwa.ContentEncryptionAlgorithm // ContentEncryptionAlgorithm represents the algorithm used for content encryption
type KeyEncryptionAlgorithm jwa.KeyEncryptionAlgorithm         // KeyEncryptionAlgorithm represents the algorithm used for key encryption

// ToJWA converts to the underlying jwa algorithm value.
func (a SignatureAlgorithm) ToJWA() jwa.SignatureAlgorithm {
	return jwa.SignatureAlgorithm(a)
}

var (
	ES256 = SignatureAlgorithm(jwa.ES256)
	ES384 = SignatureAlgorithm(jwa.ES384)
	ES512 = SignatureAlgorithm(jwa.ES512)
	RS256 = SignatureAlgorithm(jwa.RS256)
	EdDSA = SignatureAlgorithm(jwa.EdDSA)

	A256GCM = ContentEncryptionAlgorithm(jwa.A256GCM)

	ECDH_ES_A256KW = KeyEncryptionAlgorithm(jwa.ECDH_ES_A256KW)
	RSA_OAEP_256   = KeyEncryptionAlgorithm(jwa.RSA_OAEP_256)
)
