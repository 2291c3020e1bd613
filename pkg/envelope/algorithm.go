package envelope

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
)

// AlgorithmForKey returns the JWS signature algorithm matching the key type.
// Defaults to ES256 for unknown key types.
func AlgorithmForKey(publicKey any) SignatureAlgorithm {
	switch key := publicKey.(type) {
	case *ecdsa.PublicKey:
		switch key.Curve {
		case elliptic.P384():
			return ES384
		case elliptic.P521():
			return ES512
		default:
			return ES256
		}
	case *rsa.PublicKey:
		return RS256
	case ed25519.PublicKey:
		return EdDSA
	}
	return ES256
}
