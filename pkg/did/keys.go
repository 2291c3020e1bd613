package did

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
)

func parsePublicKeyPEM(raw []byte) (crypto.PublicKey, error) {
	pemBlock, _ := pem.Decode(raw)
	if pemBlock == nil {
		return nil, errors.New("invalid public key PEM")
	}
	return x509.ParsePKIXPublicKey(pemBlock.Bytes)
}
