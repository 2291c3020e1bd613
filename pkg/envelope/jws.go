package envelope

import (
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
)

// SignCompact signs the payload with the given key and returns the compact
// JWS serialization (protected.payload.signature).
func SignCompact(payload []byte, algorithm SignatureAlgorithm, key any) (string, error) {
	signed, err := jws.Sign(payload, jws.WithKey(jwa.SignatureAlgorithm(algorithm), key))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// VerifyCompact verifies a compact JWS against the given key and returns the
// embedded payload.
func VerifyCompact(serialized string, algorithm SignatureAlgorithm, key any) ([]byte, error) {
	payload, err := jws.Verify([]byte(serialized), jws.WithKey(jwa.SignatureAlgorithm(algorithm), key))
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// SignDetached signs the payload and returns a compact JWS whose payload part
// is empty. The verifier must supply the payload bytes again.
func SignDetached(payload []byte, algorithm SignatureAlgorithm, key any) (string, error) {
	signed, err := jws.Sign(
		nil,
		jws.WithKey(jwa.SignatureAlgorithm(algorithm), key),
		jws.WithDetachedPayload(payload),
	)
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// VerifyDetached verifies a detached compact JWS against the payload bytes.
func VerifyDetached(serialized string, payload []byte, algorithm SignatureAlgorithm, key any) error {
	_, err := jws.Verify(
		[]byte(serialized),
		jws.WithKey(jwa.SignatureAlgorithm(algorithm), key),
		jws.WithDetachedPayload(payload),
	)
	return err
}
