package audit

import (
	"encoding/json"

	"github.com/agenttrust/agenttrust/pkg/envelope"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
)

// DecryptDetails returns a copy of the event details with every JWE sealed
// value decrypted using the given private key. Values that are not sealed are
// returned unchanged. For operator tooling; verification never needs it
// because the chain hash covers the sealed form.
func DecryptDetails(event model.AuditEvent, privateKey any) (map[string]string, error) {
	if len(event.Details) == 0 {
		return nil, nil
	}

	details := make(map[string]string, len(event.Details))
	for key, value := range event.Details {
		sealed := envelope.JWE{}
		if err := json.Unmarshal([]byte(value), &sealed); err != nil || sealed.Ciphertext == "" {
			details[key] = value
			continue
		}

		plain, err := envelope.Decrypt(sealed, []any{privateKey})
		if err != nil {
			return nil, err
		}
		details[key] = string(plain)
	}
	return details, nil
}

// VerifyEventSignature checks the optional detached JWS of an event against
// the ledger signing public key.
func VerifyEventSignature(event model.AuditEvent, algorithm envelope.SignatureAlgorithm, publicKey any) error {
	body, err := event.CanonicalBody()
	if err != nil {
		return err
	}
	return envelope.VerifyDetached(event.Signature, body, algorithm, publicKey)
}
