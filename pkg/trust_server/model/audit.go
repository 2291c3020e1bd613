package model

import (
	"encoding/json"
	"strings"
)

// AuditGenesisHash is the previous_hash value of the first event in a ledger.
// It has the length of a hex encoded SHA-512 digest.
var AuditGenesisHash = strings.Repeat("0", 128)

type AuditEvent struct {
	ID        string `json:"id"`        // Unique ID of the event.
	Timestamp int64  `json:"timestamp"` // Unix Time (in second) when the event was recorded.
	Source    string `json:"source"`    // Component that recorded the event.
	Action    string `json:"action"`    // What happened, e.g. "certificate-issued".
	Resource  string `json:"resource"`  // Identifier of the affected resource.
	Actor     string `json:"actor"`     // Who triggered the event.

	// Details carries event specific key/value pairs. Values of sensitive
	// keys are stored as serialized JWE objects; the chain hash always covers
	// the stored representation.
	Details map[string]string `json:"details,omitempty"`

	PreviousHash   string `json:"previous_hash"`             // Hash of the immediately preceding event, or AuditGenesisHash.
	Hash           string `json:"hash"`                      // Hex encoded SHA-512 of the canonical body.
	Signature      string `json:"signature,omitempty"`       // Optional compact JWS of the canonical body.
	ArchiveLocator string `json:"archive_locator,omitempty"` // Locator of the content-addressed archive copy.
}

// auditEventBody is the canonical, hashed portion of an audit event. The hash
// itself, the signature and the archive locator are assigned after hashing
// and stay outside the body. Field order is frozen.
type auditEventBody struct {
	ID           string            `json:"id"`
	Timestamp    int64             `json:"timestamp"`
	Source       string            `json:"source"`
	Action       string            `json:"action"`
	Resource     string            `json:"resource"`
	Actor        string            `json:"actor"`
	Details      map[string]string `json:"details,omitempty"`
	PreviousHash string            `json:"previous_hash"`
}

// CanonicalBody returns the frozen serialization the chain hash and the
// optional signature are computed over. It includes PreviousHash, so the hash
// of every event pins its predecessor.
func (e AuditEvent) CanonicalBody() ([]byte, error) {
	body := auditEventBody{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Source:       e.Source,
		Action:       e.Action,
		Resource:     e.Resource,
		Actor:        e.Actor,
		Details:      e.Details,
		PreviousHash: e.PreviousHash,
	}
	return json.Marshal(body)
}
