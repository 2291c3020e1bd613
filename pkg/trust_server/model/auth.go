package model

type AuthMethod string

const (
	AuthMethodNone   AuthMethod = "none"
	AuthMethodMTLS   AuthMethod = "mtls"
	AuthMethodDIDJWT AuthMethod = "did-jwt"
)

// AuthContext is the per request authentication outcome. It is built for a
// single request and never persisted.
type AuthContext struct {
	Authenticated bool       `json:"authenticated"`
	AuthMethod    AuthMethod `json:"auth_method"`

	DID          string        `json:"did,omitempty"`
	TrustLevel   TrustLevel    `json:"trust_level,omitempty"`
	Capabilities []string      `json:"capabilities,omitempty"`
	Certificate  *Certificate  `json:"certificate,omitempty"`   // Present when AuthMethod is mtls.
	TokenPayload *TokenPayload `json:"token_payload,omitempty"` // Present when AuthMethod is did-jwt.
}

// HasCapability reports whether the context carries the capability.
func (c AuthContext) HasCapability(capability string) bool {
	for _, cap := range c.Capabilities {
		if cap == capability {
			return true
		}
	}
	return false
}

// AuthChallenge is a single-use nonce bound to a DID.
type AuthChallenge struct {
	DID       string `json:"did"`        // DID the challenge is bound to.
	Nonce     string `json:"nonce"`      // Single-use random value.
	CreatedAt int64  `json:"created_at"` // Unix Time (in second) when the challenge was created.
	ExpiresAt int64  `json:"expires_at"` // Unix Time (in second) when the challenge expires.
}

// TokenPayload is the verified claim set of a DID-JWT bearer token.
type TokenPayload struct {
	DID          string     `json:"did"`          // Subject DID of the token.
	Nonce        string     `json:"nonce"`        // Unique token ID, usable for replay detection.
	TrustLevel   TrustLevel `json:"trust_level"`  // Trust level granted to the bearer.
	Capabilities []string   `json:"capabilities"` // Capabilities granted to the bearer.
	ExpiresAt    int64      `json:"expires_at"`   // Unix Time (in second) when the token expires.
}
