// Package envelope provides the JWS/JWE primitives every signed or encrypted
// artifact of the trust server goes through: certificate and revocation list
// signatures, audit event signatures and audit detail encryption.
package envelope

type JWK struct {
	KeyType string `json:"kty,omitempty"`

	// EC key
	Curve string `json:"crv,omitempty"` // Public key
	X     string `json:"x,omitempty"`   // Public key
	Y     string `json:"y,omitempty"`   // Public key
	D     string `json:"d,omitempty"`   // Private key of EC key or RSA key

	// RSA Key
	N string `json:"n,omitempty"` // Public key
	E string `json:"e,omitempty"` // Public key

	// Symmetric Key
	K string `json:"k,omitempty"` // Symmetric key, base64 url encoded

	Alg string `json:"alg,omitempty"`
}

type JOSEHeader struct {
	Alg  string `json:"alg,omitempty"`
	Enc  string `json:"enc,omitempty"`
	Epk  *JWK   `json:"epk,omitempty"`
	Type string `json:"typ,omitempty"`
}

type JWERecipient struct {
	Header       *JOSEHeader `json:"header,omitempty"`
	EncryptedKey string      `json:"encrypted_key,omitempty"` // Base64 URL encoded
}

type JWE struct {
	Protected   string      `json:"protected,omitempty"` // Base64 URL encoded
	Unprotected *JOSEHeader `json:"unprotected,omitempty"`

	// Header, EncryptedKey are mutual exclusive to Recipients.
	// When Recipients is present, Header and EncryptedKey must be empty.
	Header       *JOSEHeader    `json:"header,omitempty"`
	EncryptedKey string         `json:"encrypted_key,omitempty"` // Base64 URL encoded
	Recipients   []JWERecipient `json:"recipients,omitempty"`

	IV         string `json:"iv,omitempty"`         // Base64 URL encoded
	AAD        string `json:"aad,omitempty"`        // Base64 URL encoded
	Ciphertext string `json:"ciphertext,omitempty"` // Base64 URL encoded
	Tag        string `json:"tag,omitempty"`        // Base64 URL encoded
}
