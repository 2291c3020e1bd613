package envelope

import (
	"crypto/sha512"
	"encoding/hex"
)

// SHA512 returns the hex encoded SHA-512 digest of in.
func SHA512(in []byte) string {
	sum := sha512.Sum512(in)
	return hex.EncodeToString(sum[:])
}
