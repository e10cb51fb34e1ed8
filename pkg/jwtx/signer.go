package jwtx

import "errors"

// MinSecretLength is the minimum number of bytes accepted for an HS256
// signing secret. Anything shorter is trivially brute-forceable.
const MinSecretLength = 32

// ErrSecretTooShort is returned when constructing a signer or verifier with
// an undersized secret.
var ErrSecretTooShort = errors.New("jwtx: signing secret must be at least 32 bytes")

// Signer turns claims into signed compact JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// NewSignerHS256 creates an HMAC-SHA256 signer from a shared secret.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256Signer(secret)
}
