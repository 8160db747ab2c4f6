package jwa

import (
	"crypto"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Minimum signing modulus per algorithm. PKCS1v15 needs room for the
// DigestInfo prefix, the digest and 11 bytes of padding; PSS with a
// hash-length salt needs twice the digest plus 2 bytes.
const (
	minBitsRS256 = 512
	minBitsRS384 = 640
	minBitsRS512 = 768
	minBitsPS256 = 528
	minBitsPS384 = 784
	minBitsPS512 = 1040
)

// Built-in algorithms
var (
	HS256 = NewHMACAlgorithm("HS256", crypto.SHA256)
	HS384 = NewHMACAlgorithm("HS384", crypto.SHA384)
	HS512 = NewHMACAlgorithm("HS512", crypto.SHA512)

	RS256 = NewRSAAlgorithm("RS256", crypto.SHA256, PaddingPKCS1v15, minBitsRS256)
	RS384 = NewRSAAlgorithm("RS384", crypto.SHA384, PaddingPKCS1v15, minBitsRS384)
	RS512 = NewRSAAlgorithm("RS512", crypto.SHA512, PaddingPKCS1v15, minBitsRS512)

	PS256 = NewRSAAlgorithm("PS256", crypto.SHA256, PaddingPSS, minBitsPS256)
	PS384 = NewRSAAlgorithm("PS384", crypto.SHA384, PaddingPSS, minBitsPS384)
	PS512 = NewRSAAlgorithm("PS512", crypto.SHA512, PaddingPSS, minBitsPS512)
)

// Builtins returns the built-in algorithms in registration order
func Builtins() []Algorithm {
	return []Algorithm{
		HS256, HS384, HS512,
		RS256, RS384, RS512,
		PS256, PS384, PS512,
	}
}

// RegisterBuiltins adds every built-in algorithm to r
func RegisterBuiltins(r *Registry) error {
	for _, alg := range Builtins() {
		if err := r.Register(alg); err != nil {
			return err
		}
	}
	return nil
}
