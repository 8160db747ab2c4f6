package jwa

import (
	"crypto"
	"crypto/rsa"
	"fmt"
)

// checkSigningKey confirms key can produce an RSA signature and that its
// modulus is at least minBits long. It accepts *rsa.PrivateKey and any
// crypto.Signer backed by an RSA public key.
func checkSigningKey(key any, minBits int) (crypto.Signer, error) {
	var (
		signer crypto.Signer
		pub    *rsa.PublicKey
	)

	switch k := key.(type) {
	case *rsa.PrivateKey:
		if k == nil || k.N == nil {
			return nil, fmt.Errorf("%w: nil RSA key", ErrInvalidKey)
		}
		if k.D == nil || k.D.Sign() == 0 {
			return nil, fmt.Errorf("%w: public key only, private part required", ErrInvalidKey)
		}
		signer, pub = k, &k.PublicKey
	case *rsa.PublicKey, rsa.PublicKey:
		return nil, fmt.Errorf("%w: public key only, private part required", ErrInvalidKey)
	case crypto.Signer:
		rk, ok := k.Public().(*rsa.PublicKey)
		if !ok || rk == nil || rk.N == nil {
			return nil, fmt.Errorf("%w: signer does not hold an RSA key", ErrInvalidKey)
		}
		signer, pub = k, rk
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, key)
	}

	if bits := pub.N.BitLen(); bits < minBits {
		return nil, fmt.Errorf("%w: key too small: %d bits, minimum %d", ErrInvalidKey, bits, minBits)
	}

	return signer, nil
}

// verificationKey extracts the RSA public key from any accepted key shape.
// Verification imposes no minimum size.
func verificationKey(key any) (*rsa.PublicKey, bool) {
	var pub *rsa.PublicKey
	switch k := key.(type) {
	case *rsa.PublicKey:
		pub = k
	case rsa.PublicKey:
		pub = &k
	case *rsa.PrivateKey:
		if k != nil {
			pub = &k.PublicKey
		}
	case crypto.Signer:
		pub, _ = k.Public().(*rsa.PublicKey)
	}
	if pub == nil || pub.N == nil || pub.N.Sign() <= 0 || pub.E < 2 {
		return nil, false
	}
	return pub, true
}
