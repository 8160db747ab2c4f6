package jwa

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
)

// Padding selects the RSA signature scheme
type Padding int

const (
	PaddingPKCS1v15 Padding = iota
	PaddingPSS
)

// RSAAlgorithm implements the Algorithm interface for RSA signatures.
// Supports both PKCS1v15 (RS*) and PSS (PS*) padding. PSS uses a salt as
// long as the digest, for signing and for verification.
type RSAAlgorithm struct {
	Base
	padding Padding
	minBits int
}

// NewRSAAlgorithm creates a new RSA algorithm instance.
// Signing keys with a modulus shorter than minBits are rejected;
// verification accepts keys of any size.
func NewRSAAlgorithm(name string, hash crypto.Hash, pad Padding, minBits int) *RSAAlgorithm {
	kind := KindRSAPKCS1v15
	if pad == PaddingPSS {
		kind = KindRSAPSS
	}

	return &RSAAlgorithm{
		Base: Base{
			name: name,
			hash: hash,
			kind: kind,
		},
		padding: pad,
		minBits: minBits,
	}
}

// MinKeyBits returns the smallest modulus accepted for signing
func (r *RSAAlgorithm) MinKeyBits() int {
	return r.minBits
}

// Sign signs the digest of message.
// PKCS1v15 signatures are deterministic, PSS signatures are randomized.
func (r *RSAAlgorithm) Sign(key any, message []byte) ([]byte, error) {
	signer, err := checkSigningKey(key, r.minBits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}

	digest := r.digest(message)

	var signature []byte
	switch r.padding {
	case PaddingPKCS1v15:
		signature, err = signer.Sign(rand.Reader, digest, r.hash)
	case PaddingPSS:
		signature, err = signer.Sign(rand.Reader, digest, r.pssOptions())
	default:
		return nil, fmt.Errorf("%w: %s padding %d", ErrNotImplemented, r.name, r.padding)
	}
	if err != nil {
		return nil, fmt.Errorf("%s signing failed: %w", r.name, err)
	}

	return signature, nil
}

// Verify verifies an RSA signature. Any failure is reported as false.
func (r *RSAAlgorithm) Verify(key any, message, signature []byte) bool {
	pub, ok := verificationKey(key)
	if !ok {
		return false
	}

	digest := r.digest(message)

	var err error
	switch r.padding {
	case PaddingPKCS1v15:
		err = rsa.VerifyPKCS1v15(pub, r.hash, digest, signature)
	case PaddingPSS:
		err = rsa.VerifyPSS(pub, r.hash, digest, signature, r.pssOptions())
	default:
		return false
	}

	return err == nil
}

func (r *RSAAlgorithm) digest(message []byte) []byte {
	h := r.hash.New()
	h.Write(message)
	return h.Sum(nil)
}

func (r *RSAAlgorithm) pssOptions() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		Hash:       r.hash,
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	}
}
