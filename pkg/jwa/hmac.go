package jwa

import (
	"crypto"
	"crypto/hmac"
	"fmt"
)

// HMACAlgorithm implements the Algorithm interface for HMAC signatures.
// Keys are []byte shared secrets of any length.
type HMACAlgorithm struct {
	Base
}

// NewHMACAlgorithm creates a new HMAC algorithm instance
func NewHMACAlgorithm(name string, hash crypto.Hash) *HMACAlgorithm {
	return &HMACAlgorithm{
		Base: Base{
			name: name,
			hash: hash,
			kind: KindMAC,
		},
	}
}

// Sign computes the MAC of message. The result is deterministic.
func (h *HMACAlgorithm) Sign(key any, message []byte) ([]byte, error) {
	secret, ok := key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a []byte secret, got %T", ErrInvalidKey, h.name, key)
	}
	return h.mac(secret, message), nil
}

// Verify recomputes the MAC and compares it in constant time
func (h *HMACAlgorithm) Verify(key any, message, signature []byte) bool {
	secret, ok := key.([]byte)
	if !ok {
		return false
	}

	expected := h.mac(secret, message)
	defer clear(expected)

	return hmac.Equal(expected, signature)
}

func (h *HMACAlgorithm) mac(secret, message []byte) []byte {
	m := hmac.New(h.hash.New, secret)
	m.Write(message)
	return m.Sum(nil)
}
