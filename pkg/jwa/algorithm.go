package jwa

import (
	"crypto"
	"encoding/json"
	"fmt"
)

// Algorithm is a named signature or MAC algorithm.
type Algorithm interface {
	// Name returns the registered token (e.g., "HS256", "RS256")
	Name() string

	// Hash returns the digest used by the algorithm
	Hash() crypto.Hash

	// Kind returns the algorithm family
	Kind() Kind

	// Equal reports whether other carries the same name
	Equal(other Algorithm) bool

	// Sign produces a signature over message.
	// Fails with ErrInvalidKey before any cryptographic work if the key
	// cannot sign.
	Sign(key any, message []byte) ([]byte, error)

	// Verify reports whether signature is valid for message under key.
	// Any mismatch, malformed signature or unusable key yields false.
	Verify(key any, message, signature []byte) bool
}

// Kind is the closed set of algorithm families.
type Kind int

const (
	KindNone Kind = iota
	KindMAC
	KindRSAPKCS1v15
	KindRSAPSS
)

func (k Kind) String() string {
	switch k {
	case KindMAC:
		return "MAC"
	case KindRSAPKCS1v15:
		return "RSA-PKCS1v1.5"
	case KindRSAPSS:
		return "RSA-PSS"
	default:
		return "none"
	}
}

// Base provides identity, equality and representation for all algorithms.
//
// A Base used on its own is an identity-only algorithm: Sign returns
// ErrNotImplemented and Verify panics with it. It is not cryptographically
// functional and exists so the shared contract can be exercised without
// any concrete algorithm.
type Base struct {
	name string
	hash crypto.Hash
	kind Kind
}

// NewBase creates an identity-only algorithm
func NewBase(name string) *Base {
	return &Base{name: name}
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Hash() crypto.Hash {
	return b.hash
}

func (b *Base) Kind() Kind {
	return b.kind
}

// String returns the algorithm name
func (b *Base) String() string {
	return b.name
}

func (b *Base) Equal(other Algorithm) bool {
	return other != nil && other.Name() == b.name
}

// MarshalText encodes the algorithm as its name
func (b *Base) MarshalText() ([]byte, error) {
	return []byte(b.name), nil
}

// MarshalJSON encodes the algorithm as a JSON string holding its name
func (b *Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.name)
}

func (b *Base) Sign(key any, message []byte) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s sign", ErrNotImplemented, b.name)
}

func (b *Base) Verify(key any, message, signature []byte) bool {
	panic(fmt.Errorf("%w: %s verify", ErrNotImplemented, b.name))
}

// Equal reports whether a and b are the same algorithm. Two nil values are equal.
func Equal(a, b Algorithm) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
