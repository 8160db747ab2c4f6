// Package jwtsigning exposes jwa algorithms as golang-jwt signing methods.
//
// The JWT envelope (header, claims, base64url framing) is handled by
// github.com/golang-jwt/jwt/v5; the signature itself is produced and
// checked by the jwa registry.
//
//	jwtsigning.Register(jwa.Default())
//
//	tok := jwt.NewWithClaims(jwtsigning.New(jwa.RS256), claims)
//	signed, err := tok.SignedString(privateKey)
//
//	parsed, err := jwt.Parse(signed, keyFunc, jwtsigning.ParserOptions(jwa.Default())...)
package jwtsigning

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alexadamm/jwa-go/pkg/jwa"
)

// SigningMethod adapts a jwa.Algorithm to jwt.SigningMethod
type SigningMethod struct {
	alg jwa.Algorithm
}

var _ jwt.SigningMethod = (*SigningMethod)(nil)

// New wraps alg as a golang-jwt signing method
func New(alg jwa.Algorithm) *SigningMethod {
	return &SigningMethod{alg: alg}
}

// Alg returns the JWA name written to the "alg" header
func (m *SigningMethod) Alg() string {
	return m.alg.Name()
}

// Algorithm returns the wrapped algorithm
func (m *SigningMethod) Algorithm() jwa.Algorithm {
	return m.alg
}

// Sign signs the JWT signing input
func (m *SigningMethod) Sign(signingString string, key interface{}) ([]byte, error) {
	sig, err := m.alg.Sign(key, []byte(signingString))
	if err != nil {
		if errors.Is(err, jwa.ErrInvalidKey) {
			return nil, fmt.Errorf("%w: %w", jwt.ErrInvalidKey, err)
		}
		return nil, err
	}
	return sig, nil
}

// Verify checks sig over the JWT signing input.
// Every failure is reported as jwt.ErrSignatureInvalid.
func (m *SigningMethod) Verify(signingString string, sig []byte, key interface{}) error {
	if !m.alg.Verify(key, []byte(signingString), sig) {
		return jwt.ErrSignatureInvalid
	}
	return nil
}

// Register installs every algorithm in r into golang-jwt's global method
// table, replacing golang-jwt's own methods of the same name.
// Call it during startup, before tokens are parsed concurrently.
func Register(r *jwa.Registry) error {
	for _, name := range r.Names() {
		alg, err := r.Lookup(name)
		if err != nil {
			return err
		}
		if alg.Kind() == jwa.KindNone {
			continue
		}
		method := New(alg)
		jwt.RegisterSigningMethod(name, func() jwt.SigningMethod {
			return method
		})
	}
	return nil
}

// ParserOptions restricts a parser to the signing algorithms in r
func ParserOptions(r *jwa.Registry) []jwt.ParserOption {
	var names []string
	for _, name := range r.Names() {
		if alg, err := r.Lookup(name); err == nil && alg.Kind() != jwa.KindNone {
			names = append(names, name)
		}
	}
	return []jwt.ParserOption{jwt.WithValidMethods(names)}
}
