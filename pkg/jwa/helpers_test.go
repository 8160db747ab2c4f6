package jwa

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadRSAKey(t *testing.T, name string) *rsa.PrivateKey {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	block, _ := pem.Decode(data)
	require.NotNil(t, block, "no PEM block in %s", name)

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	require.NoError(t, err)
	return key
}

// rsa256Key is a 256-bit keypair, too small for any RSA algorithm.
func rsa256Key(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	hex := func(s string) *big.Int {
		n, ok := new(big.Int).SetString(s, 16)
		require.True(t, ok)
		return n
	}

	return &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: hex("cb8914b09e95f2e4fe25995c06cd8f48e2202dfed4b24bf4d8ae2f4742b4c209"),
			E: 65537,
		},
		D: hex("632c470d8c282a3313f6c41408288f00a8560f264929a2f80da38848e24bb335"),
		Primes: []*big.Int{
			hex("d4c28c2e7c26847f0316909e3bbbe9eb"),
			hex("f4e69a5d0dd27a65bd628881ad1b72db"),
		},
	}
}

var (
	rsa2048Once sync.Once
	rsa2048     *rsa.PrivateKey
	rsa2048Err  error
)

// rsa2048Key returns a generated key large enough for every built-in.
func rsa2048Key(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	rsa2048Once.Do(func() {
		rsa2048, rsa2048Err = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, rsa2048Err)
	return rsa2048
}

// opaqueSigner hides the concrete key type behind crypto.Signer, the way
// a hardware or remote key would.
type opaqueSigner struct {
	key *rsa.PrivateKey
}

func (s opaqueSigner) Public() crypto.PublicKey {
	return &s.key.PublicKey
}

func (s opaqueSigner) Sign(r io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return s.key.Sign(r, digest, opts)
}
