/*
Package jwa implements the JSON Web Algorithms signature registry.

Each algorithm is a named value with Sign and Verify operations. Algorithms
are selected directly (jwa.RS256) or by name through a Registry.

Supported Algorithms:
- HMAC
  - HS256 (SHA-256)
  - HS384 (SHA-384)
  - HS512 (SHA-512)

- RSA PKCS1v15
  - RS256 (SHA-256, signing key >= 512 bits)
  - RS384 (SHA-384, signing key >= 640 bits)
  - RS512 (SHA-512, signing key >= 768 bits)

- RSA-PSS
  - PS256 (SHA-256, signing key >= 528 bits)
  - PS384 (SHA-384, signing key >= 784 bits)
  - PS512 (SHA-512, signing key >= 1040 bits)

Basic usage:

	alg, err := jwa.Lookup("RS256")
	if err != nil {
	    return err
	}

	sig, err := alg.Sign(privateKey, payload)
	if err != nil {
	    return err // errors.Is(err, jwa.ErrInvalidKey)
	}

	ok := alg.Verify(&privateKey.PublicKey, payload, sig)

Keys:
- HMAC: []byte
- RSA signing: *rsa.PrivateKey, or a crypto.Signer holding an RSA key
- RSA verification: *rsa.PublicKey, *rsa.PrivateKey or such a crypto.Signer

Verify never returns an error. A wrong key, a malformed signature and a
mismatch all produce false.

The default registry returned by Default is populated with the built-ins
on first use. Custom algorithms go into a registry created with
NewRegistry:

	r := jwa.NewRegistry(jwa.WithLogger(logger))
	if err := jwa.RegisterBuiltins(r); err != nil {
	    return err
	}
*/
package jwa
