package yoke

import "errors"

/*
====================================
SECURITY CONFIG
====================================
*/

// SecurityConfig defines a public type used by the yoke security APIs.
//
// SecurityConfig instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type SecurityConfig struct {
	// Secret keys the HMAC algorithms (HS256, HS384, HS512) and the signed-value
	// helpers. Any missing material only disables the algorithms that need it.
	Secret []byte

	// RSAPrivateKeyPEM is a PEM-encoded PKCS#1 or PKCS#8 RSA private key enabling
	// RS256 signing and verification.
	RSAPrivateKeyPEM []byte

	// RSAPublicKeyPEM is a PEM-encoded RSA public key enabling RS256 verification
	// only. Ignored when RSAPrivateKeyPEM is set.
	RSAPublicKeyPEM []byte
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation fails. It does not mutate the
// receiver and can be used concurrently.
func (c SecurityConfig) Validate() error {
	if len(c.Secret) == 0 && len(c.RSAPrivateKeyPEM) == 0 && len(c.RSAPublicKeyPEM) == 0 {
		return errors.New("security config requires a secret or rsa key material")
	}
	return nil
}
