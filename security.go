package yoke

import (
	"crypto"
	"crypto/hmac"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	gjwt "github.com/golang-jwt/jwt/v5"
)

// Security defines a public type used by the yoke security APIs.
//
// Security instances are intended to be configured during initialization and then
// treated as immutable unless documented otherwise. A Security is the key-material
// provider behind the token codec: it hands out keyed primitives per algorithm name
// and never exposes the underlying secret or private key.
type Security struct {
	secret []byte
	rsaKey *rsa.PrivateKey
	rsaPub *rsa.PublicKey
}

// NewSecurity describes the newsecurity operation and its observable behavior.
//
// NewSecurity may return an error when input validation or PEM parsing fails.
// NewSecurity does not mutate shared global state and the returned Security can be
// used concurrently.
func NewSecurity(cfg SecurityConfig) (*Security, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Security{}
	if len(cfg.Secret) > 0 {
		s.secret = append([]byte(nil), cfg.Secret...)
	}
	if len(cfg.RSAPrivateKeyPEM) > 0 {
		key, err := gjwt.ParseRSAPrivateKeyFromPEM(cfg.RSAPrivateKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("invalid rsa private key: %w", err)
		}
		s.rsaKey = key
		s.rsaPub = &key.PublicKey
	} else if len(cfg.RSAPublicKeyPEM) > 0 {
		pub, err := gjwt.ParseRSAPublicKeyFromPEM(cfg.RSAPublicKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("invalid rsa public key: %w", err)
		}
		s.rsaPub = pub
	}

	return s, nil
}

// Mac describes the mac operation and its observable behavior.
//
// Mac returns a fresh HMAC primitive keyed with the configured secret for the given
// algorithm name, or an error when the secret is absent or the name is unknown. The
// token codec interprets the error as "algorithm unavailable" and omits the entry.
func (s *Security) Mac(algorithm string) (hash.Hash, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("no secret configured")
	}
	switch algorithm {
	case "HS256":
		return hmac.New(sha256.New, s.secret), nil
	case "HS384":
		return hmac.New(sha512.New384, s.secret), nil
	case "HS512":
		return hmac.New(sha512.New, s.secret), nil
	}
	return nil, fmt.Errorf("unsupported mac algorithm %q", algorithm)
}

// Signer describes the signer operation and its observable behavior.
//
// Signer returns the RSA signing primitive for the given algorithm name. With only a
// public key configured the returned signer verifies but refuses to sign. The token
// codec interprets an error as "algorithm unavailable" and omits the entry.
func (s *Security) Signer(algorithm string) (crypto.Signer, error) {
	if algorithm != "RS256" {
		return nil, fmt.Errorf("unsupported signature algorithm %q", algorithm)
	}
	if s.rsaKey != nil {
		return s.rsaKey, nil
	}
	if s.rsaPub != nil {
		return verifyOnlySigner{pub: s.rsaPub}, nil
	}
	return nil, errors.New("no rsa key configured")
}

// Sign describes the sign operation and its observable behavior.
//
// Sign appends an HMAC-SHA256 signature segment to an opaque string value, producing
// "value.signature" with a base64url signature. It is the signed-value counterpart
// to token encoding, used for values that need integrity but not structure.
func (s *Security) Sign(value string) (string, error) {
	mac, err := s.Mac("HS256")
	if err != nil {
		return "", err
	}
	mac.Write([]byte(value))
	return value + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Unsign describes the unsign operation and its observable behavior.
//
// Unsign splits a signed value on its last separator, recomputes the signature over
// the value part, and reports whether the input matches. The comparison is
// constant-time over the full signed string.
func (s *Security) Unsign(signed string) (string, bool) {
	i := strings.LastIndexByte(signed, '.')
	if i < 0 {
		return "", false
	}
	value := signed[:i]
	resigned, err := s.Sign(value)
	if err != nil {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(signed), []byte(resigned)) != 1 {
		return "", false
	}
	return value, true
}

// verifyOnlySigner adapts a bare RSA public key to crypto.Signer so the codec can
// build a verify-only RS256 capability. Sign always fails.
type verifyOnlySigner struct {
	pub *rsa.PublicKey
}

func (v verifyOnlySigner) Public() crypto.PublicKey {
	return v.pub
}

func (v verifyOnlySigner) Sign(io.Reader, []byte, crypto.SignerOpts) ([]byte, error) {
	return nil, errors.New("rsa private key not configured")
}
