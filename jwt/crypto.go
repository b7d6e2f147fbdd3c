package jwt

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"hash"
	"sync"
)

// signingMethod is the closed set of signing strategies behind an algorithm
// identifier: MAC-based (shared secret) or signature-based (RSA key pair).
type signingMethod interface {
	sign(payload []byte) ([]byte, error)
	verify(signature, payload []byte) (bool, error)
}

// hmacMethod wraps one keyed HMAC instance. The primitive carries incremental hash
// state, so every sign or verify holds the mutex across reset, write, and finalize.
type hmacMethod struct {
	mu  sync.Mutex
	mac hash.Hash
}

func (h *hmacMethod) sign(payload []byte) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.mac.Reset()
	if _, err := h.mac.Write(payload); err != nil {
		return nil, err
	}
	return h.mac.Sum(nil), nil
}

func (h *hmacMethod) verify(signature, payload []byte) (bool, error) {
	expected, err := h.sign(payload)
	if err != nil {
		return false, err
	}
	// hmac.Equal is constant-time.
	return hmac.Equal(signature, expected), nil
}

// rsaMethod signs PKCS#1 v1.5 over SHA-256 with the configured signer and verifies
// against its public half, so verification works without the private key.
type rsaMethod struct {
	mu     sync.Mutex
	signer crypto.Signer
	pub    *rsa.PublicKey
}

func newRSAMethod(signer crypto.Signer) (*rsaMethod, error) {
	pub, ok := signer.Public().(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("signer public key is %T, need *rsa.PublicKey", signer.Public())
	}
	return &rsaMethod{signer: signer, pub: pub}, nil
}

func (r *rsaMethod) sign(payload []byte) ([]byte, error) {
	digest := sha256.Sum256(payload)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.signer.Sign(rand.Reader, digest[:], crypto.SHA256)
}

func (r *rsaMethod) verify(signature, payload []byte) (bool, error) {
	digest := sha256.Sum256(payload)
	if err := rsa.VerifyPKCS1v15(r.pub, crypto.SHA256, digest[:], signature); err != nil {
		return false, nil
	}
	return true, nil
}
