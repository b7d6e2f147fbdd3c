package jwt

import (
	"crypto"
	"encoding/json"
	"fmt"
	"hash"
	"sort"
	"strings"
)

// DefaultAlgorithm is an exported constant or variable used by the token codec.
const DefaultAlgorithm = "HS256"

// KeyProvider defines a public type used by the yoke security APIs.
//
// A KeyProvider supplies keyed primitives per algorithm name. Errors are not fatal:
// the codec records them and omits the algorithm from its registry. yoke.Security is
// the in-tree implementation.
type KeyProvider interface {
	// Mac returns a keyed MAC primitive for a symmetric algorithm name.
	Mac(algorithm string) (hash.Hash, error)
	// Signer returns a signature primitive bound to its key for an asymmetric
	// algorithm name.
	Signer(algorithm string) (crypto.Signer, error)
}

// Codec defines a public type used by the yoke security APIs.
//
// A Codec encodes and decodes three-segment "header.payload.signature" tokens. Its
// algorithm registry is built once in [New] and never mutated, so a single Codec is
// safe for concurrent use; mutual exclusion happens at the individual primitive.
type Codec struct {
	methods map[string]signingMethod
	missing map[string]error
}

// New describes the new operation and its observable behavior.
//
// New probes the provider for every supported algorithm (HS256, HS384, HS512
// symmetric; RS256 asymmetric). An algorithm the provider cannot serve is omitted
// from the registry with its cause recorded; the omission surfaces later as
// [ErrAlgorithmNotSupported] when the algorithm is actually requested.
func New(provider KeyProvider) *Codec {
	c := &Codec{
		methods: make(map[string]signingMethod, 4),
		missing: make(map[string]error),
	}

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		mac, err := provider.Mac(alg)
		if err != nil {
			c.missing[alg] = err
			continue
		}
		c.methods[alg] = &hmacMethod{mac: mac}
	}

	if signer, err := provider.Signer("RS256"); err != nil {
		c.missing["RS256"] = err
	} else if method, err := newRSAMethod(signer); err != nil {
		c.missing["RS256"] = err
	} else {
		c.methods["RS256"] = method
	}

	return c
}

// Algorithms describes the algorithms operation and its observable behavior.
//
// Algorithms returns the sorted identifiers the registry ended up supporting. It is
// a diagnostics aid: an identifier missing here was skipped at construction time.
func (c *Codec) Algorithms() []string {
	algs := make([]string, 0, len(c.methods))
	for alg := range c.methods {
		algs = append(algs, alg)
	}
	sort.Strings(algs)
	return algs
}

func (c *Codec) lookup(algorithm string) (signingMethod, error) {
	if method, ok := c.methods[algorithm]; ok {
		return method, nil
	}
	if cause, ok := c.missing[algorithm]; ok {
		return nil, fmt.Errorf("%w: %s: %v", ErrAlgorithmNotSupported, algorithm, cause)
	}
	return nil, fmt.Errorf("%w: %s", ErrAlgorithmNotSupported, algorithm)
}

// Encode describes the encode operation and its observable behavior.
//
// Encode signs the payload with the default algorithm (HS256).
func (c *Codec) Encode(payload map[string]any) (string, error) {
	return c.EncodeAs(payload, DefaultAlgorithm)
}

// EncodeAs describes the encodeas operation and its observable behavior.
//
// EncodeAs serializes the header and payload, base64url-encodes each, signs
// "headerSegment.payloadSegment" with the named algorithm, and joins the three
// segments with '.'. Output is deterministic for symmetric algorithms given
// identical payload and key.
func (c *Codec) EncodeAs(payload map[string]any, algorithm string) (string, error) {
	method, err := c.lookup(algorithm)
	if err != nil {
		return "", err
	}

	header := map[string]any{"typ": "JWT", "alg": algorithm}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("encode header: %w", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(payloadJSON)
	signature, err := method.sign([]byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPrimitiveFailure, algorithm, err)
	}

	return signingInput + "." + encodeSegment(signature), nil
}

// Decode describes the decode operation and its observable behavior.
//
// Decode splits and decodes the token, then verifies the embedded signature over the
// original header and payload segments. On success the returned payload is attested
// to come from a holder of the matching key and to be unaltered since signing.
func (c *Codec) Decode(token string) (map[string]any, error) {
	return c.decode(token, true)
}

// DecodeUnverified describes the decodeunverified operation and its observable behavior.
//
// DecodeUnverified returns the decoded payload without touching any signing
// primitive. Intended for inspection and debugging, never for trust decisions.
func (c *Codec) DecodeUnverified(token string) (map[string]any, error) {
	return c.decode(token, false)
}

func (c *Codec) decode(token string, verify bool) (map[string]any, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}
	headerSeg, payloadSeg, signatureSeg := segments[0], segments[1], segments[2]

	var header map[string]any
	if err := decodeSegmentJSON(headerSeg, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedToken, err)
	}
	var payload map[string]any
	if err := decodeSegmentJSON(payloadSeg, &payload); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrMalformedToken, err)
	}

	if verify {
		algorithm, _ := header["alg"].(string)
		if algorithm == "" {
			return nil, fmt.Errorf("%w: header carries no alg", ErrAlgorithmNotSupported)
		}
		method, err := c.lookup(algorithm)
		if err != nil {
			return nil, err
		}

		signature, err := decodeSegment(signatureSeg)
		if err != nil {
			return nil, fmt.Errorf("%w: signature: %v", ErrMalformedToken, err)
		}

		// Verification runs over the original segments verbatim, not over
		// re-serialized JSON, so it attests the exact bytes that were signed.
		ok, err := method.verify(signature, []byte(headerSeg+"."+payloadSeg))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPrimitiveFailure, algorithm, err)
		}
		if !ok {
			return nil, ErrSignatureVerificationFailed
		}
	}

	return payload, nil
}

func decodeSegmentJSON(segment string, dest *map[string]any) error {
	raw, err := decodeSegment(segment)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
