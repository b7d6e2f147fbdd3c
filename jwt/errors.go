package jwt

import "errors"

var (
	// ErrMalformedToken is an exported constant or variable used by the token codec.
	ErrMalformedToken = errors.New("malformed token")
	// ErrAlgorithmNotSupported is an exported constant or variable used by the token codec.
	ErrAlgorithmNotSupported = errors.New("algorithm not supported")
	// ErrSignatureVerificationFailed is an exported constant or variable used by the token codec.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")
	// ErrPrimitiveFailure is an exported constant or variable used by the token codec.
	ErrPrimitiveFailure = errors.New("signing primitive failure")
)
