// Package yoke provides the security core for compact token authentication: keyed
// HMAC and RSA signing material behind a single provider type, signed-value helpers,
// and the token codec in the jwt sub-package.
//
// The package is designed for concurrent server workloads: Security methods are safe
// to call from multiple goroutines after initialization through [NewSecurity].
//
// # Architecture boundaries
//
// yoke is the public surface. It exposes [Security] and [SecurityConfig] plus the
// jwt sub-package ([github.com/valerinistor/yoke/jwt]). Key material never leaves
// this package: consumers receive keyed primitives, not raw secrets.
//
// # What this package must NOT do
//
//   - Expose raw secret bytes or private keys in its public API.
//   - Perform I/O after construction (NewSecurity parses PEM once; Mac and Signer
//     are allocation-only).
//   - Validate claims, rotate keys, or enforce token expiry — callers inspect the
//     decoded payload themselves.
package yoke
