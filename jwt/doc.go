// Package jwt implements compact token signing and verification over an immutable
// algorithm registry built from externally supplied key material.
package jwt
