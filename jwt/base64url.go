package jwt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Token segments use the base64url alphabet with padding stripped so that '.' is an
// unambiguous separator and the segment survives URL transport untouched.

func base64urlEscape(s string) string {
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, "/", "_")
	return strings.TrimRight(s, "=")
}

func base64urlUnescape(s string) (string, error) {
	switch len(s) % 4 {
	case 0:
	case 2:
		s += "=="
	case 3:
		s += "="
	default:
		// No unpadded base64 string has length 1 mod 4; no padding count can
		// repair it, so this length class is an explicit decode error.
		return "", fmt.Errorf("invalid base64url length %d", len(s))
	}
	s = strings.ReplaceAll(s, "-", "+")
	return strings.ReplaceAll(s, "_", "/"), nil
}

func encodeSegment(raw []byte) string {
	return base64urlEscape(base64.StdEncoding.EncodeToString(raw))
}

func decodeSegment(segment string) ([]byte, error) {
	unescaped, err := base64urlUnescape(segment)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(unescaped)
}
