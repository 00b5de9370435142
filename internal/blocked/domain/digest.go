package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// DigestLen is the length of a hex encoded SHA-1 digest.
const DigestLen = sha1.Size * 2

// Digest is a lowercase hex SHA-1 digest as published in the blocked servers list.
type Digest string

// DigestOf hashes the raw bytes of pattern.
// encoding/hex always emits lowercase, which is the form Mojang publishes.
func DigestOf(pattern string) Digest {
	sum := sha1.Sum([]byte(pattern))
	return Digest(hex.EncodeToString(sum[:]))
}

// NormalizeDigest trims surrounding whitespace and lowercases a published entry
// so that it compares byte for byte with DigestOf output.
func NormalizeDigest(raw string) Digest {
	return Digest(strings.ToLower(strings.TrimSpace(raw)))
}

// IsWellFormed reports whether d is exactly DigestLen lowercase hex characters.
// Malformed digests are harmless, they never match.
func (d Digest) IsWellFormed() bool {
	if len(d) != DigestLen {
		return false
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func (d Digest) String() string { return string(d) }
