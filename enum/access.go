package enum

import (
	"fmt"
	"strings"
)

// AccessLevel is an ordered visibility hierarchy for sets.
type AccessLevel int

const (
	AccessPublic AccessLevel = iota + 1
	AccessProtected
	AccessPrivate
)

func (l AccessLevel) String() string {
	switch l {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// ParseAccessLevel converts a level name to its AccessLevel.
func ParseAccessLevel(name string) (AccessLevel, error) {
	switch name {
	case "public":
		return AccessPublic, nil
	case "protected":
		return AccessProtected, nil
	case "private":
		return AccessPrivate, nil
	default:
		return 0, fmt.Errorf("unknown access level %q", name)
	}
}

// AccessLevel returns the set's current level.
func (s *Set) AccessLevel() AccessLevel {
	return s.access
}

// SetAccessLevel replaces the set's level.
func (s *Set) SetAccessLevel(level AccessLevel) {
	s.access = level
}

// RequireAccess reports whether the set's current level rank meets or
// exceeds the requested level (public=1 < protected=2 < private=3).
func (s *Set) RequireAccess(level AccessLevel) bool {
	return s.access >= level
}

// encryptionTag marks Encrypt output. The scheme is a cosmetic
// placeholder, not cryptography: Decrypt only checks and strips the tag.
const encryptionTag = "ENC:"

// Encrypt returns data wrapped in the placeholder encryption tag.
func (s *Set) Encrypt(data string) string {
	return encryptionTag + data
}

// Decrypt reverses Encrypt, failing if data does not carry the tag.
func (s *Set) Decrypt(data string) (string, error) {
	if !strings.HasPrefix(data, encryptionTag) {
		return "", fmt.Errorf("data is not tagged as encrypted")
	}
	return strings.TrimPrefix(data, encryptionTag), nil
}
