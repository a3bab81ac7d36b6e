package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessLevel_String(t *testing.T) {
	require.Equal(t, "public", AccessPublic.String())
	require.Equal(t, "protected", AccessProtected.String())
	require.Equal(t, "private", AccessPrivate.String())
	require.Equal(t, "unknown", AccessLevel(0).String())
}

func TestParseAccessLevel(t *testing.T) {
	for name, want := range map[string]AccessLevel{
		"public":    AccessPublic,
		"protected": AccessProtected,
		"private":   AccessPrivate,
	} {
		got, err := ParseAccessLevel(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseAccessLevel("internal")
	require.Error(t, err)
}

func TestSet_RequireAccess(t *testing.T) {
	s := mkSet(t, "Color")

	require.True(t, s.RequireAccess(AccessPublic))
	require.False(t, s.RequireAccess(AccessProtected))
	require.False(t, s.RequireAccess(AccessPrivate))

	s.SetAccessLevel(AccessPrivate)
	require.True(t, s.RequireAccess(AccessPublic))
	require.True(t, s.RequireAccess(AccessProtected))
	require.True(t, s.RequireAccess(AccessPrivate))
}

func TestSet_EncryptDecrypt(t *testing.T) {
	s := mkSet(t, "Color")

	// The scheme is a placeholder: a tag prefix, nothing more.
	tagged := s.Encrypt("secret")
	require.Equal(t, "ENC:secret", tagged)

	plain, err := s.Decrypt(tagged)
	require.NoError(t, err)
	require.Equal(t, "secret", plain)

	_, err = s.Decrypt("untagged data")
	require.Error(t, err)
}
