package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	k1 := DeriveKey([]byte("secret"), salt)
	k2 := DeriveKey([]byte("secret"), salt)

	require.Len(t, k1, 32)
	require.Equal(t, k1, k2)
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	salt := []byte("0123456789abcdef")

	require.NotEqual(t, DeriveKey([]byte("a"), salt), DeriveKey([]byte("b"), salt))
	require.NotEqual(t, DeriveKey([]byte("a"), salt), DeriveKey([]byte("a"), NewSalt()))
}

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer(DeriveKey([]byte("pw"), NewSalt()))
	require.NoError(t, err)

	sealed := s.Seal([]byte("access-token"))
	require.False(t, bytes.Contains(sealed, []byte("access-token")))

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, []byte("access-token"), plain)
}

func TestSealer_NonceIsFresh(t *testing.T) {
	s, err := NewSealer(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)

	require.NotEqual(t, s.Seal([]byte("x")), s.Seal([]byte("x")))
}

func TestSealer_WrongKeyFails(t *testing.T) {
	salt := NewSalt()
	a, err := NewSealer(DeriveKey([]byte("right"), salt))
	require.NoError(t, err)
	b, err := NewSealer(DeriveKey([]byte("wrong"), salt))
	require.NoError(t, err)

	_, err = b.Open(a.Seal([]byte("token")))
	require.Error(t, err)
}

func TestSealer_ShortInput(t *testing.T) {
	s, err := NewSealer(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)

	_, err = s.Open([]byte{1, 2})
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewSealer_BadKeyLength(t *testing.T) {
	_, err := NewSealer([]byte("short"))
	require.Error(t, err)
}
