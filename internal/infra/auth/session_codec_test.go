package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-session-codec"

func TestNewJWTSessionCodec_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewJWTSessionCodec("", time.Hour)
	assert.Error(t, err)

	_, err = NewJWTSessionCodec(testSecret, 0)
	assert.Error(t, err)

	codec, err := NewJWTSessionCodec(testSecret, time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, codec)
}

func TestJWTSessionCodec_EncodeDecode(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTSessionCodec(testSecret, 7*24*time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := codec.Encode(userID, "alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)

	session := codec.Decode(token)
	require.NotNil(t, session)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.WithinDuration(t, expiresAt, session.ExpiresAt, time.Second)
	assert.False(t, session.Expired(time.Now()))
}

func TestJWTSessionCodec_DecodeGarbage(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTSessionCodec(testSecret, time.Hour)
	require.NoError(t, err)

	assert.Nil(t, codec.Decode(""))
	assert.Nil(t, codec.Decode("not-a-token"))
	assert.Nil(t, codec.Decode("aaa.bbb.ccc"))
}

func TestJWTSessionCodec_DecodeWrongSecret(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTSessionCodec(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewJWTSessionCodec("a-completely-different-secret", time.Hour)
	require.NoError(t, err)

	token, _, err := codec.Encode(uuid.New(), "bob", "bob@example.com")
	require.NoError(t, err)

	assert.Nil(t, other.Decode(token))
}

func TestJWTSessionCodec_DecodeRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTSessionCodec(testSecret, time.Hour)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Nil(t, codec.Decode(token))
}

func TestJWTSessionCodec_DecodeExpiredTokenStillParses(t *testing.T) {
	t.Parallel()

	// Expiry is the caller's responsibility; Decode must return expired
	// sessions so the cookie can be cleared lazily on the next read.
	codec, err := NewJWTSessionCodec(testSecret, time.Millisecond)
	require.NoError(t, err)

	userID := uuid.New()
	token, _, err := codec.Encode(userID, "carol", "carol@example.com")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	session := codec.Decode(token)
	require.NotNil(t, session)
	assert.Equal(t, userID, session.UserID)
	assert.True(t, session.Expired(time.Now()))
}
