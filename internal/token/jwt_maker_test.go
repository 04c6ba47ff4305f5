package token

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestJWTMaker_CreateAndVerify(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	userID := uuid.NewString()
	duration := time.Minute

	issuedAt := time.Now()
	expiresAt := issuedAt.Add(duration)

	tokenString, payload, err := maker.CreateToken(userID, duration)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	require.NotNil(t, payload)

	verified, err := maker.VerifyToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID, verified.Subject)
	assert.NotEmpty(t, verified.ID)
	assert.WithinDuration(t, issuedAt, verified.IssuedAt.Time, time.Second)
	assert.WithinDuration(t, expiresAt, verified.ExpiresAt.Time, time.Second)
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenString, _, err := maker.CreateToken(uuid.NewString(), -time.Minute)
	require.NoError(t, err)

	payload, err := maker.VerifyToken(tokenString)
	require.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, payload)
}

func TestJWTMaker_InvalidToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	payload, err := maker.VerifyToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, payload)
}

func TestNewJWTMaker_ShortSecret(t *testing.T) {
	maker, err := NewJWTMaker(strings.Repeat("x", minSecretKeySize-1))
	require.Error(t, err)
	assert.Nil(t, maker)
}
