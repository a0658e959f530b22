package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("emp_1", "secret", time.Hour, "pos-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "emp_1", claims.Subject)
	assert.Equal(t, "pos-test", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("emp_1", "secret", -time.Minute, "pos-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPinHash(t *testing.T) {
	hash, err := utils.HashPin("1234")
	require.NoError(t, err)
	assert.True(t, utils.CheckPinHash("1234", hash))
	assert.False(t, utils.CheckPinHash("4321", hash))
}
