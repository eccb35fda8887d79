package token_test

import (
	"testing"
	"time"

	"go-devconnector-backend/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc, err := token.NewService("secret", time.Hour)
	assert.NoError(t, err)

	signed, err := svc.Issue("u1")
	assert.NoError(t, err)

	identity, err := svc.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)
}

func TestVerifyExpired(t *testing.T) {
	svc, err := token.NewService("secret", -time.Minute)
	assert.NoError(t, err)

	signed, err := svc.Issue("u1")
	assert.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, err := token.NewService("secret-a", time.Hour)
	assert.NoError(t, err)
	verifier, err := token.NewService("secret-b", time.Hour)
	assert.NoError(t, err)

	signed, err := issuer.Issue("u1")
	assert.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc, err := token.NewService("secret", time.Hour)
	assert.NoError(t, err)

	_, err = svc.Verify("not.a.token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

// Tokens may carry the id at the top level instead of wrapped under "user";
// both shapes must resolve to the same identity.
func TestVerifyFlatPayload(t *testing.T) {
	svc, err := token.NewService("secret", time.Hour)
	assert.NoError(t, err)

	flat := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := flat.SignedString([]byte("secret"))
	assert.NoError(t, err)

	identity, err := svc.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)
}

func TestVerifyMissingIdentity(t *testing.T) {
	svc, err := token.NewService("secret", time.Hour)
	assert.NoError(t, err)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := anonymous.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := token.NewService("", time.Hour)
	assert.Error(t, err)
}
