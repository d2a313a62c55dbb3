package utils

import (
	"testing"

	"github.com/colletro/colletro-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "colletro-backend", claims.Issuer)
	assert.NotEmpty(t, claims.ID) // JTI backs logout revocation
}

func TestValidateToken_Tampered(t *testing.T) {
	token, err := GenerateToken("user-123")
	assert.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokensCarryUniqueJTI(t *testing.T) {
	a, _ := GenerateToken("user-123")
	b, _ := GenerateToken("user-123")

	claimsA, err := ValidateToken(a)
	assert.NoError(t, err)
	claimsB, err := ValidateToken(b)
	assert.NoError(t, err)

	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
