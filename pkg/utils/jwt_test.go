package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	accountId := uuid.New()

	token, err := CreateToken(accountId)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountId.String(), claims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
