package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
)

func testService(secret string) JWTService {
	return &jwtService{secretKey: secret, issuer: "FOODSHARE"}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.NewString()

	token, claims, err := svc.GenerateTokenUser(userID, domain.RoleDonor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, claims.ID)

	parsed, err := svc.ValidateTokenUser(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, domain.RoleDonor, parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateTokenUser(uuid.NewString(), domain.RoleAdmin)
	require.NoError(t, err)

	_, err = testService("secret-b").ValidateTokenUser(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := testService("secret").ValidateTokenUser("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestEachTokenGetsFreshJTI(t *testing.T) {
	svc := testService("secret")

	_, first, err := svc.GenerateTokenUser(uuid.NewString(), domain.RoleDonor)
	require.NoError(t, err)
	_, second, err := svc.GenerateTokenUser(uuid.NewString(), domain.RoleDonor)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
