package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, expiresIn, err := svc.Generate(42, "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(15*60), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", 15).Generate(1, "a@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, _, err := svc.Generate(1, "a@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 15).Verify("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.NoError(t, hasher.Compare(hashed, "s3cret-pass"))
	assert.Error(t, hasher.Compare(hashed, "wrong-pass"))
}

func TestNewPasswordHasher_ClampsInvalidCost(t *testing.T) {
	hasher := NewPasswordHasher(999)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
