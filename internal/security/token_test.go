package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Hour)

	token, err := manager.GenerateAccessToken(42, "Mehmet", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.StaffID)
	assert.Equal(t, "Mehmet", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "hotelops-backend", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := manager.GenerateAccessToken(1, "", "")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Nanosecond)

	token, err := manager.GenerateAccessToken(1, "", "")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Hour)
	_, err := manager.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_UniqueIDs(t *testing.T) {
	manager := NewTokenManager(testSecret, time.Hour)

	a, _ := manager.GenerateAccessToken(1, "", "")
	b, _ := manager.GenerateAccessToken(1, "", "")

	claimsA, err := manager.ValidateToken(a)
	assert.NoError(t, err)
	claimsB, err := manager.ValidateToken(b)
	assert.NoError(t, err)
	assert.NotEqual(t, claimsA.ID, claimsB.ID)
}
