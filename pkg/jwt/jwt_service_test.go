package jwt

import (
	"testing"
	"time"

	"github.com/Theamazinguero/recipeclone2/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "RecipeApp"
)

func signWithExpiry(t *testing.T, secret, issuer string, expiresIn time.Duration) string {
	t.Helper()
	claims := UserClaims{
		UserID:  "user-1",
		Email:   "user@example.com",
		IsAdmin: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTServiceWithKey(testSecret, testIssuer)

	token := svc.GenerateTokenUser("user-42", "cook@example.com", true)
	require.NotEmpty(t, token)

	claims, err := svc.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestAdminFlagNotSetForRegularUser(t *testing.T) {
	svc := NewJWTServiceWithKey(testSecret, testIssuer)

	token := svc.GenerateTokenUser("user-1", "user@example.com", false)
	claims, err := svc.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestWrongSecretRejected(t *testing.T) {
	token := NewJWTServiceWithKey("other-secret", testIssuer).
		GenerateTokenUser("user-1", "user@example.com", false)

	svc := NewJWTServiceWithKey(testSecret, testIssuer)
	_, err := svc.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestWrongIssuerRejected(t *testing.T) {
	token := signWithExpiry(t, testSecret, "SomeoneElse", time.Hour)

	svc := NewJWTServiceWithKey(testSecret, testIssuer)
	_, err := svc.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := NewJWTServiceWithKey(testSecret, testIssuer)
	_, err := svc.GetClaimsByToken("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredTokenRejected(t *testing.T) {
	token := signWithExpiry(t, testSecret, testIssuer, -3*time.Minute)

	svc := NewJWTServiceWithKey(testSecret, testIssuer)
	_, err := svc.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestExpiryWithinClockSkewAccepted(t *testing.T) {
	// expired one minute ago, inside the two minute tolerance
	token := signWithExpiry(t, testSecret, testIssuer, -1*time.Minute)

	svc := NewJWTServiceWithKey(testSecret, testIssuer)
	claims, err := svc.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
