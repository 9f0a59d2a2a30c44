package jwt

import (
	"fmt"
	"log"
	"time"

	"github.com/Theamazinguero/recipeclone2/domain"
	"github.com/Theamazinguero/recipeclone2/internal/utils"
	"github.com/golang-jwt/jwt/v4"
)

// Validation accepts tokens whose expiry is off by at most this much, so a
// small clock difference between instances does not reject fresh tokens.
const ClockSkewTolerance = 2 * time.Minute

const tokenValidity = 120 * time.Minute

type (
	JWTService interface {
		// GenerateTokenUser bakes the admin flag into the token at
		// issuance. A role change only takes effect after the user
		// logs in again; validation never re-reads role membership.
		GenerateTokenUser(userID string, email string, isAdmin bool) string
		GetClaimsByToken(token string) (*UserClaims, error)
	}

	UserClaims struct {
		UserID  string `json:"user_id"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"is_admin"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    utils.GetConfig("JWT_ISSUER"),
	}
}

func NewJWTServiceWithKey(secretKey, issuer string) JWTService {
	return &jwtService{secretKey: secretKey, issuer: issuer}
}

func (j *jwtService) GenerateTokenUser(userID string, email string, isAdmin bool) string {
	claims := UserClaims{
		userID,
		email,
		isAdmin,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// GetClaimsByToken verifies the signature, then validates expiry with the
// clock-skew tolerance and checks the issuer. No audience claim is used.
func (j *jwtService) GetClaimsByToken(token string) (*UserClaims, error) {
	t_Token, err := jwt.ParseWithClaims(
		token,
		&UserClaims{},
		j.parseToken,
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*UserClaims)
	if !claims.VerifyExpiresAt(time.Now().Add(-ClockSkewTolerance), true) {
		return nil, domain.ErrTokenExpired
	}
	if !claims.VerifyIssuer(j.issuer, true) {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
