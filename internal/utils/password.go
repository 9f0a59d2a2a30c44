package utils

import (
	"unicode"

	"github.com/Theamazinguero/recipeclone2/domain"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func ComparePassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the account password policy: at least six
// characters and at least one digit. Non-alphanumeric characters are
// allowed but not required.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return domain.ErrPasswordTooShort
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return domain.ErrPasswordNeedsDigit
}
