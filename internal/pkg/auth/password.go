package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor of stored password hashes
const BcryptCost = 12

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// HashPassword hashes a plain-text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a stored hash with a plain-text password
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
