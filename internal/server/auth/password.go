package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash at the default cost.
// The salt is random per call, so hashing the same password twice
// yields different outputs.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash. A corrupt
// or malformed hash counts as a mismatch, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
