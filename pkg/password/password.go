package password

import "golang.org/x/crypto/bcrypt"

// Cost matches the reference behavior of 10 salt rounds.
const Cost = 10

// Hash returns a bcrypt hash of the plaintext. The salt is randomized, so
// hashing the same input twice yields different hashes.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash never panics or errors out; it simply does not match.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
