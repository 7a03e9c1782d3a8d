// Package passcode seals and verifies gift passcodes with bcrypt.
// Sealing is randomized: two seals of the same plaintext yield different
// hashes, and verification uses the salt embedded in the hash itself.
package passcode

import "golang.org/x/crypto/bcrypt"

// Seal returns a one-way hash of plaintext. The plaintext is never stored.
func Seal(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches a hash produced by Seal.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
