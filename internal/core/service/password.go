package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. A single verification lands in the
// tens of milliseconds on commodity hardware.
const hashCost = 12

// PasswordHasher wraps bcrypt hashing and verification. Each Hash call
// embeds a fresh random salt, so two hashes of the same plaintext differ.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{cost: hashCost}
}

func (h PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
