package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest. The same password hashes
// to a different digest each call; Check is the only way to compare.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether plain was the input that produced digest.
func Check(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
