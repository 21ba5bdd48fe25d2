package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash of the plaintext password.
// bcrypt.DefaultCost (10) keeps brute-forcing stored hashes infeasible if
// the store leaks.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether candidate matches the stored hash. The
// comparison runs in time independent of where a mismatch occurs.
func CheckPassword(candidate, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
