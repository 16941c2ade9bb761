package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the bcrypt digest stored in
// users.password_hash.  Cost comes from BCRYPT_COST so local runs and
// tests can use a cheap setting while production pays the full price.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored digest.  The
// cost is encoded in the digest itself, so verification needs no
// configuration.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
