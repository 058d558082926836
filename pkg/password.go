package pkg

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt cost used for new company passwords. Tests lower it.
var PasswordCost = bcrypt.DefaultCost

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), PasswordCost)
	return string(b), err
}

// ComparePassword returns nil when pw matches the stored hash.
func ComparePassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
