package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is deliberately low and kept for compatibility with hashes
// already stored by earlier deployments.
const PasswordCost = 5

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
