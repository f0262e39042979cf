package pkg

import "golang.org/x/crypto/bcrypt"

// HashToken hashes an API token for storage in the service environment.
func HashToken(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	return BytesToString(bytes), err
}

func CheckTokenHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
