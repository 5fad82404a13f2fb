package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword хэширует пароль через bcrypt
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword сверяет пароль с хэшем; nil означает совпадение
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}
