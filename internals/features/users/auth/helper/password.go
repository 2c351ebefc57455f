package helpers

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

/* ==========================
   Validasi input auth
========================== */

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

func ValidateRegisterInput(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("nama wajib diisi")
	}
	if !IsValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}
