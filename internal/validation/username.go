package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/dogbrowser/internal/models"
)

// UsernamePattern определяет допустимый формат username demo-auth API
// Латинские буквы, цифры, точка, дефис, нижнее подчеркивание
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

const (
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 64
)

// ValidateUsername проверяет, что username не пустой и без пробелов
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username cannot be empty", models.ErrValidation)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("%w: username must not exceed %d characters", models.ErrValidation, MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, numbers, '.', '-' and '_'", models.ErrValidation)
	}

	return nil
}

// ValidatePassword проверяет, что пароль задан
// Требования к сложности задает сервер, не клиент
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", models.ErrValidation)
	}

	return nil
}
