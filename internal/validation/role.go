package validation

import (
	"fmt"
	"regexp"
)

// RolePattern определяет допустимый формат тега роли.
// Множество ролей открытое ("admin", "user", произвольные теги), поэтому
// проверяется только форма: латинские буквы, цифры, дефис, подчеркивание,
// длина 1-32. Какая роль что разрешает — сервер все равно не проверяет.
var RolePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,32}$`)

// ValidateRole проверяет, что тег роли синтаксически корректен.
func ValidateRole(role string) error {
	if role == "" {
		return fmt.Errorf("role cannot be empty")
	}

	if !RolePattern.MatchString(role) {
		return fmt.Errorf("role can only contain letters, numbers, hyphens and underscores (max 32 characters)")
	}

	return nil
}
