package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// CatalogCodePattern определяет формат кода категории или роли
// Только строчные латинские буквы и нижнее подчеркивание
var CatalogCodePattern = regexp.MustCompile(`^[a-z_]+$`)

// ValidateCatalogCode проверяет код категории или роли
func ValidateCatalogCode(code string) error {
	if code == "" {
		return fmt.Errorf("code cannot be empty")
	}

	if !CatalogCodePattern.MatchString(code) {
		return fmt.Errorf("code can only contain lowercase letters (a-z) and underscores (_)")
	}

	return nil
}

// ValidateCatalogName проверяет отображаемое имя
func ValidateCatalogName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}
