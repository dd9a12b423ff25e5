package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidPhone aceita telefones com 10 a 13 dígitos (com ou sem DDI)
func IsValidPhone(phone string) bool {
	n := len(OnlyDigits(phone))
	return n >= 10 && n <= 13
}

// IsValidName aceita nomes entre 2 e 200 caracteres
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 2 && n <= 200
}

// IsValidHexColor aceita cores no formato #RRGGBB
func IsValidHexColor(color string) bool {
	return hexColor.MatchString(color)
}
