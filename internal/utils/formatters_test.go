package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormatWhatsApp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"1", "1"},
		{"11", "11"},
		{"119", "(11) 9"},
		{"1198765", "(11) 98765"},
		{"11987654", "(11) 98765-4"},
		{"11987654321", "(11) 98765-4321"},
		{"1198765432199", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
	}
	for _, tt := range tests {
		if got := FormatWhatsApp(tt.in); got != tt.want {
			t.Errorf("FormatWhatsApp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct{ in, want string }{
		{"11987654321", "(11) 98765-4321"},
		{"5511987654321", "(11) 98765-4321"},
		{"1133334444", "(11) 3333-4444"},
		{"123", "123"},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("(11) 98765-4321", "Olá Ana, tudo bem?")
	want := "https://wa.me/5511987654321?text=Ol%C3%A1%20Ana%2C%20tudo%20bem%3F"
	if got != want {
		t.Fatalf("WhatsAppLink = %q, want %q", got, want)
	}
	if got := WhatsAppLink("5511987654321", ""); got != "https://wa.me/5511987654321" {
		t.Fatalf("WhatsAppLink without text = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Dermatologia", "dermatologia"},
		{"Cirurgia  Plástica", "cirurgia-plstica"},
		{"  Saúde da Mulher ", "sade-da-mulher"},
		{"Núcleo #1!", "ncleo-1"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if Slugify("Estética Avançada") != Slugify("Estética Avançada") {
		t.Error("slug must be deterministic")
	}
}

func TestFirstNameAndFormatName(t *testing.T) {
	if got := FirstName("  Maria   Clara Souza"); got != "Maria" {
		t.Errorf("FirstName = %q", got)
	}
	if got := FirstName(""); got != "" {
		t.Errorf("FirstName of empty = %q", got)
	}
	if got := FormatName("MARIA DA SILVA"); got != "Maria da Silva" {
		t.Errorf("FormatName = %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1234.5)
	if !strings.HasPrefix(got, "R$ ") || !strings.HasSuffix(got, ",50") {
		t.Errorf("FormatCurrency = %q", got)
	}
}

func TestFormatDateUsesBrasilTimezone(t *testing.T) {
	utc := time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)
	if got := FormatDate(utc); got != "09/03/2024" {
		t.Errorf("FormatDate = %q, want 09/03/2024", got)
	}
}

func TestValidators(t *testing.T) {
	if !IsValidPhone("(11) 98765-4321") || IsValidPhone("123456789") || IsValidPhone("12345678901234") {
		t.Error("phone validation mismatch")
	}
	if !IsValidName("Jo") || IsValidName(" J ") || IsValidName(strings.Repeat("a", 201)) {
		t.Error("name validation mismatch")
	}
	if !IsValidHexColor("#A1b2C3") || IsValidHexColor("A1B2C3") || IsValidHexColor("#12345") {
		t.Error("hex color validation mismatch")
	}
}

func TestInternationalPhone(t *testing.T) {
	tests := map[string]string{
		"(11) 98765-4321": "5511987654321",
		"5511987654321":   "5511987654321",
		"1134567890":      "551134567890",
	}
	for in, want := range tests {
		if got := InternationalPhone(in); got != want {
			t.Errorf("InternationalPhone(%q) = %q, want %q", in, got, want)
		}
	}
}
