package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	nonDigit     = regexp.MustCompile(`\D`)
	whitespace   = regexp.MustCompile(`\s+`)
	nonSlugChar  = regexp.MustCompile(`[^a-z0-9-]`)
	ptBR         = language.BrazilianPortuguese
	nameLinkings = map[string]bool{"de": true, "da": true, "do": true, "das": true, "dos": true, "e": true}
)

// OnlyDigits remove tudo que não for dígito
func OnlyDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// FormatWhatsApp aplica a máscara progressiva usada no campo de WhatsApp do totem.
// Entradas com mais de 11 dígitos são truncadas.
func FormatWhatsApp(value string) string {
	digits := OnlyDigits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 7:
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	}
}

// FormatPhone formata um telefone para exibição no painel
func FormatPhone(phone string) string {
	digits := OnlyDigits(phone)
	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		digits = digits[2:]
	}
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return phone
	}
}

// WhatsAppLink monta o link wa.me com a mensagem já codificada
func WhatsAppLink(phone, text string) string {
	link := "https://wa.me/" + InternationalPhone(phone)
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// FirstName devolve o primeiro nome, usado no placeholder {nome}
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FormatName capitaliza cada palavra, mantendo preposições em minúsculo
func FormatName(name string) string {
	// Casers guardam estado, então não podem ser compartilhados entre goroutines
	title := cases.Title(ptBR)
	words := strings.Fields(cases.Lower(ptBR).String(name))
	for i, w := range words {
		if i > 0 && nameLinkings[w] {
			continue
		}
		words[i] = title.String(w)
	}
	return strings.Join(words, " ")
}

// Slugify gera o slug de um núcleo: minúsculas, espaços viram hífen,
// qualquer outro caractere fora de [a-z0-9-] é removido
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespace.ReplaceAllString(slug, "-")
	return nonSlugChar.ReplaceAllString(slug, "")
}

// FormatCurrency formata valores em reais (R$ 1.234,56)
func FormatCurrency(value float64) string {
	return message.NewPrinter(ptBR).Sprintf("R$ %.2f", value)
}

// FormatDate formata a data no fuso de São Paulo (dd/mm/aaaa)
func FormatDate(t time.Time) string {
	return t.In(GetBrasilLocation()).Format("02/01/2006")
}

// FormatDateTime formata data e hora no fuso de São Paulo
func FormatDateTime(t time.Time) string {
	return t.In(GetBrasilLocation()).Format("02/01/2006 15:04")
}

// InternationalPhone devolve só os dígitos com o DDI 55
func InternationalPhone(phone string) string {
	digits := OnlyDigits(phone)
	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		return digits
	}
	return "55" + digits
}
