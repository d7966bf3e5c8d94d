package validators

import (
	"net"
	"strings"
	"unicode"
)

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// IsTelefoneValid aceita números brasileiros com ou sem máscara
// (ex.: "+55 11 91234-5678", "11912345678").
func IsTelefoneValid(telefone string) bool {
	digitos := 0
	for _, r := range telefone {
		switch {
		case unicode.IsDigit(r):
			digitos++
		case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ':
			// máscara
		default:
			return false
		}
	}
	return digitos >= 10 && digitos <= 13
}
