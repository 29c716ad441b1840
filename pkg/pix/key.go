package pix

import (
	"strings"

	"github.com/google/uuid"
)

type KeyType string

const (
	KeyCPF     KeyType = "cpf"
	KeyCNPJ    KeyType = "cnpj"
	KeyEmail   KeyType = "email"
	KeyPhone   KeyType = "phone"
	KeyRandom  KeyType = "random"
	KeyUnknown KeyType = "unknown"
)

// DetectKeyType classifies a PIX key by its shape. It does not validate
// check digits or e-mail syntax.
func DetectKeyType(key string) KeyType {
	k := strings.TrimSpace(key)
	switch {
	case k == "":
		return KeyUnknown
	case strings.Contains(k, "@"):
		return KeyEmail
	case strings.HasPrefix(k, "+"):
		return KeyPhone
	case isUUID(k):
		return KeyRandom
	}
	if !isDocumentLike(k) {
		return KeyUnknown
	}
	switch len(onlyDigits(k)) {
	case 11:
		return KeyCPF
	case 14:
		return KeyCNPJ
	}
	return KeyUnknown
}

// SanitizeKey strips punctuation from numeric (CPF/CNPJ style) keys and keeps
// every other key type verbatim apart from surrounding whitespace.
func SanitizeKey(key string) string {
	k := strings.TrimSpace(key)
	if isDocumentLike(k) {
		return onlyDigits(k)
	}
	return k
}

func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// isDocumentLike reports whether s holds digits plus the usual CPF/CNPJ
// separators and nothing else.
func isDocumentLike(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == '-' || r == '/' || r == ' ':
		default:
			return false
		}
	}
	return digits > 0
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
