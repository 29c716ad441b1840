// Package document validates Brazilian taxpayer numbers (CPF and CNPJ).
package document

import "strings"

// OnlyDigits drops every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF checks length and both mod-11 check digits. Formatting is ignored.
func IsValidCPF(cpf string) bool {
	d := OnlyDigits(cpf)
	if len(d) != 11 || allSame(d) {
		return false
	}
	return checkDigit(d[:9], 10) == int(d[9]-'0') &&
		checkDigit(d[:10], 11) == int(d[10]-'0')
}

// checkDigit weights digits from startWeight down to 2.
func checkDigit(digits string, startWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (startWeight - i)
	}
	dv := sum * 10 % 11
	if dv == 10 {
		return 0
	}
	return dv
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ checks length and both check digits of a 14-digit CNPJ.
func IsValidCNPJ(cnpj string) bool {
	d := OnlyDigits(cnpj)
	if len(d) != 14 || allSame(d) {
		return false
	}
	return cnpjDigit(d[:12], cnpjWeights1) == int(d[12]-'0') &&
		cnpjDigit(d[:13], cnpjWeights2) == int(d[13]-'0')
}

func cnpjDigit(digits string, weights []int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// FormatCPF renders 11 digits as 000.000.000-00; other input is returned as digits.
func FormatCPF(cpf string) string {
	d := OnlyDigits(cpf)
	if len(d) != 11 {
		return d
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

func allSame(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}
