// Package validation contains input validation helpers for client records.
package validation

import (
	"regexp"
	"unicode"
)

var (
	phoneRe = regexp.MustCompile(`^\d{9}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ComputeRUTCheckDigit returns the check character for a base RUT number.
// Digits are taken in reverse order, multiplied by the repeating weight
// cycle 2..7 and summed; 11 - (sum mod 11) maps to '0' for 11 and 'K'
// for 10, otherwise to the digit itself.
func ComputeRUTCheckDigit(base string) byte {
	weights := [6]int{2, 3, 4, 5, 6, 7}
	sum := 0
	for i := 0; i < len(base); i++ {
		d := int(base[len(base)-1-i] - '0')
		sum += d * weights[i%len(weights)]
	}
	switch res := 11 - sum%11; res {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + res)
	}
}

// NormalizeRUT appends the computed check digit to a purely numeric RUT.
// A RUT that already carries a separator is returned unchanged, so
// normalizing an already stored value is safe.
func NormalizeRUT(rut string) string {
	if rut == "" || !isNumeric(rut) {
		return rut
	}
	return rut + "-" + string(ComputeRUTCheckDigit(rut))
}

func isNumeric(s string) bool {
	for _, ch := range s {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

// IsValidPhone reports whether the phone number contains exactly nine digits.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// IsValidEmail reports whether the address looks like user@domain.tld.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
