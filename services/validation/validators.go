// Package validation holds the pure field predicates shared by every form
// screen. All functions are total over their inputs and never panic.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"homemate/models"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s has the local-part@domain.tld shape with no
// whitespace and no extra '@'.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// SignInPasswordOK is the relaxed sign-in policy: at least 6 characters.
// It is deliberately weaker than the registration policy so existing
// accounts keep working; do not unify the two.
func SignInPasswordOK(s string) bool {
	return utf8.RuneCountInString(s) >= 6
}

// CheckPasswordStrength evaluates the structural registration policy.
func CheckPasswordStrength(s string) models.PasswordStrength {
	var strength models.PasswordStrength
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			strength.HasUpper = true
		case r >= 'a' && r <= 'z':
			strength.HasLower = true
		case r >= '0' && r <= '9':
			strength.HasNumber = true
		}
	}
	strength.HasMinLength = utf8.RuneCountInString(s) >= 8
	return strength
}

// RegistrationPasswordOK is the strict registration policy: length >= 8 with
// at least one uppercase, one lowercase and one digit.
func RegistrationPasswordOK(s string) bool {
	return CheckPasswordStrength(s).Satisfied()
}

// PasswordsMatch reports whether both entries are equal and non-empty.
func PasswordsMatch(a, b string) bool {
	return a == b && len(a) > 0
}

// IsNonEmpty reports whether s has any non-whitespace content.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsPositivePrice reports whether the price is strictly greater than zero.
func IsPositivePrice(n float64) bool {
	return n > 0
}

// MinLength reports whether s is at least min characters long.
func MinLength(s string, min int) bool {
	return utf8.RuneCountInString(s) >= min
}

// WithinLength reports whether the length of s lies in [min, max], bounds
// inclusive.
func WithinLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
