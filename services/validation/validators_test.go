package validation_test

import (
	"testing"

	"homemate/services/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a@b.co",
		"first.last+tag@sub.domain.org",
	}
	for _, s := range valid {
		assert.True(t, validation.IsValidEmail(s), "expected valid: %q", s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"two@@example.com",
		"spaces in@example.com",
		"user@exa mple.com",
		"@example.com",
		"user@",
	}
	for _, s := range invalid {
		assert.False(t, validation.IsValidEmail(s), "expected invalid: %q", s)
	}
}

func TestSignInPasswordOK(t *testing.T) {
	assert.False(t, validation.SignInPasswordOK("12345"))
	assert.True(t, validation.SignInPasswordOK("123456"))
	// The sign-in policy has no structural requirements.
	assert.True(t, validation.SignInPasswordOK("aaaaaa"))
}

func TestRegistrationPasswordOK(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdef1x", true},
		{"Abcde1", false},     // too short
		{"abcdefg1", false},   // no uppercase
		{"ABCDEFG1", false},   // no lowercase
		{"Abcdefgh", false},   // no digit
		{"abc123", false},     // passes sign-in policy, fails here
		{"Sup3rSecret", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validation.RegistrationPasswordOK(tc.password), "password %q", tc.password)
	}
}

func TestCheckPasswordStrength(t *testing.T) {
	s := validation.CheckPasswordStrength("abcDE")
	assert.True(t, s.HasUpper)
	assert.True(t, s.HasLower)
	assert.False(t, s.HasNumber)
	assert.False(t, s.HasMinLength)
	assert.False(t, s.Satisfied())

	s = validation.CheckPasswordStrength("Abcdefg1")
	assert.True(t, s.Satisfied())
}

func TestPasswordsMatch(t *testing.T) {
	assert.True(t, validation.PasswordsMatch("Secret12", "Secret12"))
	assert.False(t, validation.PasswordsMatch("Secret12", "Secret13"))
	// Two empty entries never count as a match.
	assert.False(t, validation.PasswordsMatch("", ""))
}

func TestIsNonEmpty(t *testing.T) {
	assert.True(t, validation.IsNonEmpty("x"))
	assert.False(t, validation.IsNonEmpty(""))
	assert.False(t, validation.IsNonEmpty("   \t"))
}

func TestIsPositivePrice(t *testing.T) {
	assert.True(t, validation.IsPositivePrice(0.01))
	assert.False(t, validation.IsPositivePrice(0))
	assert.False(t, validation.IsPositivePrice(-5))
}

func TestWithinLengthBoundsInclusive(t *testing.T) {
	assert.False(t, validation.WithinLength("123456789", 10, 100))
	assert.True(t, validation.WithinLength("1234567890", 10, 100))

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	assert.True(t, validation.WithinLength(string(long), 10, 100))
	assert.False(t, validation.WithinLength(string(long)+"a", 10, 100))
}
