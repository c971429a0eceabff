// Package validation holds the field formats shared by beneficiary, charity
// and auth request bodies.
package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var (
	identificationNumberPattern = regexp.MustCompile(`^\d{10}$`)
	phonePattern                = regexp.MustCompile(`^09\d{9}$`)
	postalCodePattern           = regexp.MustCompile(`^\d{10}$`)
	persianNamePattern          = regexp.MustCompile(`^[\x{0600}-\x{06FF}\x{FB8A}\x{067E}\x{0686}\x{06AF}\x{200C}\x{200F}\s]+$`)
	clockPattern                = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
)

const DateLayout = "2006-01-02"

// IdentificationNumber reports whether s is a 10-digit national id.
func IdentificationNumber(s string) bool {
	return identificationNumberPattern.MatchString(s)
}

// Phone reports whether s is an 11-digit mobile number starting with 09.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

func PostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// PersianName reports whether s consists only of Persian letters and spaces.
func PersianName(s string) bool {
	return persianNamePattern.MatchString(s)
}

// Email accepts a bare address, without display name.
func Email(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.IndexByte(s, '@'):], ".")
}

// Clock reports whether s is HH:MM or HH:MM:SS.
func Clock(s string) bool {
	return clockPattern.MatchString(s)
}

// ParseDate parses a YYYY-MM-DD date. Empty input yields nil.
func ParseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// Password enforces the account password policy: at least 8 characters and
// not entirely numeric.
func Password(s string) string {
	if len(s) < 8 {
		return "This password is too short. It must contain at least 8 characters."
	}
	allDigits := true
	for _, r := range s {
		if r < '0' || r > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "This password is entirely numeric."
	}
	return ""
}
