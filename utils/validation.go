// utils/validation.go
package utils

import (
	"errors"
	"os"
	"regexp"
	"strings"
)

var (
	intlPhoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	tenDigitRegexp  = regexp.MustCompile(`^\d{10}$`)
	ErrInvalidPhone = errors.New("invalid phone number")
)

// DefaultCountryCode is prepended to bare 10-digit numbers.
func DefaultCountryCode() string {
	if cc := os.Getenv("DEFAULT_COUNTRY_CODE"); cc != "" {
		return cc
	}
	return "+91"
}

// NormalizePhone coerces a stored phone number into a string suitable for
// the SMS provider. Numbers already carrying a + prefix pass through
// untouched; bare 10-digit numbers get the default country code;
// everything else is rejected.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.TrimSpace(phone)

	switch {
	case cleaned == "":
		return "", ErrInvalidPhone
	case strings.HasPrefix(cleaned, "+"):
		return cleaned, nil
	case tenDigitRegexp.MatchString(cleaned):
		return DefaultCountryCode() + cleaned, nil
	default:
		return "", ErrInvalidPhone
	}
}

// ValidatePhone checks if a phone number is in a valid international
// format. This is the stricter API-side check applied to user input;
// stored numbers go through NormalizePhone at dispatch time.
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return intlPhoneRegexp.MatchString(cleaned)
}
