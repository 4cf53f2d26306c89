package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	digitsOnly      = regexp.MustCompile(`^[0-9]{6,15}$`)
	countryCodeOnly = regexp.MustCompile(`^[0-9]{1,3}$`)
)

// NormalizeMobileNumber strips formatting characters from a mobile number and
// validates that what remains is a plausible subscriber number. The country
// code is kept separate and returned in canonical +NN form.
func NormalizeMobileNumber(mobileNumber, countryCode string) (string, string, error) {
	stripped := strings.ReplaceAll(mobileNumber, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if !digitsOnly.MatchString(stripped) {
		return "", "", fmt.Errorf("invalid mobile number format")
	}

	cc := strings.TrimSpace(countryCode)
	cc = strings.TrimPrefix(cc, "+")
	if cc == "" || !countryCodeOnly.MatchString(cc) {
		return "", "", fmt.Errorf("invalid country code")
	}

	return stripped, "+" + cc, nil
}
