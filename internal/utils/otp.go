package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const otpDigits = 6

var otpFormat = regexp.MustCompile(`^[0-9]{6}$`)

// GenerateOTPCode generates a random numeric one-time code of six digits
func GenerateOTPCode() (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(otpDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// ValidOTPCode reports whether the given code is exactly six numeric digits
func ValidOTPCode(code string) bool {
	return otpFormat.MatchString(code)
}
