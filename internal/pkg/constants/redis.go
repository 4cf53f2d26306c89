package constants

// Redis key patterns
const (
	// KeyOTPChallenge stores an issued OTP challenge, keyed by challenge type
	// and normalized mobile number so a code can only be found under the type
	// it was issued for
	KeyOTPChallenge = "otp:%s:%s"
)
