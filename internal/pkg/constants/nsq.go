package constants

// NSQ topics
const (
	// TopicOTPNotifications carries issued OTP codes to the SMS delivery worker
	TopicOTPNotifications = "otp.notifications"
)
