package gateway

import (
	"context"
	"fmt"

	"github.com/brandspace/auraup/internal/pkg/constants"
	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	nsqpkg "github.com/brandspace/auraup/internal/pkg/nsq"
)

// SMSDeliverer publishes OTP notifications to NSQ for the SMS worker to send.
// The code travels out-of-band; it never appears in an HTTP response.
type SMSDeliverer struct {
	producer *nsqpkg.Producer
}

// NewSMSDeliverer creates a new NSQ-backed OTP deliverer
func NewSMSDeliverer(producer *nsqpkg.Producer) *SMSDeliverer {
	return &SMSDeliverer{producer: producer}
}

// Deliver publishes the notification to the OTP topic
func (d *SMSDeliverer) Deliver(ctx context.Context, notification *models.OTPNotification) error {
	if err := d.producer.Publish(constants.TopicOTPNotifications, notification); err != nil {
		return fmt.Errorf("failed to publish OTP notification: %w", err)
	}

	logger.Info("OTP notification dispatched",
		logger.String("mobile_number", notification.MobileNumber),
		logger.String("otp_type", notification.Type))

	return nil
}

// Inline reports that codes go out-of-band
func (d *SMSDeliverer) Inline() bool {
	return false
}
