package gateway

import (
	"context"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
)

// InlineDeliverer short-circuits the side channel and hands the code back to
// the HTTP caller. Development use only; it defeats the possession proof the
// OTP exists for.
type InlineDeliverer struct{}

// NewInlineDeliverer creates the development-mode deliverer
func NewInlineDeliverer() *InlineDeliverer {
	return &InlineDeliverer{}
}

// Deliver logs the code; the usecase copies it into the response
func (d *InlineDeliverer) Deliver(ctx context.Context, notification *models.OTPNotification) error {
	logger.Warn("Delivering OTP inline, do not use outside development",
		logger.String("mobile_number", notification.MobileNumber),
		logger.String("otp_type", notification.Type))
	return nil
}

// Inline reports that codes are returned to the caller
func (d *InlineDeliverer) Inline() bool {
	return true
}
