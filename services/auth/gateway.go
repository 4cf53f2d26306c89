package auth

import (
	"context"

	"github.com/brandspace/auraup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/brandspace/auraup/services/auth OTPDeliverer

// OTPDeliverer delivers an issued one-time code to the user through a side
// channel. Implementations decide the channel; callers only ever submit codes
// back, never receive them, unless the deliverer is the inline development one.
type OTPDeliverer interface {
	// Deliver dispatches the code. Inline reports whether the code is handed
	// back to the HTTP caller instead of going out-of-band.
	Deliver(ctx context.Context, notification *models.OTPNotification) error
	Inline() bool
}
