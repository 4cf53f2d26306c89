package usecase

import (
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth"
)

// AuthUC implements the authentication usecases
type AuthUC struct {
	authRepo  auth.AuthRepo
	deliverer auth.OTPDeliverer
	cfg       *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	deliverer auth.OTPDeliverer,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:  authRepo,
		deliverer: deliverer,
		cfg:       cfg,
	}
}
