package coordinator

import (
	"context"
	"errors"
	"time"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/repository"
)

// OAuthTokenVerifier validates a hosted provider access token
type OAuthTokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*models.OAuthUser, error)
}

// Coordinator unifies the custom session provider and the OAuth provider into
// a single resolved identity. Both providers are checked concurrently, each
// bounded by its own timeout so a hung provider cannot wedge resolution, and
// the result settles only once both checks have. When both providers yield a
// user the custom identity wins; fields are never merged across the two.
type Coordinator struct {
	authRepo auth.AuthRepo
	verifier OAuthTokenVerifier
	timeout  time.Duration
}

// NewCoordinator creates a new dual-provider coordinator
func NewCoordinator(authRepo auth.AuthRepo, verifier OAuthTokenVerifier, cfg *models.Config) *Coordinator {
	timeout := time.Duration(cfg.OAuth.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Coordinator{
		authRepo: authRepo,
		verifier: verifier,
		timeout:  timeout,
	}
}

// Resolve checks both providers for the presented tokens and returns the
// resolved identity. A provider failure counts as that provider holding no
// user; authentication never fails open.
func (c *Coordinator) Resolve(ctx context.Context, customToken, oauthToken string) models.Identity {
	var (
		customUser *models.User
		oauthUser  *models.OAuthUser
	)

	customDone := make(chan struct{})
	oauthDone := make(chan struct{})

	go func() {
		defer close(customDone)
		if customToken == "" {
			return
		}
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		user, err := c.resolveCustom(checkCtx, customToken)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				logger.Warn("Custom session check failed", logger.Err(err))
			}
			return
		}
		customUser = user
	}()

	go func() {
		defer close(oauthDone)
		if oauthToken == "" {
			return
		}
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		user, err := c.verifier.Verify(checkCtx, oauthToken)
		if err != nil {
			logger.Debug("OAuth token check failed", logger.Err(err))
			return
		}
		oauthUser = user
	}()

	// Settled only when both providers have answered
	<-customDone
	<-oauthDone

	if customUser != nil {
		return models.Identity{
			Source:       models.SourceCustom,
			User:         customUser,
			SessionToken: customToken,
		}
	}
	if oauthUser != nil {
		return models.Identity{
			Source:    models.SourceOAuth,
			OAuthUser: oauthUser,
		}
	}

	return models.Identity{Source: models.SourceNone}
}

// resolveCustom validates the opaque session token against the session store
// and loads the owning user. The store is the sole authority on expiry.
func (c *Coordinator) resolveCustom(ctx context.Context, token string) (*models.User, error) {
	session, err := c.authRepo.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := c.authRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, repository.ErrNotFound
	}

	return user, nil
}
