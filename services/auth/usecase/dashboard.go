package usecase

import (
	"context"
	"sync"

	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/models"
)

// Dashboard fans out the account lookups concurrently and merges the results
// into one payload. Lookup failures degrade their own slice of the payload
// instead of failing the whole response.
func (u *AuthUC) Dashboard(ctx context.Context, identity models.Identity) (*models.DashboardResponse, error) {
	resp := &models.DashboardResponse{Roles: []string{}}

	if !identity.IsAuthenticated() {
		return resp, nil
	}

	if identity.Source == models.SourceOAuth {
		// OAuth identities have no rows in our tables
		resp.OAuthUser = identity.OAuthUser
		return resp, nil
	}

	userID := identity.User.ID

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(3)

	go func() {
		defer wg.Done()
		user, err := u.authRepo.GetUserByID(ctx, userID)
		if err != nil {
			logger.Warn("Dashboard user lookup failed", logger.Err(err))
			return
		}
		mu.Lock()
		resp.User = user
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		roles, err := u.authRepo.ListRoles(ctx, userID)
		if err != nil {
			logger.Warn("Dashboard role lookup failed", logger.Err(err))
			return
		}
		mu.Lock()
		resp.Roles = roles
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		count, err := u.authRepo.CountActiveSessions(ctx, userID)
		if err != nil {
			logger.Warn("Dashboard session count failed", logger.Err(err))
			return
		}
		mu.Lock()
		resp.ActiveSessions = count
		mu.Unlock()
	}()

	wg.Wait()

	return resp, nil
}
