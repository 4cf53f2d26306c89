package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/brandspace/auraup/internal/pkg/constants"
	"github.com/brandspace/auraup/internal/pkg/models"
)

// CreateOTPChallenge stores an OTP challenge in Redis with a TTL. The key is
// derived from the challenge type and the mobile number, so a code can never
// be looked up under a different type than the one it was issued for.
func (r *AuthRepo) CreateOTPChallenge(ctx context.Context, challenge *models.OTPChallenge) error {
	challenge.IssuedAt = time.Now()

	challengeJSON, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP challenge: %w", err)
	}

	ttl := time.Duration(r.cfg.OTP.ExpirationMinutes) * time.Minute
	key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.Type, challenge.MobileNumber)

	if err := r.redisClient.Set(ctx, key, challengeJSON, ttl); err != nil {
		return fmt.Errorf("failed to store OTP challenge in Redis: %w", err)
	}

	return nil
}

// GetOTPChallenge retrieves an OTP challenge by type and mobile number.
// Expired challenges are gone from Redis and return ErrNotFound.
func (r *AuthRepo) GetOTPChallenge(ctx context.Context, otpType, mobileNumber string) (*models.OTPChallenge, error) {
	key := fmt.Sprintf(constants.KeyOTPChallenge, otpType, mobileNumber)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get OTP challenge from Redis: %w", err)
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(val), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP challenge: %w", err)
	}

	return &challenge, nil
}

// DeleteOTPChallenge consumes a challenge so the code is single use
func (r *AuthRepo) DeleteOTPChallenge(ctx context.Context, otpType, mobileNumber string) error {
	key := fmt.Sprintf(constants.KeyOTPChallenge, otpType, mobileNumber)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP challenge: %w", err)
	}

	return nil
}
