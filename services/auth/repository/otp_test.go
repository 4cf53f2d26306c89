package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandspace/auraup/internal/pkg/constants"
	"github.com/brandspace/auraup/internal/pkg/database"
	"github.com/brandspace/auraup/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupOTPRepoTest(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	redisClient := &database.RedisClient{
		Client: client,
	}

	repo := &AuthRepo{
		cfg: &models.Config{
			OTP: models.OTPConfig{ExpirationMinutes: 10},
		},
		redisClient: redisClient,
	}

	return repo, mr
}

func TestCreateOTPChallenge(t *testing.T) {
	// Setup
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := models.OTPChallenge{
		MobileNumber: "5551234567",
		CountryCode:  "+1",
		Code:         "123456",
		Type:         models.OTPTypeSignup,
		FullName:     "Jane Doe",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	// Execute
	err := repo.CreateOTPChallenge(context.Background(), &challenge)

	// Assert
	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.Type, challenge.MobileNumber)
	val, err := mr.Get(key)
	assert.NoError(t, err)

	var stored models.OTPChallenge
	err = json.Unmarshal([]byte(val), &stored)
	assert.NoError(t, err)
	assert.Equal(t, challenge.MobileNumber, stored.MobileNumber)
	assert.Equal(t, challenge.Code, stored.Code)
	assert.Equal(t, challenge.FullName, stored.FullName)
	assert.Equal(t, challenge.PasswordHash, stored.PasswordHash)

	// TTL follows the configured expiration
	ttl := mr.TTL(key)
	assert.True(t, ttl > 0)
	assert.True(t, ttl <= 10*time.Minute)
}

func TestCreateOTPChallenge_RedisError(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)

	// Force Redis to fail by closing the connection
	mr.Close()

	challenge := models.OTPChallenge{
		MobileNumber: "5551234567",
		CountryCode:  "+1",
		Code:         "123456",
		Type:         models.OTPTypeSignin,
	}

	err := repo.CreateOTPChallenge(context.Background(), &challenge)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store OTP challenge in Redis")
}

func TestGetOTPChallenge(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := models.OTPChallenge{
		MobileNumber: "5551234567",
		CountryCode:  "+1",
		Code:         "654321",
		Type:         models.OTPTypeSignin,
	}
	require.NoError(t, repo.CreateOTPChallenge(context.Background(), &challenge))

	// Execute
	got, err := repo.GetOTPChallenge(context.Background(), models.OTPTypeSignin, "5551234567")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "654321", got.Code)
	assert.Equal(t, models.OTPTypeSignin, got.Type)
}

func TestGetOTPChallenge_NotFound(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	got, err := repo.GetOTPChallenge(context.Background(), models.OTPTypeSignin, "5551234567")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOTPChallenge_TypeBinding(t *testing.T) {
	// A code issued for signin must not be readable under any other type
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := models.OTPChallenge{
		MobileNumber: "5551234567",
		CountryCode:  "+1",
		Code:         "654321",
		Type:         models.OTPTypeSignin,
	}
	require.NoError(t, repo.CreateOTPChallenge(context.Background(), &challenge))

	got, err := repo.GetOTPChallenge(context.Background(), models.OTPTypePasswordReset, "5551234567")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOTPChallenge_Expired(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := models.OTPChallenge{
		MobileNumber: "5551234567",
		CountryCode:  "+1",
		Code:         "654321",
		Type:         models.OTPTypeSignup,
	}
	require.NoError(t, repo.CreateOTPChallenge(context.Background(), &challenge))

	// Advance past the TTL
	mr.FastForward(11 * time.Minute)

	got, err := repo.GetOTPChallenge(context.Background(), models.OTPTypeSignup, "5551234567")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOTPChallenge(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	challenge := models.OTPChallenge{
		MobileNumber: "5551234567",
		CountryCode:  "+1",
		Code:         "654321",
		Type:         models.OTPTypeSignup,
	}
	require.NoError(t, repo.CreateOTPChallenge(context.Background(), &challenge))

	err := repo.DeleteOTPChallenge(context.Background(), models.OTPTypeSignup, "5551234567")
	assert.NoError(t, err)

	// The code is gone and cannot be consumed twice
	_, err = repo.GetOTPChallenge(context.Background(), models.OTPTypeSignup, "5551234567")
	assert.ErrorIs(t, err, ErrNotFound)
}
