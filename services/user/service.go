package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"physiocare/database"
	"physiocare/models"
	"physiocare/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

func (s *DefaultUserService) Register(ctx context.Context, email, password string, role models.Role) (*AuthResult, error) {
	logger := utils.GetLogger().Sugar()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if !role.Known() {
		role = models.RolePatient
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !database.IsNotFound(err) {
		return nil, fmt.Errorf("user: failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user: failed to hash password: %w", err)
	}

	account := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	id, err := s.Repo.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("user: failed to create account: %w", err)
	}
	logger.Infow("Registered user", "userID", id, "role", role)

	return s.issueSession(ctx, id, role)
}

func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("user: failed to load account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(ctx, account.ID, account.Role)
}

// issueSession mints a JWT and records its hash so the session can be
// revoked server-side without waiting for expiry.
func (s *DefaultUserService) issueSession(ctx context.Context, userID string, role models.Role) (*AuthResult, error) {
	token, err := utils.GenerateToken(userID, string(role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("user: failed to sign token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, userID, hash); err != nil {
		return nil, fmt.Errorf("user: failed to store session: %w", err)
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+userID, hash, tokenTTL).Err(); err != nil {
			utils.GetLogger().Sugar().Warnw("Failed to cache session hash", "userID", userID, "error", err)
		}
	}
	return &AuthResult{UserID: userID, Role: role, Token: token}, nil
}

// SignOut clears the stored token hash, invalidating any outstanding token.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil {
		if database.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user: failed to revoke session: %w", err)
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Sugar().Warnw("Failed to drop cached session hash", "userID", userID, "error", err)
		}
	}
	return nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user: failed to load %s: %w", id, err)
	}
	return account, nil
}

func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.Repo.GetProfile(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user: failed to load profile %s: %w", userID, err)
	}
	return profile, nil
}

func (s *DefaultUserService) UpsertProfile(ctx context.Context, profile models.UserProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("user: profile requires a user id")
	}
	if err := s.Repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("user: failed to save profile %s: %w", profile.UserID, err)
	}
	return nil
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	if err := s.Repo.SetFCMToken(ctx, userID, token); err != nil {
		if database.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user: failed to save device token %s: %w", userID, err)
	}
	return nil
}
