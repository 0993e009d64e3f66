package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// AuthService implements registration, login, password recovery and
// profile self-service on top of the user repository and token service.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle ports.ResetThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle ports.ResetThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, logger: logger}
}

// SignUp registers a new user. Email and display name are normalized
// before any lookup or write; the password is stored only as a bcrypt
// hash. The unique index on email is the real uniqueness guarantee; the
// FindByEmail pre-check only gives a friendlier failure without a write
// attempt.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)
	displayName := domain.NormalizeDisplayName(input.DisplayName)

	if email == "" || displayName == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordConfirmation
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Bio:          domain.DefaultBio,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a session token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{User: user, Token: token}, nil
}

// ResetPassword replaces the user's password with a freshly generated one
// and returns the plaintext for out-of-band delivery. Requests are
// throttled per email.
func (s *AuthService) ResetPassword(ctx context.Context, email string) (string, error) {
	email = domain.NormalizeEmail(email)

	if s.throttle != nil {
		throttled, err := s.throttle.IsThrottled(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("reset throttle check failed")
		} else if throttled {
			return "", domain.ErrResetThrottled
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	plain, err := GenerateRecoveryPassword()
	if err != nil {
		return "", err
	}
	hash, err := HashPassword(plain)
	if err != nil {
		return "", err
	}

	if _, err := s.users.Update(ctx, user.ID, ports.UserPatch{PasswordHash: &hash}); err != nil {
		return "", err
	}

	if s.throttle != nil {
		if err := s.throttle.Mark(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("reset throttle mark failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return plain, nil
}

// GetProfile returns the subject's own user record.
func (s *AuthService) GetProfile(ctx context.Context, subjectID string) (*domain.User, error) {
	return s.users.FindByID(ctx, subjectID)
}

// EditProfile applies a self-service profile edit. A password change
// requires the old password to match and the new one to differ; the two
// failures stay distinct so the client can show specific messages.
func (s *AuthService) EditProfile(ctx context.Context, subjectID string, input ports.EditProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	patch := ports.UserPatch{
		Bio:       input.Bio,
		AvatarRef: input.AvatarRef,
	}
	if input.DisplayName != nil {
		normalized := domain.NormalizeDisplayName(*input.DisplayName)
		if normalized == "" {
			return nil, domain.ErrMissingFields
		}
		patch.DisplayName = &normalized
	}

	if input.OldPassword != "" || input.NewPassword != "" {
		if !CheckPassword(input.OldPassword, user.PasswordHash) {
			return nil, domain.ErrPasswordMismatch
		}
		if input.OldPassword == input.NewPassword {
			return nil, domain.ErrSamePassword
		}
		if len(input.NewPassword) < minPasswordLen {
			return nil, domain.ErrPasswordTooShort
		}
		hash, err := HashPassword(input.NewPassword)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.users.Update(ctx, subjectID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", subjectID).Msg("profile updated")
	return updated, nil
}
