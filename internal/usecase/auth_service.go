package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/osu-ultimate/tournament-console/internal/domain/user"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
)

// AuthService manages the backend session shared by the console.
type AuthService struct {
	repo    user.Repository
	queries *cache.QueryCache
	logger  *logging.Logger
}

func NewAuthService(repo user.Repository, queries *cache.QueryCache, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		repo:    repo,
		queries: queries,
		logger:  logger,
	}
}

// Me returns the signed-in user. A 401 means nobody is signed in, which
// retrying cannot change.
func (s *AuthService) Me(ctx context.Context) (user.User, error) {
	return cache.Fetch(ctx, s.queries, keyMe, func(ctx context.Context) (user.User, error) {
		u, err := s.repo.Me(ctx)
		return u, backendError("get current user", err)
	}, cache.WithoutRetry())
}

func (s *AuthService) LoginWithPassword(ctx context.Context, creds user.Credentials) (user.User, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := creds.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	u, err := s.repo.Login(ctx, creds)
	if err != nil {
		return user.User{}, backendError("login", err)
	}
	s.startSession(ctx, u)
	return u, nil
}

// RequestOTP mails a one-time password to email.
func (s *AuthService) RequestOTP(ctx context.Context, email string) (user.OTPChallenge, error) {
	email = strings.TrimSpace(email)
	if err := user.ValidateEmail(email); err != nil {
		return user.OTPChallenge{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	challenge, err := s.repo.RequestOTP(ctx, email)
	if err != nil {
		return user.OTPChallenge{}, backendError("request otp", err)
	}
	return challenge, nil
}

// LoginWithOTP signs in with a one-time password. Malformed codes are
// rejected without contacting the backend.
func (s *AuthService) LoginWithOTP(ctx context.Context, login user.OTPLogin) (user.User, error) {
	login.Email = strings.TrimSpace(login.Email)
	login.OTP = strings.TrimSpace(login.OTP)
	if err := login.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	u, err := s.repo.LoginWithOTP(ctx, login)
	if err != nil {
		return user.User{}, backendError("login with otp", err)
	}
	s.startSession(ctx, u)
	return u, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.repo.Logout(ctx); err != nil {
		return backendError("logout", err)
	}
	s.queries.Remove(keyMe)
	s.queries.Remove(keyAccess)
	s.logger.InfoContext(ctx, "session closed")
	return nil
}

// Access returns what the session may do in a tournament.
func (s *AuthService) Access(ctx context.Context, tournamentSlug string) (user.Access, error) {
	tournamentSlug = strings.TrimSpace(tournamentSlug)
	if tournamentSlug == "" {
		return user.Access{}, fmt.Errorf("%w: tournament slug is required", ErrInvalidInput)
	}

	return cache.Fetch(ctx, s.queries, accessKey(tournamentSlug), func(ctx context.Context) (user.Access, error) {
		a, err := s.repo.Access(ctx, tournamentSlug)
		return a, backendError("get access", err)
	}, cache.WithoutRetry())
}

func (s *AuthService) startSession(ctx context.Context, u user.User) {
	s.queries.Remove(keyAccess)
	s.queries.Set(keyMe, u)
	s.logger.InfoContext(ctx, "session started", "user_id", u.ID)
}
