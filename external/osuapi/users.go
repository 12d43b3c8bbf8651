package osuapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/osu-ultimate/tournament-console/internal/domain/user"
)

// UserRepository implements user.Repository. The session lives in the
// client's cookie jar.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Me(ctx context.Context) (user.User, error) {
	var row userDTO
	if err := r.client.Do(ctx, http.MethodGet, "/api/user/me", nil, &row); err != nil {
		return user.User{}, fmt.Errorf("get session user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) Login(ctx context.Context, creds user.Credentials) (user.User, error) {
	if err := r.client.EnsureCSRF(ctx); err != nil {
		return user.User{}, fmt.Errorf("prime csrf: %w", err)
	}

	body := map[string]string{"username": creds.Username, "password": creds.Password}

	var row userDTO
	if err := r.client.Do(ctx, http.MethodPost, "/api/user/login", body, &row); err != nil {
		return user.User{}, fmt.Errorf("login: %w", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) RequestOTP(ctx context.Context, email string) (user.OTPChallenge, error) {
	if err := r.client.EnsureCSRF(ctx); err != nil {
		return user.OTPChallenge{}, fmt.Errorf("prime csrf: %w", err)
	}

	var row struct {
		OTPTimestamp flexInt `json:"otp_ts"`
	}
	if err := r.client.Do(ctx, http.MethodPost, "/api/user/login/otp/request", map[string]string{"email": email}, &row); err != nil {
		return user.OTPChallenge{}, fmt.Errorf("request otp: %w", err)
	}
	return user.OTPChallenge{Email: email, Timestamp: int64(row.OTPTimestamp)}, nil
}

func (r *UserRepository) LoginWithOTP(ctx context.Context, login user.OTPLogin) (user.User, error) {
	body := map[string]any{
		"email":  login.Email,
		"otp":    login.OTP,
		"otp_ts": login.Timestamp,
	}

	var row userDTO
	if err := r.client.Do(ctx, http.MethodPost, "/api/user/login/otp", body, &row); err != nil {
		return user.User{}, fmt.Errorf("login with otp: %w", err)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) Logout(ctx context.Context) error {
	if err := r.client.Do(ctx, http.MethodPost, "/api/user/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (r *UserRepository) Access(ctx context.Context, tournamentSlug string) (user.Access, error) {
	var row accessDTO
	if err := r.client.Do(ctx, http.MethodGet, "/api/tournaments/"+url.PathEscape(tournamentSlug)+"/me/access", nil, &row); err != nil {
		return user.Access{}, fmt.Errorf("get access tournament=%s: %w", tournamentSlug, err)
	}
	return row.toDomain(), nil
}
