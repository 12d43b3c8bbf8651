package user

import "context"

// Repository describes the session endpoints of the backend.
type Repository interface {
	Me(ctx context.Context) (User, error)
	Login(ctx context.Context, creds Credentials) (User, error)
	RequestOTP(ctx context.Context, email string) (OTPChallenge, error)
	LoginWithOTP(ctx context.Context, login OTPLogin) (User, error)
	Logout(ctx context.Context) error
	Access(ctx context.Context, tournamentSlug string) (Access, error)
}
