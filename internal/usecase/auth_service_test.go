package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/osu-ultimate/tournament-console/internal/domain/user"
	usermock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/user"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
)

func TestAuthService_LoginWithOTP_RejectsMalformedCodeWithoutRequest(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewAuthService(repo, newTestQueries(t), logging.NewNop())

	for _, code := range []string{"12345", "1234567", "12a456", ""} {
		_, err := service.LoginWithOTP(context.Background(), user.OTPLogin{Email: "asha@example.com", OTP: code, Timestamp: 1700000000})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("otp %q: expected ErrInvalidInput, got %v", code, err)
		}
	}
	repo.AssertNotCalled(t, "LoginWithOTP", mock.Anything, mock.Anything)
}

func TestAuthService_Login_SeedsSessionQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	queries := newTestQueries(t)
	service := NewAuthService(repo, queries, logging.NewNop())

	repo.
		On("Access", mock.Anything, "osu-open").
		Return(user.Access{}, nil).
		Once()
	repo.
		On("Login", sameContext(ctx), user.Credentials{Username: "asha", Password: "secret"}).
		Return(user.User{ID: 7, Username: "asha"}, nil).
		Once()
	repo.
		On("Access", mock.Anything, "osu-open").
		Return(user.Access{AdminTeamIDs: []int64{10}}, nil).
		Once()

	if _, err := service.Access(ctx, "osu-open"); err != nil {
		t.Fatalf("access before login: %v", err)
	}
	if _, err := service.LoginWithPassword(ctx, user.Credentials{Username: " asha ", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	me, err := service.Me(ctx)
	if err != nil {
		t.Fatalf("me after login: %v", err)
	}
	if me.ID != 7 {
		t.Fatalf("unexpected user id: got=%d want=7", me.ID)
	}

	access, err := service.Access(ctx, "osu-open")
	if err != nil {
		t.Fatalf("access after login: %v", err)
	}
	if !access.IsTeamAdminOf(10) {
		t.Fatalf("expected refreshed access, got %+v", access)
	}
}

func TestAuthService_Me_Unauthorized(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewAuthService(repo, newTestQueries(t), logging.NewNop())

	repo.
		On("Me", mock.Anything).
		Return(user.User{}, &statusError{status: http.StatusUnauthorized, message: "Authentication credentials were not provided."}).
		Once()

	_, err := service.Me(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	queries := newTestQueries(t)
	service := NewAuthService(repo, queries, logging.NewNop())

	queries.Set(keyMe, user.User{ID: 7})
	repo.On("Logout", sameContext(ctx)).Return(nil).Once()

	if err := service.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := queries.Peek(keyMe); ok {
		t.Fatalf("expected session user to be removed")
	}
}
