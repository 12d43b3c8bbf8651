package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	playermock "github.com/osu-ultimate/tournament-console/internal/mocks/domain/player"
)

func TestPlayerService_List_CachesPerFilterSet(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, newTestQueries(t))

	female := player.GenderFemale
	repo.
		On("List", mock.Anything, player.Filters{Gender: &female, Limit: ptr(20)}).
		Return(player.Page{Players: []player.Summary{{ID: 1, Name: "Asha"}}, Total: 1}, nil).
		Once()
	repo.
		On("List", mock.Anything, player.Filters{Limit: ptr(20)}).
		Return(player.Page{Total: 40}, nil).
		Once()

	for i := 0; i < 2; i++ {
		page, err := service.List(context.Background(), player.Filters{Gender: &female, Limit: ptr(20)})
		if err != nil {
			t.Fatalf("list players: %v", err)
		}
		if page.Total != 1 {
			t.Fatalf("unexpected total: got=%d want=1", page.Total)
		}
	}

	page, err := service.List(context.Background(), player.Filters{Search: ptr("  "), Limit: ptr(20)})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if page.Total != 40 {
		t.Fatalf("unexpected total: got=%d want=40", page.Total)
	}
}

func TestPlayerService_List_RejectsInvalidFilters(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewRepository(t), newTestQueries(t))

	tests := []player.Filters{
		{Gender: ptr(player.Gender("X"))},
		{Role: ptr(player.Role("Z"))},
		{Order: ptr("up")},
		{Limit: ptr(0)},
		{Limit: ptr(101)},
	}
	for _, filters := range tests {
		if _, err := service.List(context.Background(), filters); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", filters, err)
		}
	}
}

func TestPlayerService_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, newTestQueries(t))

	repo.
		On("GetBySlug", mock.Anything, "nobody").
		Return(player.Player{}, &statusError{status: http.StatusNotFound, message: "Player not found"}).
		Once()

	_, err := service.Get(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
