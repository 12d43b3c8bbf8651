package osuapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClientDo_NonSuccessMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{name: "message field", contentType: "application/json", body: `{"message":"Tournament not found"}`, want: "Tournament not found"},
		{name: "json without message", contentType: "application/json", body: `{"detail":"nope"}`, want: "API request failed"},
		{name: "non json body", contentType: "text/html", body: `<h1>Server Error</h1>`, want: "Unknown error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tc.body))
			})

			err := client.Do(context.Background(), http.MethodGet, "/api/tournaments/x", nil, nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("unexpected message: got=%q want=%q", err.Error(), tc.want)
			}

			var reqErr *RequestError
			if !errors.As(err, &reqErr) || reqErr.StatusCode() != http.StatusNotFound {
				t.Fatalf("expected RequestError with 404, got %#v", err)
			}
			if !resilience.IsClientError(err) {
				t.Fatalf("expected 404 to classify as client error")
			}
		})
	}
}

func TestClientDo_SendsJSONAndCSRF(t *testing.T) {
	t.Parallel()

	var gotBody, gotCSRF, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/csrf/":
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok-123", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case "/api/matches/7/submit-score":
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			gotCSRF = r.Header.Get("X-CSRFToken")
			gotContentType = r.Header.Get("Content-Type")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"status":"COM","score_team_1":15,"score_team_2":13}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	if err := client.EnsureCSRF(context.Background()); err != nil {
		t.Fatalf("ensure csrf: %v", err)
	}

	var out matchDTO
	err := client.Do(context.Background(), http.MethodPost, "/api/matches/7/submit-score", scoreBody{ScoreTeam1: 15, ScoreTeam2: 13}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCSRF != "tok-123" {
		t.Fatalf("expected csrf header from cookie, got %q", gotCSRF)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if gotBody != `{"score_team_1":15,"score_team_2":13}` {
		t.Fatalf("unexpected body %s", gotBody)
	}
	if out.ID != 7 || out.ScoreTeam1 != 15 {
		t.Fatalf("unexpected decoded payload %+v", out)
	}
}

func TestClientDo_NoCSRFHeaderWithoutCookie(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-Csrftoken"]; ok {
			t.Errorf("csrf header must not be sent without a cookie")
		}
		if r.ContentLength > 0 {
			t.Errorf("GET must not carry a body")
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Do(context.Background(), http.MethodGet, "/api/teams", map[string]string{"x": "y"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientDo_NonJSONSuccess(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	var out Success
	if err := client.Do(context.Background(), http.MethodDelete, "/api/matches/3", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success marker")
	}
}

func TestClientDo_TransportFailureIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client, err := NewClient(ClientConfig{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = client.Do(context.Background(), http.MethodGet, "/api/teams", nil, nil)
	if !errors.Is(err, errBackendTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if resilience.IsClientError(err) {
		t.Fatalf("transport failure must be retryable")
	}
}

func TestClientDo_CircuitBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"down"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := client.Do(context.Background(), http.MethodGet, "/api/teams", nil, nil); err == nil {
			t.Fatalf("expected failure")
		}
	}
	err = client.Do(context.Background(), http.MethodGet, "/api/teams", nil, nil)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 backend calls, got %d", got)
	}
}

func TestClientUploadMultipart(t *testing.T) {
	t.Parallel()

	var gotField, gotName, gotContent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tournaments/4/update-schedule" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("schedule_file")
		if err != nil {
			t.Errorf("read form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		raw, _ := io.ReadAll(file)
		gotField, gotName, gotContent = "schedule_file", header.Filename, string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Schedule updated"}`))
	})

	repo := NewTournamentRepository(client)
	csv := "match,time,field\n1,09:00,A\n"
	if err := repo.UploadSchedule(context.Background(), 4, "schedule.csv", strings.NewReader(csv)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotField != "schedule_file" || gotName != "schedule.csv" || gotContent != csv {
		t.Fatalf("unexpected upload field=%q name=%q content=%q", gotField, gotName, gotContent)
	}
}

func TestNewClient_RejectsBadScheme(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{BaseURL: "ftp://backend"}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}
