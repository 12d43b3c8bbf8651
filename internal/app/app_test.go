package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osu-ultimate/tournament-console/internal/config"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	t.Setenv("APP_ENV", config.EnvDev)
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = ""

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNew_RejectsBadBackendURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.OSUAPIBaseURL = "ftp://backend"

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNew_ServesHealthz(t *testing.T) {
	cfg := testConfig(t)

	application, err := New(cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, application.warmer)

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_ConsoleRoutesNeedToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConsoleToken = "secret"

	application, err := New(cfg, logging.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/console/tournaments/1/start", nil)
	application.Server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(backend.Close)

	cfg := testConfig(t)
	cfg.OSUAPIBaseURL = backend.URL
	cfg.QueryMaxRetries = 0
	cfg.WarmerEnabled = true
	cfg.WarmerInterval = time.Hour

	application, err := New(cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, application.warmer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx, time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
