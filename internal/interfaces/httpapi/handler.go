package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

// Services groups the use cases the API exposes.
type Services struct {
	Tournaments *usecase.TournamentService
	Schedule    *usecase.ScheduleService
	Standings   *usecase.StandingsService
	Matches     *usecase.MatchService
	Fields      *usecase.FieldService
	Stages      *usecase.StageService
	Teams       *usecase.TeamService
	Players     *usecase.PlayerService
	Auth        *usecase.AuthService
}

type Handler struct {
	tournaments *usecase.TournamentService
	schedule    *usecase.ScheduleService
	standings   *usecase.StandingsService
	matches     *usecase.MatchService
	fields      *usecase.FieldService
	stages      *usecase.StageService
	teams       *usecase.TeamService
	players     *usecase.PlayerService
	auth        *usecase.AuthService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournaments: services.Tournaments,
		schedule:    services.Schedule,
		standings:   services.Standings,
		matches:     services.Matches,
		fields:      services.Fields,
		stages:      services.Stages,
		teams:       services.Teams,
		players:     services.Players,
		auth:        services.Auth,
		logger:      logger,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %w", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a JSON body into dst and validates it.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

// fail logs err at a level matching its class and writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	status := mapError(err).HTTPStatus
	markSpanError(ctx, status, err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}

func queryString(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(r *http.Request, name string) (*int, error) {
	raw := queryString(r, name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, *raw)
	}
	return &v, nil
}

func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := queryString(r, name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, *raw)
	}
	return &v, nil
}
