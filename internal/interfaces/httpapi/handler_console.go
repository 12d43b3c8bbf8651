package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

const (
	maxScheduleUploadBytes = 4 << 20
	scheduleFormField      = "schedule_file"
)

func (h *Handler) StartTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartTournament")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tournaments.Start(ctx, tournamentID); err != nil {
		h.fail(ctx, w, "start tournament failed", err, "tournament_id", tournamentID)
		return
	}

	h.logger.InfoContext(ctx, "tournament started", "tournament_id", tournamentID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournament")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tournaments.Delete(ctx, tournamentID); err != nil {
		h.fail(ctx, w, "delete tournament failed", err, "tournament_id", tournamentID)
		return
	}

	h.logger.InfoContext(ctx, "tournament deleted", "tournament_id", tournamentID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateSeeding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeeding")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req seedingRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamIDs := req.TeamIDs
	if len(teamIDs) == 0 {
		if teamIDs, err = usecase.ParseSeedingList(req.Text); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	t, err := h.tournaments.UpdateSeeding(ctx, tournamentID, tournament.SeedingFromList(teamIDs))
	if err != nil {
		h.fail(ctx, w, "update seeding failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(t))
}

func (h *Handler) GenerateFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateFixtures")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.tournaments.GenerateFixtures(ctx, tournamentID); err != nil {
		h.fail(ctx, w, "generate fixtures failed", err, "tournament_id", tournamentID)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// UploadSchedule forwards a CSV export sent as multipart field schedule_file.
func (h *Handler) UploadSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadSchedule")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxScheduleUploadBytes)
	if err := r.ParseMultipartForm(maxScheduleUploadBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	file, header, err := r.FormFile(scheduleFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			err = fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, scheduleFormField)
		} else {
			err = fmt.Errorf("%w: read %s: %v", usecase.ErrInvalidInput, scheduleFormField, err)
		}
		writeError(ctx, w, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read %s: %v", usecase.ErrInvalidInput, scheduleFormField, err))
		return
	}

	if err := h.tournaments.UploadSchedule(ctx, tournamentID, header.Filename, content); err != nil {
		h.fail(ctx, w, "upload schedule failed", err, "tournament_id", tournamentID, "filename", header.Filename)
		return
	}

	h.logger.InfoContext(ctx, "schedule uploaded", "tournament_id", tournamentID, "bytes", len(content))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateField(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateField")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req fieldRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	field, err := h.fields.Create(ctx, tournamentID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create field failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fieldToDTO(field))
}

func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateField")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	fieldID, err := pathID(r, "fieldID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req fieldRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	field, err := h.fields.Update(ctx, tournamentID, fieldID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update field failed", err, "tournament_id", tournamentID, "field_id", fieldID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fieldToDTO(field))
}

func (h *Handler) CreatePool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePool")
	defer span.End()

	input, err := h.decodePoolInput(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pool, err := h.stages.CreatePool(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create pool failed", err, "tournament_id", input.TournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, poolToDTO(pool))
}

func (h *Handler) CreatePositionPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePositionPool")
	defer span.End()

	input, err := h.decodePoolInput(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pool, err := h.stages.CreatePositionPool(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create position pool failed", err, "tournament_id", input.TournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, poolToDTO(pool))
}

func (h *Handler) CreateCrossPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCrossPool")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cp, err := h.stages.CreateCrossPool(ctx, tournamentID)
	if err != nil {
		h.fail(ctx, w, "create cross pool failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, stageRefDTO{ID: cp.ID, TournamentID: cp.TournamentID})
}

func (h *Handler) CreateBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBracket")
	defer span.End()

	var req bracketRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	b, err := h.stages.CreateBracket(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create bracket failed", err, "tournament_id", req.TournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, stageRefDTO{
		ID:             b.ID,
		TournamentID:   b.TournamentID,
		Name:           b.Name,
		SequenceNumber: b.SequenceNumber,
	})
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	stage, err := match.ParseStageKind(req.Stage)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	m, err := h.matches.Create(ctx, match.CreateInput{
		TournamentID:   req.TournamentID,
		SequenceNumber: req.SequenceNumber,
		Time:           req.Time,
		Seed1:          req.Seed1,
		Seed2:          req.Seed2,
		FieldID:        req.FieldID,
		Stage:          stage,
		StageID:        req.StageID,
	})
	if err != nil {
		h.fail(ctx, w, "create match failed", err, "tournament_id", req.TournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(m, time.Now()))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matches.Update(ctx, matchID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m, time.Now()))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matches.Delete(ctx, matchID); err != nil {
		h.fail(ctx, w, "delete match failed", err, "match_id", matchID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StaffSubmitScore records the final score on behalf of the officials.
func (h *Handler) StaffSubmitScore(w http.ResponseWriter, r *http.Request) {
	h.submitScore(w, r, "httpapi.Handler.StaffSubmitScore", h.matches.StaffSubmitScore)
}

// SubmitScore records a team's suggested score.
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	h.submitScore(w, r, "httpapi.Handler.SubmitScore", h.matches.SubmitScore)
}

type scoreSubmitter func(ctx context.Context, id int64, input match.ScoreInput) (match.Match, error)

func (h *Handler) submitScore(w http.ResponseWriter, r *http.Request, spanName string, submit scoreSubmitter) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req scoreRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := submit(ctx, matchID, req.toInput())
	if err != nil {
		h.fail(ctx, w, "submit score failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m, time.Now()))
}

func (h *Handler) SubmitSpiritScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitSpiritScore")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req spiritScoreRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matches.SubmitSpiritScore(ctx, matchID, match.SpiritInput{
		Opponent: req.Opponent.toSheet(),
		Self:     req.Self.toSheet(),
	})
	if err != nil {
		h.fail(ctx, w, "submit spirit score failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m, time.Now()))
}

func (h *Handler) decodePoolInput(ctx context.Context, r *http.Request) (tournament.PoolInput, error) {
	var req poolRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		return tournament.PoolInput{}, err
	}

	seeding := req.Seeding
	if len(seeding) == 0 {
		ids, err := usecase.ParseSeedingList(req.SeedingText)
		if err != nil {
			return tournament.PoolInput{}, err
		}
		seeding = ids
	}

	return tournament.PoolInput{
		TournamentID:   req.TournamentID,
		Name:           req.Name,
		SequenceNumber: req.SequenceNumber,
		Seeding:        seeding,
	}, nil
}
