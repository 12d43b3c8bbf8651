package httpapi

import (
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/domain/user"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r loginRequest) toCredentials() user.Credentials {
	return user.Credentials{Username: r.Username, Password: r.Password}
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type otpLoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	OTP       string `json:"otp" validate:"required,numeric,len=6"`
	Timestamp int64  `json:"otp_ts" validate:"required,gt=0"`
}

func (r otpLoginRequest) toLogin() user.OTPLogin {
	return user.OTPLogin{Email: r.Email, OTP: r.OTP, Timestamp: r.Timestamp}
}

// seedingRequest accepts either team ids in seed order or the raw text
// pasted into the console, e.g. "[12, 7, 3]".
type seedingRequest struct {
	TeamIDs []int64 `json:"team_ids" validate:"required_without=Text,dive,gt=0"`
	Text    string  `json:"text" validate:"required_without=TeamIDs"`
}

type fieldRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Address       string `json:"address" validate:"max=500"`
	IsBroadcasted bool   `json:"is_broadcasted"`
	LocationURL   string `json:"location_url" validate:"omitempty,url"`
}

func (r fieldRequest) toInput() tournament.FieldInput {
	return tournament.FieldInput{
		Name:          r.Name,
		Address:       r.Address,
		IsBroadcasted: r.IsBroadcasted,
		LocationURL:   r.LocationURL,
	}
}

type poolRequest struct {
	TournamentID   int64   `json:"tournament_id" validate:"required,gt=0"`
	Name           string  `json:"name" validate:"required,max=50"`
	SequenceNumber int     `json:"sequence_number" validate:"required,gt=0"`
	Seeding        []int64 `json:"seeding" validate:"omitempty,dive,gt=0"`
	SeedingText    string  `json:"seeding_text"`
}

type bracketRequest struct {
	TournamentID   int64  `json:"tournament_id" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required,max=50"`
	SequenceNumber int    `json:"sequence_number" validate:"required,gt=0"`
}

func (r bracketRequest) toInput() tournament.BracketInput {
	return tournament.BracketInput{
		TournamentID:   r.TournamentID,
		Name:           r.Name,
		SequenceNumber: r.SequenceNumber,
	}
}

type createMatchRequest struct {
	TournamentID   int64     `json:"tournament_id" validate:"required,gt=0"`
	SequenceNumber int       `json:"sequence_number" validate:"required,gt=0"`
	Time           time.Time `json:"time" validate:"required"`
	Seed1          int       `json:"seed_1" validate:"required,gt=0"`
	Seed2          int       `json:"seed_2" validate:"required,gt=0,nefield=Seed1"`
	FieldID        int64     `json:"field_id" validate:"gte=0"`
	Stage          string    `json:"stage" validate:"required,oneof=pool cross_pool bracket position_pool"`
	StageID        int64     `json:"stage_id" validate:"required,gt=0"`
}

type updateMatchRequest struct {
	Time         *time.Time `json:"time"`
	FieldID      *int64     `json:"field_id" validate:"omitempty,gt=0"`
	DurationMins *int       `json:"duration_mins" validate:"omitempty,gt=0"`
	VideoURL     *string    `json:"video_url" validate:"omitempty,url"`
}

func (r updateMatchRequest) toInput() match.UpdateInput {
	return match.UpdateInput{
		Time:         r.Time,
		FieldID:      r.FieldID,
		DurationMins: r.DurationMins,
		VideoURL:     r.VideoURL,
	}
}

type scoreRequest struct {
	Score1 *int `json:"score_team_1" validate:"required,gte=0"`
	Score2 *int `json:"score_team_2" validate:"required,gte=0"`
}

func (r scoreRequest) toInput() match.ScoreInput {
	return match.ScoreInput{Score1: *r.Score1, Score2: *r.Score2}
}

type spiritSheetRequest struct {
	Rules         int    `json:"rules" validate:"gte=0,lte=4"`
	Fouls         int    `json:"fouls" validate:"gte=0,lte=4"`
	Fair          int    `json:"fair" validate:"gte=0,lte=4"`
	Positive      int    `json:"positive" validate:"gte=0,lte=4"`
	Communication int    `json:"communication" validate:"gte=0,lte=4"`
	Comments      string `json:"comments" validate:"max=2000"`
	MVPID         int64  `json:"mvp_id" validate:"gte=0"`
	MSPID         int64  `json:"msp_id" validate:"gte=0"`
}

func (r spiritSheetRequest) toSheet() match.SpiritSheet {
	return match.SpiritSheet{
		Rules:         r.Rules,
		Fouls:         r.Fouls,
		Fair:          r.Fair,
		Positive:      r.Positive,
		Communication: r.Communication,
		Comments:      r.Comments,
		MVPID:         r.MVPID,
		MSPID:         r.MSPID,
	}
}

type spiritScoreRequest struct {
	Opponent spiritSheetRequest `json:"opponent"`
	Self     spiritSheetRequest `json:"self"`
}
