package osuapi

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/domain/user"
)

type refDTO struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type teamDTO struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Logo *string `json:"logo"`
}

func (d teamDTO) toDomain() team.Team {
	return team.Team{ID: d.ID, Slug: d.Slug, Name: d.Name, LogoURL: str(d.Logo)}
}

type spiritRankDTO struct {
	TeamID     flexInt   `json:"team_id"`
	Rank       flexInt   `json:"rank"`
	Points     flexFloat `json:"points"`
	SelfPoints flexFloat `json:"self_points"`
}

type tournamentDTO struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	Location       string             `json:"location"`
	Status         string             `json:"status"`
	Type           string             `json:"type"`
	Banner         *string            `json:"banner"`
	Teams          []teamDTO          `json:"teams"`
	InitialSeeding map[string]flexInt `json:"initial_seeding"`
	CurrentSeeding map[string]flexInt `json:"current_seeding"`
	SpiritRanking  []spiritRankDTO    `json:"spirit_ranking"`
}

func (d tournamentDTO) toDomain() (tournament.Tournament, error) {
	status, err := tournament.ParseStatus(d.Status)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %d: %w", d.ID, err)
	}
	start, err := parseDate(d.StartDate)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %d start date: %w", d.ID, err)
	}
	end, err := parseDate(d.EndDate)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %d end date: %w", d.ID, err)
	}
	initial, err := seedingFromWire(d.InitialSeeding)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %d initial seeding: %w", d.ID, err)
	}
	current, err := seedingFromWire(d.CurrentSeeding)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("tournament %d current seeding: %w", d.ID, err)
	}

	teams := make([]team.Team, 0, len(d.Teams))
	for _, t := range d.Teams {
		teams = append(teams, t.toDomain())
	}
	spirit := make([]tournament.SpiritRank, 0, len(d.SpiritRanking))
	for _, r := range d.SpiritRanking {
		spirit = append(spirit, tournament.SpiritRank{
			TeamID:     int64(r.TeamID),
			Rank:       int(r.Rank),
			Points:     float64(r.Points),
			SelfPoints: float64(r.SelfPoints),
		})
	}

	return tournament.Tournament{
		ID:             d.ID,
		Slug:           d.Slug,
		Name:           d.Name,
		Status:         status,
		Type:           d.Type,
		StartDate:      start,
		EndDate:        end,
		Location:       d.Location,
		BannerURL:      str(d.Banner),
		InitialSeeding: initial,
		CurrentSeeding: current,
		Teams:          teams,
		SpiritRanking:  spirit,
	}, nil
}

// seedingFromWire reads the backend's {"1": teamID, ...} objects.
func seedingFromWire(in map[string]flexInt) (tournament.Seeding, error) {
	out := make(tournament.Seeding, len(in))
	for k, v := range in {
		rank, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("seeding rank %q is not a number", k)
		}
		out[rank] = int64(v)
	}
	return out, nil
}

func seedingToWire(s tournament.Seeding) map[string]int64 {
	out := make(map[string]int64, len(s))
	for rank, teamID := range s {
		out[strconv.Itoa(rank)] = teamID
	}
	return out
}

type fieldDTO struct {
	ID            int64   `json:"id"`
	Tournament    flexInt `json:"tournament"`
	Name          string  `json:"name"`
	Address       *string `json:"address"`
	IsBroadcasted bool    `json:"is_broadcasted"`
	LocationURL   *string `json:"location_url"`
}

func (d fieldDTO) toDomain(tournamentID int64) tournament.Field {
	if tournamentID == 0 {
		tournamentID = int64(d.Tournament)
	}
	return tournament.Field{
		ID:            d.ID,
		TournamentID:  tournamentID,
		Name:          d.Name,
		Address:       str(d.Address),
		IsBroadcasted: d.IsBroadcasted,
		LocationURL:   str(d.LocationURL),
	}
}

type fieldBody struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	IsBroadcasted bool   `json:"is_broadcasted"`
	LocationURL   string `json:"location_url"`
}

func newFieldBody(in tournament.FieldInput) fieldBody {
	return fieldBody{
		Name:          in.Name,
		Address:       in.Address,
		IsBroadcasted: in.IsBroadcasted,
		LocationURL:   in.LocationURL,
	}
}

type resultDTO struct {
	Wins         flexInt `json:"wins"`
	Losses       flexInt `json:"losses"`
	Draws        flexInt `json:"draws"`
	GoalsFor     flexInt `json:"GF"`
	GoalsAgainst flexInt `json:"GA"`
	Rank         flexInt `json:"rank"`
}

type stageDTO struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	SequenceNumber flexInt              `json:"sequence_number"`
	InitialSeeding map[string]flexInt   `json:"initial_seeding"`
	CurrentSeeding map[string]flexInt   `json:"current_seeding"`
	Results        map[string]resultDTO `json:"results"`
	Tournament     *refDTO              `json:"tournament"`
}

func (d stageDTO) tournamentID() int64 {
	if d.Tournament == nil {
		return 0
	}
	return d.Tournament.ID
}

func (d stageDTO) toPool() (tournament.Pool, error) {
	seeding, err := seedingFromWire(d.InitialSeeding)
	if err != nil {
		return tournament.Pool{}, fmt.Errorf("pool %d: %w", d.ID, err)
	}
	results := make(map[int64]tournament.Result, len(d.Results))
	for k, r := range d.Results {
		teamID, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return tournament.Pool{}, fmt.Errorf("pool %d result key %q is not a team id", d.ID, k)
		}
		results[teamID] = tournament.Result{
			Wins:         int(r.Wins),
			Losses:       int(r.Losses),
			Draws:        int(r.Draws),
			GoalsFor:     int(r.GoalsFor),
			GoalsAgainst: int(r.GoalsAgainst),
			Rank:         int(r.Rank),
		}
	}
	return tournament.Pool{
		ID:             d.ID,
		TournamentID:   d.tournamentID(),
		Name:           d.Name,
		SequenceNumber: int(d.SequenceNumber),
		InitialSeeding: seeding,
		Results:        results,
	}, nil
}

func (d stageDTO) toCrossPool() (tournament.CrossPool, error) {
	initial, err := seedingFromWire(d.InitialSeeding)
	if err != nil {
		return tournament.CrossPool{}, fmt.Errorf("cross pool %d: %w", d.ID, err)
	}
	current, err := seedingFromWire(d.CurrentSeeding)
	if err != nil {
		return tournament.CrossPool{}, fmt.Errorf("cross pool %d: %w", d.ID, err)
	}
	return tournament.CrossPool{
		ID:             d.ID,
		TournamentID:   d.tournamentID(),
		InitialSeeding: initial,
		CurrentSeeding: current,
	}, nil
}

func (d stageDTO) toBracket() (tournament.Bracket, error) {
	initial, err := seedingFromWire(d.InitialSeeding)
	if err != nil {
		return tournament.Bracket{}, fmt.Errorf("bracket %d: %w", d.ID, err)
	}
	current, err := seedingFromWire(d.CurrentSeeding)
	if err != nil {
		return tournament.Bracket{}, fmt.Errorf("bracket %d: %w", d.ID, err)
	}
	return tournament.Bracket{
		ID:             d.ID,
		TournamentID:   d.tournamentID(),
		Name:           d.Name,
		SequenceNumber: int(d.SequenceNumber),
		InitialSeeding: initial,
		CurrentSeeding: current,
	}, nil
}

type personDTO struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	UserFirstName  string  `json:"user_first_name"`
	UserLastName   string  `json:"user_last_name"`
	UserFullName   string  `json:"user_full_name"`
	ImageURL       *string `json:"image_url"`
	ProfilePicture *string `json:"profile_picture"`
}

func (d *personDTO) toDomain() *match.Person {
	if d == nil {
		return nil
	}
	return &match.Person{
		ID:        d.ID,
		FirstName: firstNonEmpty(d.FirstName, d.UserFirstName),
		LastName:  firstNonEmpty(d.LastName, d.UserLastName),
		ImageURL:  firstNonEmpty(str(d.ImageURL), str(d.ProfilePicture)),
	}
}

func (d *personDTO) fullName() string {
	if d == nil {
		return ""
	}
	if d.UserFullName != "" {
		return d.UserFullName
	}
	return d.toDomain().FullName()
}

type suggestedScoreDTO struct {
	ScoreTeam1 flexInt    `json:"score_team_1"`
	ScoreTeam2 flexInt    `json:"score_team_2"`
	EnteredBy  *personDTO `json:"entered_by"`
}

func (d *suggestedScoreDTO) toDomain() *match.SuggestedScore {
	if d == nil {
		return nil
	}
	return &match.SuggestedScore{
		Score1:    int(d.ScoreTeam1),
		Score2:    int(d.ScoreTeam2),
		EnteredBy: d.EnteredBy.fullName(),
	}
}

type spiritScoreDTO struct {
	Rules         flexInt    `json:"rules"`
	Fouls         flexInt    `json:"fouls"`
	Fair          flexInt    `json:"fair"`
	Positive      flexInt    `json:"positive"`
	Communication flexInt    `json:"communication"`
	Total         flexFloat  `json:"total"`
	Comments      *string    `json:"comments"`
	MVP           *personDTO `json:"mvp"`
	MSP           *personDTO `json:"msp"`
	MVPV2         *personDTO `json:"mvp_v2"`
	MSPV2         *personDTO `json:"msp_v2"`
}

func (d *spiritScoreDTO) toDomain() *match.SpiritScore {
	if d == nil {
		return nil
	}
	mvp, msp := d.MVP, d.MSP
	if d.MVPV2 != nil {
		mvp = d.MVPV2
	}
	if d.MSPV2 != nil {
		msp = d.MSPV2
	}
	return &match.SpiritScore{
		Rules:         int(d.Rules),
		Fouls:         int(d.Fouls),
		Fair:          int(d.Fair),
		Positive:      int(d.Positive),
		Communication: int(d.Communication),
		Total:         float64(d.Total),
		Comments:      str(d.Comments),
		MVP:           mvp.toDomain(),
		MSP:           msp.toDomain(),
	}
}

type matchDTO struct {
	ID                   int64              `json:"id"`
	Name                 string             `json:"name"`
	Time                 *string            `json:"time"`
	DurationMins         flexInt            `json:"duration_mins"`
	ScoreTeam1           flexInt            `json:"score_team_1"`
	ScoreTeam2           flexInt            `json:"score_team_2"`
	Status               string             `json:"status"`
	VideoURL             *string            `json:"video_url"`
	SequenceNumber       flexInt            `json:"sequence_number"`
	PlaceholderSeed1     flexInt            `json:"placeholder_seed_1"`
	PlaceholderSeed2     flexInt            `json:"placeholder_seed_2"`
	Team1                *teamDTO           `json:"team_1"`
	Team2                *teamDTO           `json:"team_2"`
	Tournament           *refDTO            `json:"tournament"`
	Field                *fieldDTO          `json:"field"`
	Pool                 *stageDTO          `json:"pool"`
	CrossPool            *stageDTO          `json:"cross_pool"`
	Bracket              *stageDTO          `json:"bracket"`
	PositionPool         *stageDTO          `json:"position_pool"`
	SuggestedScoreTeam1  *suggestedScoreDTO `json:"suggested_score_team_1"`
	SuggestedScoreTeam2  *suggestedScoreDTO `json:"suggested_score_team_2"`
	SpiritScoreTeam1     *spiritScoreDTO    `json:"spirit_score_team_1"`
	SpiritScoreTeam2     *spiritScoreDTO    `json:"spirit_score_team_2"`
	SelfSpiritScoreTeam1 *spiritScoreDTO    `json:"self_spirit_score_team_1"`
	SelfSpiritScoreTeam2 *spiritScoreDTO    `json:"self_spirit_score_team_2"`
}

func (d matchDTO) stage() (match.Stage, error) {
	candidates := []struct {
		kind match.StageKind
		dto  *stageDTO
	}{
		{match.StagePool, d.Pool},
		{match.StageCrossPool, d.CrossPool},
		{match.StageBracket, d.Bracket},
		{match.StagePositionPool, d.PositionPool},
	}

	var out match.Stage
	for _, c := range candidates {
		if c.dto == nil {
			continue
		}
		if out.Kind != match.StageNone {
			return match.Stage{}, fmt.Errorf("match %d belongs to both %s and %s", d.ID, out.Kind, c.kind)
		}
		out = match.Stage{
			Kind:           c.kind,
			ID:             c.dto.ID,
			Name:           c.dto.Name,
			SequenceNumber: int(c.dto.SequenceNumber),
		}
	}
	return out, nil
}

func side(t *teamDTO, seed flexInt) match.Side {
	if t == nil || t.ID <= 0 {
		return match.Placeholder{Seed: int(seed)}
	}
	return match.Resolved{Team: t.toDomain(), Seed: int(seed)}
}

func (d matchDTO) toDomain() (match.Match, error) {
	status, err := match.ParseStatus(d.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %d: %w", d.ID, err)
	}
	stage, err := d.stage()
	if err != nil {
		return match.Match{}, err
	}

	m := match.Match{
		ID:             d.ID,
		Name:           d.Name,
		Team1:          side(d.Team1, d.PlaceholderSeed1),
		Team2:          side(d.Team2, d.PlaceholderSeed2),
		Status:         status,
		DurationMins:   int(d.DurationMins),
		Score1:         int(d.ScoreTeam1),
		Score2:         int(d.ScoreTeam2),
		Suggested1:     d.SuggestedScoreTeam1.toDomain(),
		Suggested2:     d.SuggestedScoreTeam2.toDomain(),
		Spirit1:        d.SpiritScoreTeam1.toDomain(),
		Spirit2:        d.SpiritScoreTeam2.toDomain(),
		SelfSpirit1:    d.SelfSpiritScoreTeam1.toDomain(),
		SelfSpirit2:    d.SelfSpiritScoreTeam2.toDomain(),
		VideoURL:       str(d.VideoURL),
		SequenceNumber: int(d.SequenceNumber),
		Stage:          stage,
	}
	if d.Tournament != nil {
		m.TournamentID = d.Tournament.ID
	}
	if t := str(d.Time); t != "" {
		parsed, err := parseTimestamp(t)
		if err != nil {
			return match.Match{}, fmt.Errorf("match %d: %w", d.ID, err)
		}
		m.Time = &parsed
	}
	if d.Field != nil {
		f := d.Field.toDomain(m.TournamentID)
		m.Field = &f
	}
	return m, nil
}

func matchesToDomain(in []matchDTO) ([]match.Match, error) {
	out := make([]match.Match, 0, len(in))
	for _, d := range in {
		m, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

type matchEventDTO struct {
	Type              string     `json:"type"`
	Time              string     `json:"time"`
	CurrentScoreTeam1 flexInt    `json:"current_score_team_1"`
	CurrentScoreTeam2 flexInt    `json:"current_score_team_2"`
	Team              *teamDTO   `json:"team"`
	ScoredBy          *personDTO `json:"scored_by"`
	AssistedBy        *personDTO `json:"assisted_by"`
	BlockBy           *personDTO `json:"block_by"`
}

type matchStatsDTO struct {
	Events []matchEventDTO `json:"events"`
}

// toDomain keeps known event types and orders the timeline oldest first.
func (d matchStatsDTO) toDomain() (match.Stats, error) {
	events := make([]match.Event, 0, len(d.Events))
	for _, e := range d.Events {
		kind, err := match.ParseEventType(e.Type)
		if err != nil {
			continue
		}
		ev := match.Event{
			Type:       kind,
			Score1:     int(e.CurrentScoreTeam1),
			Score2:     int(e.CurrentScoreTeam2),
			ScoredBy:   e.ScoredBy.fullName(),
			AssistedBy: e.AssistedBy.fullName(),
			BlockBy:    e.BlockBy.fullName(),
		}
		if e.Team != nil {
			ev.TeamID = e.Team.ID
		}
		if e.Time != "" {
			ts, err := parseTimestamp(e.Time)
			if err != nil {
				return match.Stats{}, fmt.Errorf("match event: %w", err)
			}
			ev.Time = ts
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Time.Before(events[j].Time) })
	return match.Stats{Events: events}, nil
}

type createMatchBody struct {
	Name             string `json:"name"`
	TournamentID     int64  `json:"tournament_id"`
	Time             string `json:"time"`
	Status           string `json:"status"`
	SequenceNumber   int    `json:"sequence_number"`
	PlaceholderSeed1 int    `json:"placeholder_seed_1"`
	PlaceholderSeed2 int    `json:"placeholder_seed_2"`
	FieldID          *int64 `json:"field_id,omitempty"`
	PoolID           *int64 `json:"pool_id,omitempty"`
	CrossPoolID      *int64 `json:"cross_pool_id,omitempty"`
	BracketID        *int64 `json:"bracket_id,omitempty"`
	PositionPoolID   *int64 `json:"position_pool_id,omitempty"`
}

func newCreateMatchBody(in match.CreateInput) createMatchBody {
	body := createMatchBody{
		Name:             in.Name(),
		TournamentID:     in.TournamentID,
		Time:             in.Time.UTC().Format(time.RFC3339),
		Status:           match.StatusYetToBeFixed.Code(),
		SequenceNumber:   in.SequenceNumber,
		PlaceholderSeed1: in.Seed1,
		PlaceholderSeed2: in.Seed2,
	}
	if in.FieldID > 0 {
		id := in.FieldID
		body.FieldID = &id
	}
	stageID := in.StageID
	switch in.Stage {
	case match.StagePool:
		body.PoolID = &stageID
	case match.StageCrossPool:
		body.CrossPoolID = &stageID
	case match.StageBracket:
		body.BracketID = &stageID
	case match.StagePositionPool:
		body.PositionPoolID = &stageID
	case match.StageNone:
	}
	return body
}

type updateMatchBody struct {
	Time         *string `json:"time,omitempty"`
	FieldID      *int64  `json:"field_id,omitempty"`
	DurationMins *int    `json:"duration_mins,omitempty"`
	VideoURL     *string `json:"video_url,omitempty"`
}

func newUpdateMatchBody(in match.UpdateInput) updateMatchBody {
	body := updateMatchBody{
		FieldID:      in.FieldID,
		DurationMins: in.DurationMins,
		VideoURL:     in.VideoURL,
	}
	if in.Time != nil {
		t := in.Time.UTC().Format(time.RFC3339)
		body.Time = &t
	}
	return body
}

type scoreBody struct {
	ScoreTeam1 int `json:"score_team_1"`
	ScoreTeam2 int `json:"score_team_2"`
}

type spiritSheetBody struct {
	Rules         int    `json:"rules"`
	Fouls         int    `json:"fouls"`
	Fair          int    `json:"fair"`
	Positive      int    `json:"positive"`
	Communication int    `json:"communication"`
	Comments      string `json:"comments"`
	MVPID         *int64 `json:"mvp_id"`
	MSPID         *int64 `json:"msp_id"`
}

func newSpiritSheetBody(s match.SpiritSheet) spiritSheetBody {
	body := spiritSheetBody{
		Rules:         s.Rules,
		Fouls:         s.Fouls,
		Fair:          s.Fair,
		Positive:      s.Positive,
		Communication: s.Communication,
		Comments:      s.Comments,
	}
	if s.MVPID > 0 {
		id := s.MVPID
		body.MVPID = &id
	}
	if s.MSPID > 0 {
		id := s.MSPID
		body.MSPID = &id
	}
	return body
}

type spiritBody struct {
	Opponent spiritSheetBody `json:"opponent"`
	Self     spiritSheetBody `json:"self"`
}

type playerSummaryDTO struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	Name           string  `json:"name"`
	Slug           *string `json:"slug"`
	ProfilePicture *string `json:"profile_picture"`
	Gender         string  `json:"gender"`
	City           string  `json:"city"`
}

type playersPageDTO struct {
	Players []playerSummaryDTO `json:"players"`
	Total   flexInt            `json:"total"`
}

func (d playersPageDTO) toDomain() player.Page {
	out := player.Page{Players: make([]player.Summary, 0, len(d.Players)), Total: int(d.Total)}
	for _, p := range d.Players {
		out.Players = append(out.Players, player.Summary{
			ID:                p.ID,
			UserID:            p.UserID,
			Name:              p.Name,
			Slug:              str(p.Slug),
			ProfilePictureURL: str(p.ProfilePicture),
			Gender:            player.Gender(p.Gender),
			City:              p.City,
		})
	}
	return out
}

type userDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

func (d userDTO) toDomain() user.User {
	return user.User{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		IsStaff:   d.IsStaff,
	}
}

type rosterPlayerDTO struct {
	ID            int64  `json:"id"`
	Gender        string `json:"gender"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
}

type registrationDTO struct {
	ID         int64           `json:"id"`
	Role       string          `json:"role"`
	Tournament *refDTO         `json:"tournament"`
	Team       teamDTO         `json:"team"`
	Player     rosterPlayerDTO `json:"player"`
	BasePrice  *flexFloat      `json:"base_price"`
	SoldPrice  *flexFloat      `json:"sold_price"`
}

func (d registrationDTO) toDomain() (player.Registration, error) {
	role, err := player.ParseRegistrationRole(d.Role)
	if err != nil {
		return player.Registration{}, fmt.Errorf("registration %d: %w", d.ID, err)
	}
	reg := player.Registration{
		ID:   d.ID,
		Team: d.Team.toDomain(),
		Role: role,
		Person: player.RosterPerson{
			ID:        d.Player.ID,
			FirstName: d.Player.UserFirstName,
			LastName:  d.Player.UserLastName,
			Gender:    player.Gender(d.Player.Gender),
		},
		BasePrice: floatPtr(d.BasePrice),
		SoldPrice: floatPtr(d.SoldPrice),
	}
	if d.Tournament != nil {
		reg.TournamentID = d.Tournament.ID
	}
	return reg, nil
}

func registrationsToDomain(in []registrationDTO) ([]player.Registration, error) {
	out := make([]player.Registration, 0, len(in))
	for _, d := range in {
		reg, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, nil
}

func floatPtr(v *flexFloat) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

type playerDTO struct {
	ID             int64             `json:"id"`
	User           userDTO           `json:"user"`
	Slug           *string           `json:"slug"`
	ProfilePicture *string           `json:"profile_picture"`
	Gender         string            `json:"gender"`
	MatchUp        string            `json:"match_up"`
	City           string            `json:"city"`
	ThrowingHand   *string           `json:"throwing_hand"`
	PreferredRole  *string           `json:"preferred_role"`
	PrefferedRole  *string           `json:"preffered_role"`
	Registrations  []registrationDTO `json:"registrations"`
}

func (d playerDTO) toDomain() (player.Player, error) {
	regs, err := registrationsToDomain(d.Registrations)
	if err != nil {
		return player.Player{}, fmt.Errorf("player %d: %w", d.ID, err)
	}
	return player.Player{
		ID:                d.ID,
		Slug:              str(d.Slug),
		FirstName:         d.User.FirstName,
		LastName:          d.User.LastName,
		Gender:            player.Gender(d.Gender),
		MatchUp:           player.Gender(d.MatchUp),
		PreferredRole:     player.Role(firstNonEmpty(str(d.PreferredRole), str(d.PrefferedRole))),
		ThrowingHand:      player.Hand(str(d.ThrowingHand)),
		City:              d.City,
		ProfilePictureURL: str(d.ProfilePicture),
		Registrations:     regs,
	}, nil
}

type accessDTO struct {
	AdminTeamIDs          []flexInt `json:"admin_team_ids"`
	IsStaff               bool      `json:"is_staff"`
	IsTournamentAdmin     bool      `json:"is_tournament_admin"`
	IsTournamentVolunteer bool      `json:"is_tournament_volunteer"`
	PlayingTeamID         flexInt   `json:"playing_team_id"`
}

func (d accessDTO) toDomain() user.Access {
	ids := make([]int64, 0, len(d.AdminTeamIDs))
	for _, id := range d.AdminTeamIDs {
		ids = append(ids, int64(id))
	}
	return user.Access{
		AdminTeamIDs:          ids,
		IsStaff:               d.IsStaff,
		IsTournamentAdmin:     d.IsTournamentAdmin,
		IsTournamentVolunteer: d.IsTournamentVolunteer,
		PlayingTeamID:         int64(d.PlayingTeamID),
	}
}
