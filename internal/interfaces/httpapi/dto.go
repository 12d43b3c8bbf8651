package httpapi

import (
	"time"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/domain/schedule"
	"github.com/osu-ultimate/tournament-console/internal/domain/standing"
	"github.com/osu-ultimate/tournament-console/internal/domain/team"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/domain/user"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

const dateLayout = time.DateOnly

type teamDTO struct {
	ID      int64  `json:"id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:      v.ID,
		Slug:    v.Slug,
		Name:    v.Name,
		LogoURL: v.LogoURL,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamToDTO(t))
	}
	return out
}

type tournamentDTO struct {
	ID             int64           `json:"id"`
	Slug           string          `json:"slug"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	StatusLabel    string          `json:"status_label"`
	Type           string          `json:"type,omitempty"`
	StartDate      string          `json:"start_date,omitempty"`
	EndDate        string          `json:"end_date,omitempty"`
	Location       string          `json:"location,omitempty"`
	BannerURL      string          `json:"banner_url,omitempty"`
	InitialSeeding []int64         `json:"initial_seeding"`
	CurrentSeeding []int64         `json:"current_seeding"`
	Teams          []teamDTO       `json:"teams"`
	SpiritRanking  []spiritRankDTO `json:"spirit_ranking"`
	Startable      bool            `json:"startable"`
	Editable       bool            `json:"editable"`
}

type spiritRankDTO struct {
	TeamID     int64   `json:"team_id"`
	TeamName   string  `json:"team_name"`
	Rank       int     `json:"rank"`
	Points     float64 `json:"points"`
	SelfPoints float64 `json:"self_points"`
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	teams := standing.TeamLookup(v.Teams)
	return tournamentDTO{
		ID:             v.ID,
		Slug:           v.Slug,
		Name:           v.Name,
		Status:         v.Status.String(),
		StatusLabel:    v.Status.Label(),
		Type:           v.Type,
		StartDate:      formatDate(v.StartDate),
		EndDate:        formatDate(v.EndDate),
		Location:       v.Location,
		BannerURL:      v.BannerURL,
		InitialSeeding: v.InitialSeeding.Ordered(),
		CurrentSeeding: v.CurrentSeeding.Ordered(),
		Teams:          teamsToDTO(v.Teams),
		SpiritRanking:  spiritToDTO(standing.SpiritTable(v.SpiritRanking), teams),
		Startable:      v.Status.Startable(),
		Editable:       v.Status.Editable(),
	}
}

func spiritToDTO(ranks []tournament.SpiritRank, teams standing.Lookup) []spiritRankDTO {
	out := make([]spiritRankDTO, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, spiritRankDTO{
			TeamID:     r.TeamID,
			TeamName:   teams.Name(r.TeamID),
			Rank:       r.Rank,
			Points:     r.Points,
			SelfPoints: r.SelfPoints,
		})
	}
	return out
}

type fieldDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	IsBroadcasted bool   `json:"is_broadcasted"`
	LocationURL   string `json:"location_url,omitempty"`
}

func fieldToDTO(v tournament.Field) fieldDTO {
	return fieldDTO{
		ID:            v.ID,
		Name:          v.Name,
		Address:       v.Address,
		IsBroadcasted: v.IsBroadcasted,
		LocationURL:   v.LocationURL,
	}
}

func fieldsToDTO(items []tournament.Field) []fieldDTO {
	out := make([]fieldDTO, 0, len(items))
	for _, f := range items {
		out = append(out, fieldToDTO(f))
	}
	return out
}

type sideDTO struct {
	Label string   `json:"label"`
	Seed  int      `json:"seed"`
	Team  *teamDTO `json:"team,omitempty"`
}

func sideToDTO(s match.Side) sideDTO {
	if s == nil {
		return sideDTO{}
	}
	out := sideDTO{Label: match.SideLabel(s), Seed: s.SeedNumber()}
	if t, ok := match.TeamOf(s); ok {
		dto := teamToDTO(t)
		out.Team = &dto
	}
	return out
}

type suggestedScoreDTO struct {
	Score1    int    `json:"score_team_1"`
	Score2    int    `json:"score_team_2"`
	EnteredBy string `json:"entered_by,omitempty"`
}

type spiritScoreDTO struct {
	Rules         int     `json:"rules"`
	Fouls         int     `json:"fouls"`
	Fair          int     `json:"fair"`
	Positive      int     `json:"positive"`
	Communication int     `json:"communication"`
	Total         float64 `json:"total"`
	Comments      string  `json:"comments,omitempty"`
	MVP           string  `json:"mvp,omitempty"`
	MSP           string  `json:"msp,omitempty"`
}

type matchDTO struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	DisplayName    string             `json:"display_name"`
	Color          string             `json:"color,omitempty"`
	Stage          string             `json:"stage,omitempty"`
	StageID        int64              `json:"stage_id,omitempty"`
	SequenceNumber int                `json:"sequence_number"`
	Status         string             `json:"status"`
	StatusLabel    string             `json:"status_label"`
	Team1          sideDTO            `json:"team_1"`
	Team2          sideDTO            `json:"team_2"`
	Score1         int                `json:"score_team_1"`
	Score2         int                `json:"score_team_2"`
	Time           *time.Time         `json:"time,omitempty"`
	End            *time.Time         `json:"end,omitempty"`
	DurationMins   int                `json:"duration_mins"`
	Field          *fieldDTO          `json:"field,omitempty"`
	Live           bool               `json:"live"`
	Suggested1     *suggestedScoreDTO `json:"suggested_score_team_1,omitempty"`
	Suggested2     *suggestedScoreDTO `json:"suggested_score_team_2,omitempty"`
	ScoresClash    bool               `json:"suggested_scores_clash"`
	Spirit1        *spiritScoreDTO    `json:"spirit_score_team_1,omitempty"`
	Spirit2        *spiritScoreDTO    `json:"spirit_score_team_2,omitempty"`
	SelfSpirit1    *spiritScoreDTO    `json:"self_spirit_score_team_1,omitempty"`
	SelfSpirit2    *spiritScoreDTO    `json:"self_spirit_score_team_2,omitempty"`
	VideoURL       string             `json:"video_url,omitempty"`
}

func matchToDTO(v match.Match, now time.Time) matchDTO {
	out := matchDTO{
		ID:             v.ID,
		Name:           v.Name,
		DisplayName:    v.DisplayName(),
		Color:          match.CardColor(v),
		SequenceNumber: v.SequenceNumber,
		Status:         v.Status.String(),
		StatusLabel:    v.Status.Label(),
		Team1:          sideToDTO(v.Team1),
		Team2:          sideToDTO(v.Team2),
		Score1:         v.Score1,
		Score2:         v.Score2,
		Time:           v.Time,
		DurationMins:   v.DurationMins,
		Live:           v.IsLive(now),
		Suggested1:     suggestedToDTO(v.Suggested1),
		Suggested2:     suggestedToDTO(v.Suggested2),
		ScoresClash:    v.SuggestedScoresClash(),
		Spirit1:        spiritScoreToDTO(v.Spirit1),
		Spirit2:        spiritScoreToDTO(v.Spirit2),
		SelfSpirit1:    spiritScoreToDTO(v.SelfSpirit1),
		SelfSpirit2:    spiritScoreToDTO(v.SelfSpirit2),
		VideoURL:       v.VideoURL,
	}
	if v.Stage.Kind != match.StageNone {
		out.Stage = v.Stage.Kind.String()
		out.StageID = v.Stage.ID
	}
	if end, ok := v.End(); ok {
		out.End = &end
	}
	if v.Field != nil {
		f := fieldToDTO(*v.Field)
		out.Field = &f
	}
	return out
}

func matchesToDTO(items []match.Match, now time.Time) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m, now))
	}
	return out
}

func suggestedToDTO(v *match.SuggestedScore) *suggestedScoreDTO {
	if v == nil {
		return nil
	}
	return &suggestedScoreDTO{Score1: v.Score1, Score2: v.Score2, EnteredBy: v.EnteredBy}
}

func spiritScoreToDTO(v *match.SpiritScore) *spiritScoreDTO {
	if v == nil {
		return nil
	}
	out := &spiritScoreDTO{
		Rules:         v.Rules,
		Fouls:         v.Fouls,
		Fair:          v.Fair,
		Positive:      v.Positive,
		Communication: v.Communication,
		Total:         v.Total,
		Comments:      v.Comments,
	}
	if v.MVP != nil {
		out.MVP = v.MVP.FullName()
	}
	if v.MSP != nil {
		out.MSP = v.MSP.FullName()
	}
	return out
}

type matchEventDTO struct {
	Type       string    `json:"type"`
	Time       time.Time `json:"time"`
	Score1     int       `json:"score_team_1"`
	Score2     int       `json:"score_team_2"`
	TeamID     int64     `json:"team_id,omitempty"`
	ScoredBy   string    `json:"scored_by,omitempty"`
	AssistedBy string    `json:"assisted_by,omitempty"`
	BlockBy    string    `json:"block_by,omitempty"`
}

type matchDetailDTO struct {
	Match  matchDTO        `json:"match"`
	Events []matchEventDTO `json:"events"`
}

func statsToDTO(v match.Stats) []matchEventDTO {
	out := make([]matchEventDTO, 0, len(v.Events))
	for _, e := range v.Events {
		out = append(out, matchEventDTO{
			Type:       e.Type.String(),
			Time:       e.Time,
			Score1:     e.Score1,
			Score2:     e.Score2,
			TeamID:     e.TeamID,
			ScoredBy:   e.ScoredBy,
			AssistedBy: e.AssistedBy,
			BlockBy:    e.BlockBy,
		})
	}
	return out
}

type scheduleDTO struct {
	Tournament  tournamentDTO      `json:"tournament"`
	Weeks       []scheduleWeekDTO  `json:"weeks"`
	Fields      []fieldDTO         `json:"fields"`
	Unscheduled []matchDTO         `json:"unscheduled"`
	Collisions  []scheduleClashDTO `json:"collisions,omitempty"`
}

type scheduleWeekDTO struct {
	Label string           `json:"label"`
	Days  []scheduleDayDTO `json:"days"`
}

type scheduleDayDTO struct {
	Date     string            `json:"date"`
	Label    string            `json:"label"`
	FieldIDs []int64           `json:"field_ids"`
	Slots    []scheduleSlotDTO `json:"slots"`
}

type scheduleSlotDTO struct {
	Start   time.Time  `json:"start"`
	End     time.Time  `json:"end"`
	Matches []matchDTO `json:"matches"`
}

type scheduleClashDTO struct {
	Day      string `json:"day"`
	FieldID  int64  `json:"field_id"`
	Start    string `json:"start"`
	Replaced int64  `json:"replaced_match_id"`
	Kept     int64  `json:"kept_match_id"`
}

func scheduleToDTO(v usecase.Schedule, now time.Time) scheduleDTO {
	out := scheduleDTO{
		Tournament:  tournamentToDTO(v.Tournament),
		Weeks:       make([]scheduleWeekDTO, 0, len(v.Weeks)),
		Fields:      fieldsToDTO(v.Fields),
		Unscheduled: matchesToDTO(v.Lookup.Unscheduled, now),
	}

	for _, w := range v.Weeks {
		week := scheduleWeekDTO{Label: w.Label, Days: make([]scheduleDayDTO, 0, len(w.Days))}
		for _, d := range w.Days {
			week.Days = append(week.Days, scheduleDayToDTO(v.Lookup, d, now))
		}
		out.Weeks = append(out.Weeks, week)
	}

	for _, c := range v.Lookup.Collisions {
		out.Collisions = append(out.Collisions, scheduleClashDTO{
			Day:      c.Day,
			FieldID:  c.FieldID,
			Start:    c.Slot.Start.UTC().Format(time.RFC3339),
			Replaced: c.Replaced.ID,
			Kept:     c.Kept.ID,
		})
	}
	return out
}

func scheduleDayToDTO(lookup schedule.Lookup, date, now time.Time) scheduleDayDTO {
	label := schedule.DayLabel(date)
	fieldIDs := lookup.Fields(label)
	day := scheduleDayDTO{
		Date:     date.Format(dateLayout),
		Label:    label,
		FieldIDs: fieldIDs,
		Slots:    []scheduleSlotDTO{},
	}

	for _, slot := range lookup.TimeSlots(label) {
		row := scheduleSlotDTO{Start: slot.Start, End: slot.End, Matches: []matchDTO{}}
		for _, fieldID := range fieldIDs {
			if m, ok := lookup.Get(label, slot.Start, slot.End, fieldID); ok {
				row.Matches = append(row.Matches, matchToDTO(m, now))
			}
		}
		day.Slots = append(day.Slots, row)
	}
	return day
}

type standingRowDTO struct {
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	Seed           int    `json:"seed"`
	Rank           int    `json:"rank"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Draws          int    `json:"draws"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type poolTableDTO struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	SequenceNumber int              `json:"sequence_number"`
	Rows           []standingRowDTO `json:"rows"`
}

type crossPoolDTO struct {
	ID             int64    `json:"id"`
	InitialSeeding []string `json:"initial_seeding"`
	CurrentSeeding []string `json:"current_seeding"`
}

type bracketDTO struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	SequenceNumber int      `json:"sequence_number"`
	InitialSeeding []string `json:"initial_seeding"`
	CurrentSeeding []string `json:"current_seeding"`
}

type standingsDTO struct {
	Tournament    tournamentDTO   `json:"tournament"`
	Pools         []poolTableDTO  `json:"pools"`
	CrossPool     *crossPoolDTO   `json:"cross_pool,omitempty"`
	Brackets      []bracketDTO    `json:"brackets"`
	PositionPools []poolTableDTO  `json:"position_pools"`
	Spirit        []spiritRankDTO `json:"spirit"`
}

func standingsToDTO(v usecase.Standings) standingsDTO {
	out := standingsDTO{
		Tournament:    tournamentToDTO(v.Tournament),
		Pools:         poolTablesToDTO(v.Pools, v.Teams),
		Brackets:      make([]bracketDTO, 0, len(v.Brackets)),
		PositionPools: poolTablesToDTO(v.PositionPools, v.Teams),
		Spirit:        spiritToDTO(v.Spirit, v.Teams),
	}
	if v.CrossPool != nil {
		out.CrossPool = &crossPoolDTO{
			ID:             v.CrossPool.ID,
			InitialSeeding: seedingNames(v.CrossPool.InitialSeeding, v.Teams),
			CurrentSeeding: seedingNames(v.CrossPool.CurrentSeeding, v.Teams),
		}
	}
	for _, b := range v.Brackets {
		out.Brackets = append(out.Brackets, bracketDTO{
			ID:             b.ID,
			Name:           b.Name,
			SequenceNumber: b.SequenceNumber,
			InitialSeeding: seedingNames(b.InitialSeeding, v.Teams),
			CurrentSeeding: seedingNames(b.CurrentSeeding, v.Teams),
		})
	}
	return out
}

func poolTablesToDTO(tables []usecase.PoolTable, teams standing.Lookup) []poolTableDTO {
	out := make([]poolTableDTO, 0, len(tables))
	for _, t := range tables {
		rows := make([]standingRowDTO, 0, len(t.Rows))
		for _, r := range t.Rows {
			rows = append(rows, standingRowDTO{
				TeamID:         r.TeamID,
				TeamName:       teams.Name(r.TeamID),
				Seed:           r.Seed,
				Rank:           r.Rank,
				Wins:           r.Wins,
				Losses:         r.Losses,
				Draws:          r.Draws,
				GoalsFor:       r.GoalsFor,
				GoalsAgainst:   r.GoalsAgainst,
				GoalDifference: r.GoalDifference,
				Points:         r.Points,
			})
		}
		out = append(out, poolTableDTO{
			ID:             t.Pool.ID,
			Name:           t.Pool.Name,
			SequenceNumber: t.Pool.SequenceNumber,
			Rows:           rows,
		})
	}
	return out
}

func seedingNames(s tournament.Seeding, teams standing.Lookup) []string {
	ids := s.Ordered()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, teams.Name(id))
	}
	return out
}

// stageRefDTO acknowledges a newly created stage.
type stageRefDTO struct {
	ID             int64   `json:"id"`
	TournamentID   int64   `json:"tournament_id"`
	Name           string  `json:"name,omitempty"`
	SequenceNumber int     `json:"sequence_number,omitempty"`
	Seeding        []int64 `json:"seeding,omitempty"`
}

func poolToDTO(v tournament.Pool) stageRefDTO {
	return stageRefDTO{
		ID:             v.ID,
		TournamentID:   v.TournamentID,
		Name:           v.Name,
		SequenceNumber: v.SequenceNumber,
		Seeding:        v.InitialSeeding.Ordered(),
	}
}

type playerSummaryDTO struct {
	ID                int64  `json:"id"`
	Slug              string `json:"slug"`
	Name              string `json:"name"`
	Gender            string `json:"gender"`
	City              string `json:"city,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

type playerPageDTO struct {
	Players []playerSummaryDTO `json:"players"`
	Total   int                `json:"total"`
}

func playerPageToDTO(v player.Page) playerPageDTO {
	out := playerPageDTO{Players: make([]playerSummaryDTO, 0, len(v.Players)), Total: v.Total}
	for _, p := range v.Players {
		out.Players = append(out.Players, playerSummaryDTO{
			ID:                p.ID,
			Slug:              p.Slug,
			Name:              p.Name,
			Gender:            p.Gender.Label(),
			City:              p.City,
			ProfilePictureURL: p.ProfilePictureURL,
		})
	}
	return out
}

type registrationDTO struct {
	ID           int64   `json:"id"`
	TournamentID int64   `json:"tournament_id"`
	Team         teamDTO `json:"team"`
	Name         string  `json:"name"`
	Gender       string  `json:"gender"`
	Badge        string  `json:"badge,omitempty"`
}

func registrationsToDTO(items []player.Registration) []registrationDTO {
	out := make([]registrationDTO, 0, len(items))
	for _, r := range items {
		name := r.Person.FirstName
		if r.Person.LastName != "" {
			name += " " + r.Person.LastName
		}
		out = append(out, registrationDTO{
			ID:           r.ID,
			TournamentID: r.TournamentID,
			Team:         teamToDTO(r.Team),
			Name:         name,
			Gender:       r.Person.Gender.Label(),
			Badge:        r.Role.Badge(),
		})
	}
	return out
}

type playerDTO struct {
	ID                int64             `json:"id"`
	Slug              string            `json:"slug"`
	Name              string            `json:"name"`
	Gender            string            `json:"gender"`
	MatchUp           string            `json:"match_up"`
	PreferredRole     string            `json:"preferred_role"`
	ThrowingHand      string            `json:"throwing_hand"`
	City              string            `json:"city,omitempty"`
	ProfilePictureURL string            `json:"profile_picture_url,omitempty"`
	Registrations     []registrationDTO `json:"registrations"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:                v.ID,
		Slug:              v.Slug,
		Name:              v.FullName(),
		Gender:            v.Gender.Label(),
		MatchUp:           v.MatchUpLabel(),
		PreferredRole:     v.PreferredRole.Label(),
		ThrowingHand:      v.ThrowingHand.Label(),
		City:              v.City,
		ProfilePictureURL: v.ProfilePictureURL,
		Registrations:     registrationsToDTO(v.Registrations),
	}
}

type teamPageDTO struct {
	Team    teamDTO           `json:"team"`
	Players []registrationDTO `json:"players"`
	Staff   []registrationDTO `json:"staff"`
	Matches []matchDTO        `json:"matches"`
}

func teamPageToDTO(v usecase.TeamPage, now time.Time) teamPageDTO {
	return teamPageDTO{
		Team:    teamToDTO(v.Team),
		Players: registrationsToDTO(v.Roster.Players),
		Staff:   registrationsToDTO(v.Roster.Staff),
		Matches: matchesToDTO(v.Matches, now),
	}
}

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
	IsStaff  bool   `json:"is_staff"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:       v.ID,
		Username: v.Username,
		Email:    v.Email,
		Name:     v.FullName(),
		IsStaff:  v.IsStaff,
	}
}

type accessDTO struct {
	AdminTeamIDs          []int64 `json:"admin_team_ids"`
	IsStaff               bool    `json:"is_staff"`
	IsTournamentAdmin     bool    `json:"is_tournament_admin"`
	IsTournamentVolunteer bool    `json:"is_tournament_volunteer"`
	PlayingTeamID         int64   `json:"playing_team_id,omitempty"`
	IsOfficial            bool    `json:"is_official"`
}

func accessToDTO(v user.Access) accessDTO {
	ids := v.AdminTeamIDs
	if ids == nil {
		ids = []int64{}
	}
	return accessDTO{
		AdminTeamIDs:          ids,
		IsStaff:               v.IsStaff,
		IsTournamentAdmin:     v.IsTournamentAdmin,
		IsTournamentVolunteer: v.IsTournamentVolunteer,
		PlayingTeamID:         v.PlayingTeamID,
		IsOfficial:            v.IsOfficial(),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
