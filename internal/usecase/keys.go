package usecase

import (
	"github.com/osu-ultimate/tournament-console/internal/domain/player"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
)

// Query keys. Prefixes are shared so a mutation can invalidate a whole
// family, e.g. every ["matches", ...] entry.
var (
	keyTournaments = cache.K("tournaments")
	keyTournament  = cache.K("tournament")
	keyMatches     = cache.K("matches")
	keyMatch       = cache.K("match")
	keyPools       = cache.K("pools")
	keyBrackets    = cache.K("brackets")
	keyPlayers     = cache.K("players")
	keyMe          = cache.K("me")
	keyAccess      = cache.K("access")
)

func tournamentBySlugKey(slug string) cache.Key { return cache.K("tournaments", slug) }
func tournamentByIDKey(id int64) cache.Key { return cache.K("tournament", id) }
func matchesKey(tournamentID int64) cache.Key { return cache.K("matches", tournamentID) }
func matchKey(id int64) cache.Key { return cache.K("match", id) }
func matchStatsKey(id int64) cache.Key { return cache.K("match", id, "stats") }
func fieldsKey(tournamentID int64) cache.Key { return cache.K("fields", tournamentID) }
func poolsKey(slug string) cache.Key { return cache.K("pools", slug) }
func crossPoolKey(tournamentID int64) cache.Key { return cache.K("cross-pools", tournamentID) }
func bracketsKey(slug string) cache.Key { return cache.K("brackets", slug) }
func positionPoolsKey(tournamentID int64) cache.Key { return cache.K("position-pools", tournamentID) }
func teamsKey() cache.Key { return cache.K("teams") }
func teamKey(slug string) cache.Key { return cache.K("team", slug) }
func playerKey(slug string) cache.Key { return cache.K("player", slug) }
func accessKey(slug string) cache.Key { return cache.K("access", slug) }

func teamMatchesKey(tournamentSlug, teamSlug string) cache.Key {
	return cache.K("matches", tournamentSlug, teamSlug)
}

func rosterKey(tournamentSlug, teamSlug string) cache.Key {
	return cache.K("roster", tournamentSlug, teamSlug)
}

func playersKey(filters player.Filters) cache.Key {
	return append(cache.K("players"), filters.CacheKey()...)
}

func teamPlayersKey(teamID int64, sort, order any) cache.Key {
	return cache.K("players", "by-team", teamID, sort, order)
}
