package tournament

// Result is a team's record inside a pool or position pool.
type Result struct {
	Wins         int
	Losses       int
	Draws        int
	GoalsFor     int
	GoalsAgainst int
	Rank         int
}

// Pool is a round-robin group. Position pools share the shape.
type Pool struct {
	ID             int64
	TournamentID   int64
	Name           string
	SequenceNumber int
	InitialSeeding Seeding
	Results        map[int64]Result
}

type CrossPool struct {
	ID             int64
	TournamentID   int64
	InitialSeeding Seeding
	CurrentSeeding Seeding
}

type Bracket struct {
	ID             int64
	TournamentID   int64
	Name           string
	SequenceNumber int
	InitialSeeding Seeding
	CurrentSeeding Seeding
}

// PoolInput creates a pool or a position pool.
type PoolInput struct {
	TournamentID   int64
	Name           string
	SequenceNumber int
	Seeding        []int64
}

type BracketInput struct {
	TournamentID   int64
	Name           string
	SequenceNumber int
}
