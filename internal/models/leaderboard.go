package models

// Standing is one row of a tournament's final ranking
type Standing struct {
	// Rank is the 1-based position; entrants knocked out in the same round share a rank
	Rank int

	// Entrant is the ranked entrant
	Entrant *Entrant

	// Wins is the number of matches the entrant won
	Wins int

	// Champion marks the tournament winner
	Champion bool
}

// Leaderboard represents the standings of a tournament
type Leaderboard struct {
	// TournamentID is the unique identifier for the tournament
	TournamentID string

	// Standings are ordered best first
	Standings []*Standing
}
