package match

import "github.com/KirkDiggler/torneio/internal/models"

// AddMatchInput contains parameters for recording a match
type AddMatchInput struct {
	Match *models.Match
}

// GetMatchesByTournamentInput contains parameters for listing a tournament's matches
type GetMatchesByTournamentInput struct {
	TournamentID string
}

// GetMatchesByParticipantInput contains parameters for listing a participant's matches
type GetMatchesByParticipantInput struct {
	Handle string
}

// GetMatchesOutput contains matches ordered by sequence
type GetMatchesOutput struct {
	Matches []*models.Match
}

// DeleteTournamentMatchesInput contains parameters for removing a tournament's matches
type DeleteTournamentMatchesInput struct {
	TournamentID string
}
