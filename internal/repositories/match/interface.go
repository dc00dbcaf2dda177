package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/torneio/internal/repositories/match Repository

import "context"

// Repository defines the interface for the match log
type Repository interface {
	// NextSequence reserves the next global match sequence number
	NextSequence(ctx context.Context) (int64, error)

	// AddMatch appends a match to the log
	AddMatch(ctx context.Context, input *AddMatchInput) error

	// GetMatchesByTournament retrieves the matches of a tournament in play order
	GetMatchesByTournament(ctx context.Context, input *GetMatchesByTournamentInput) (*GetMatchesOutput, error)

	// GetMatchesByParticipant retrieves the matches a participant played in play order
	GetMatchesByParticipant(ctx context.Context, input *GetMatchesByParticipantInput) (*GetMatchesOutput, error)

	// DeleteTournamentMatches removes every match of a tournament
	DeleteTournamentMatches(ctx context.Context, input *DeleteTournamentMatchesInput) error
}
