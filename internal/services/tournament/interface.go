package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/torneio/internal/services/tournament Service

import "context"

// Service defines the interface for tournament operations
type Service interface {
	// CreateTournament opens a tournament in a Discord channel
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error)

	// EnterTournament adds a player to an open tournament
	EnterTournament(ctx context.Context, input *EnterTournamentInput) (*EnterTournamentOutput, error)

	// RunTournament plays the whole bracket and crowns a champion
	RunTournament(ctx context.Context, input *RunTournamentInput) (*RunTournamentOutput, error)

	// GetTournament retrieves a tournament by ID
	GetTournament(ctx context.Context, input *GetTournamentInput) (*GetTournamentOutput, error)

	// GetTournamentByChannel retrieves the latest tournament of a channel
	GetTournamentByChannel(ctx context.Context, input *GetTournamentByChannelInput) (*GetTournamentOutput, error)

	// GetStandings ranks the entrants of a completed tournament
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// AbandonTournament releases every participant the tournament still holds and deletes it
	AbandonTournament(ctx context.Context, input *AbandonTournamentInput) (*AbandonTournamentOutput, error)

	// GetEntrantHistory lists the matches played by a player's entrant
	GetEntrantHistory(ctx context.Context, input *GetEntrantHistoryInput) (*GetEntrantHistoryOutput, error)

	// ReapStaleTournaments releases tournaments a previous process left running
	ReapStaleTournaments(ctx context.Context) (*ReapStaleTournamentsOutput, error)
}
