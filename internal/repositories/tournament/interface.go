package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/torneio/internal/repositories/tournament Repository

import (
	"context"

	"github.com/KirkDiggler/torneio/internal/models"
)

// Repository defines the interface for tournament data persistence
type Repository interface {
	// SaveTournament persists a tournament
	SaveTournament(ctx context.Context, input *SaveTournamentInput) error

	// GetTournament retrieves a tournament by ID
	GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error)

	// GetTournamentByChannel retrieves the latest tournament of a channel
	GetTournamentByChannel(ctx context.Context, input *GetTournamentByChannelInput) (*models.Tournament, error)

	// DeleteTournament removes a tournament
	DeleteTournament(ctx context.Context, input *DeleteTournamentInput) error

	// GetActiveTournaments retrieves all open or running tournaments
	GetActiveTournaments(ctx context.Context, input *GetActiveTournamentsInput) (*GetActiveTournamentsOutput, error)
}
