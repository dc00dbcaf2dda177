package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/torneio/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/torneio/internal/models"
)

// Repository is the lookup table mapping participant handles to participants
type Repository interface {
	// SaveParticipant creates or replaces a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by handle
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// DeleteParticipant removes a participant, invalidating its handle
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error

	// SettleMatch atomically stores the winner of a match and deletes the loser
	SettleMatch(ctx context.Context, input *SettleMatchInput) error

	// GetParticipantsInTournament retrieves every live participant of a tournament
	GetParticipantsInTournament(ctx context.Context, input *GetParticipantsInTournamentInput) (*GetParticipantsInTournamentOutput, error)
}
