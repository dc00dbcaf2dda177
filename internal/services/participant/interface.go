package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/torneio/internal/services/participant Service

import "context"

// Service manages participants through opaque handles
type Service interface {
	// Construct creates a participant with the given ID and skill and returns its handle
	Construct(ctx context.Context, input *ConstructInput) (*ConstructOutput, error)

	// Destroy releases a participant; the handle is invalid afterwards
	Destroy(ctx context.Context, input *DestroyInput) (*DestroyOutput, error)

	// Match plays two participants against each other and returns the winner.
	// The loser is destroyed.
	Match(ctx context.Context, input *MatchInput) (*MatchOutput, error)

	// GetID returns the external ID of a participant
	GetID(ctx context.Context, input *GetIDInput) (*GetIDOutput, error)

	// GetParticipant returns the full participant behind a handle
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*GetParticipantOutput, error)

	// ListParticipants returns every live participant tagged with a tournament
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)
}
