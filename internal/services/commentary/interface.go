package commentary

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/torneio/internal/services/commentary Service

import "context"

// Service is the interface for the commentary service
type Service interface {
	// GetMatchMessage returns a line describing how a match was decided
	GetMatchMessage(ctx context.Context, input *GetMatchMessageInput) (*GetMatchMessageOutput, error)

	// GetByeMessage returns a line for a participant advancing without a match
	GetByeMessage(ctx context.Context, input *GetByeMessageInput) (*GetByeMessageOutput, error)

	// GetChampionMessage returns a line crowning the tournament winner
	GetChampionMessage(ctx context.Context, input *GetChampionMessageInput) (*GetChampionMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
