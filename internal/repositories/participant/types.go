package participant

import "github.com/KirkDiggler/torneio/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	Handle string
}

// DeleteParticipantInput contains parameters for deleting a participant
type DeleteParticipantInput struct {
	Handle string
}

// SettleMatchInput contains the result of a match to persist
type SettleMatchInput struct {
	// Winner is the winner with its updated skill and wins
	Winner *models.Participant

	// LoserHandle is the participant to delete
	LoserHandle string
}

// GetParticipantsInTournamentInput contains parameters for listing a tournament's participants
type GetParticipantsInTournamentInput struct {
	TournamentID string
}

// GetParticipantsInTournamentOutput contains the participants of a tournament
type GetParticipantsInTournamentOutput struct {
	Participants []*models.Participant
}
