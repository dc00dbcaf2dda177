package participant

import (
	"github.com/KirkDiggler/torneio/internal/common/clock"
	"github.com/KirkDiggler/torneio/internal/common/uuid"
	"github.com/KirkDiggler/torneio/internal/dice"
	"github.com/KirkDiggler/torneio/internal/models"
	matchRepo "github.com/KirkDiggler/torneio/internal/repositories/match"
	participantRepo "github.com/KirkDiggler/torneio/internal/repositories/participant"
)

const (
	// DefaultDiceSides is the die used for roll-offs when none is configured
	DefaultDiceSides = 6

	// DefaultMaxRollOffRounds bounds a roll-off before falling back to the lower ID
	DefaultMaxRollOffRounds = 10
)

// Config holds configuration for the participant service
type Config struct {
	// Number of sides on the roll-off die
	DiceSides int

	// Maximum number of tied roll-off rounds before the lower ID wins
	MaxRollOffRounds int

	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	MatchRepo       matchRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ConstructInput contains parameters for constructing a participant
type ConstructInput struct {
	// ID is the externally assigned identifier
	ID uint

	// Skill is the starting combat strength
	Skill uint

	// Name is an optional display name
	Name string

	// PlayerID is an optional Discord user ID
	PlayerID string

	// TournamentID is the optional owning tournament
	TournamentID string
}

// ConstructOutput contains the constructed participant
type ConstructOutput struct {
	Participant *models.Participant
}

// DestroyInput contains parameters for destroying a participant
type DestroyInput struct {
	Handle string
}

// DestroyOutput contains the final state of the destroyed participant
type DestroyOutput struct {
	Participant *models.Participant
}

// MatchInput contains parameters for playing a match
type MatchInput struct {
	// Handle1 is the first participant
	Handle1 string

	// Handle2 is the second participant
	Handle2 string

	// Regeneration is the skill the winner recovers after the match
	Regeneration uint

	// TournamentID tags the match record, optional
	TournamentID string

	// Round tags the match record, optional
	Round int
}

// MatchOutput contains the result of a match
type MatchOutput struct {
	// Winner is the surviving participant after damage and regeneration
	Winner *models.Participant

	// Loser is the last state of the destroyed participant
	Loser *models.Participant

	// Match is the recorded match
	Match *models.Match
}

// GetIDInput contains parameters for reading a participant's ID
type GetIDInput struct {
	Handle string
}

// GetIDOutput contains the participant's ID
type GetIDOutput struct {
	ID uint
}

// GetParticipantInput contains parameters for reading a participant
type GetParticipantInput struct {
	Handle string
}

// GetParticipantOutput contains the participant
type GetParticipantOutput struct {
	Participant *models.Participant
}

// ListParticipantsInput contains parameters for listing a tournament's participants
type ListParticipantsInput struct {
	TournamentID string
}

// ListParticipantsOutput contains the live participants of a tournament
type ListParticipantsOutput struct {
	Participants []*models.Participant
}
