package participant

// ParticipantError is a custom error type for participant-related errors
type ParticipantError string

// Error implements the error interface
func (e ParticipantError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrParticipantNotFound ParticipantError = "participant not found"
	ErrNilInput            ParticipantError = "input cannot be nil"
	ErrEmptyHandle         ParticipantError = "participant handle cannot be empty"
	ErrSameParticipant     ParticipantError = "a participant cannot play a match against itself"
	ErrEmptyTournamentID   ParticipantError = "tournament ID cannot be empty"
	ErrNilConfig           ParticipantError = "config cannot be nil"
	ErrNilParticipantRepo  ParticipantError = "participant repository cannot be nil"
	ErrNilMatchRepo        ParticipantError = "match repository cannot be nil"
	ErrNilDiceRoller       ParticipantError = "dice roller cannot be nil"
	ErrNilClock            ParticipantError = "clock cannot be nil"
	ErrNilUUIDGenerator    ParticipantError = "UUID generator cannot be nil"
)
