package tournament

// TournamentError is a custom error type for tournament-related errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTournamentNotFound      TournamentError = "tournament not found"
	ErrTournamentAlreadyExists TournamentError = "a tournament is already running in this channel"
	ErrInvalidTournamentState  TournamentError = "invalid tournament state"
	ErrAlreadyEntered          TournamentError = "player already entered this tournament"
	ErrEntrantNotFound         TournamentError = "player did not enter this tournament"
	ErrTournamentFull          TournamentError = "tournament is at maximum capacity"
	ErrNotEnoughEntrants       TournamentError = "a tournament needs at least two entrants"
	ErrNilInput                TournamentError = "input cannot be nil"
	ErrEmptyChannel            TournamentError = "channel ID cannot be empty"
	ErrEmptyPlayer             TournamentError = "player ID cannot be empty"
	ErrNilConfig               TournamentError = "config cannot be nil"
	ErrNilParticipantService   TournamentError = "participant service cannot be nil"
	ErrNilTournamentRepo       TournamentError = "tournament repository cannot be nil"
	ErrNilMatchRepo            TournamentError = "match repository cannot be nil"
	ErrNilClock                TournamentError = "clock cannot be nil"
	ErrNilUUIDGenerator        TournamentError = "UUID generator cannot be nil"
)
