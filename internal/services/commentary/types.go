package commentary

import (
	"math/rand"

	"github.com/KirkDiggler/torneio/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneDramatic is used for close calls and roll-offs
	ToneDramatic MessageTone = "dramatic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType identifies which user-facing error to describe
type ErrorType string

const (
	ErrorTypeTournamentExists  ErrorType = "tournament_exists"
	ErrorTypeNoTournament      ErrorType = "no_tournament"
	ErrorTypeAlreadyEntered    ErrorType = "already_entered"
	ErrorTypeNotEntered        ErrorType = "not_entered"
	ErrorTypeTournamentFull    ErrorType = "tournament_full"
	ErrorTypeNotEnoughEntrants ErrorType = "not_enough_entrants"
	ErrorTypeInvalidState      ErrorType = "invalid_state"
	ErrorTypeUnknown           ErrorType = "unknown"
)

// Config contains configuration for the commentary service
type Config struct {
	// Rand picks lines; seeded from the clock when nil
	Rand *rand.Rand
}

// GetMatchMessageInput contains parameters for describing a match
type GetMatchMessageInput struct {
	WinnerName string
	LoserName  string

	// Skills going into the match
	WinnerSkill uint
	LoserSkill  uint

	// WinnerSkillAfter is the winner's skill after damage and regeneration
	WinnerSkillAfter uint

	// DecidedBy is what settled the match
	DecidedBy models.DecidedBy

	// RollOffRounds is the number of roll-off rounds played, if any
	RollOffRounds int
}

// GetMatchMessageOutput contains the generated match line
type GetMatchMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetByeMessageInput contains parameters for describing a bye
type GetByeMessageInput struct {
	PlayerName string
	Round      int
}

// GetByeMessageOutput contains the generated bye line
type GetByeMessageOutput struct {
	Message string
}

// GetChampionMessageInput contains parameters for crowning a champion
type GetChampionMessageInput struct {
	ChampionName string

	// Wins is the number of matches the champion won
	Wins uint

	// RemainingSkill is the champion's skill at the end
	RemainingSkill uint

	// EntrantCount is the size of the field
	EntrantCount int
}

// GetChampionMessageOutput contains the generated champion line
type GetChampionMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the generated error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
