package models

import (
	"time"
)

// DecidedBy records what settled a match
type DecidedBy string

const (
	// DecidedBySkill indicates the participant with more skill won
	DecidedBySkill DecidedBy = "skill"

	// DecidedByRollOff indicates equal skill settled by dice
	DecidedByRollOff DecidedBy = "roll_off"

	// DecidedByID indicates the roll-off stayed tied and the lower ID won
	DecidedByID DecidedBy = "id"
)

// Match records the outcome of a single encounter
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// Sequence orders matches globally
	Sequence int64

	// TournamentID is the tournament the match belongs to, if any
	TournamentID string

	// Round is the 1-based tournament round, 0 outside tournaments
	Round int

	// FirstHandle and SecondHandle identify the participants in argument order
	FirstHandle  string
	SecondHandle string

	// FirstID and SecondID are the participants' external IDs
	FirstID  uint
	SecondID uint

	// FirstSkill and SecondSkill are the skills going into the match
	FirstSkill  uint
	SecondSkill uint

	// WinnerHandle is the surviving participant
	WinnerHandle string

	// LoserHandle is the participant destroyed by the match
	LoserHandle string

	// WinnerSkillAfter is the winner's skill after damage and regeneration
	WinnerSkillAfter uint

	// Regeneration is the skill recovered by the winner
	Regeneration uint

	// DecidedBy is what settled the match
	DecidedBy DecidedBy

	// Rolls holds the roll-off history, empty unless skills were equal
	Rolls []Roll

	// PlayedAt is when the match was played
	PlayedAt time.Time
}

// WinnerID returns the external ID of the winner
func (m *Match) WinnerID() uint {
	if m.WinnerHandle == m.FirstHandle {
		return m.FirstID
	}
	return m.SecondID
}

// LoserID returns the external ID of the loser
func (m *Match) LoserID() uint {
	if m.LoserHandle == m.FirstHandle {
		return m.FirstID
	}
	return m.SecondID
}
