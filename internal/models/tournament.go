package models

import (
	"time"
)

// TournamentStatus represents the current state of a tournament
type TournamentStatus string

const (
	// TournamentStatusOpen indicates a tournament is accepting entrants
	TournamentStatusOpen TournamentStatus = "open"

	// TournamentStatusRunning indicates the bracket is being played
	TournamentStatusRunning TournamentStatus = "running"

	// TournamentStatusCompleted indicates a champion has been decided
	TournamentStatusCompleted TournamentStatus = "completed"
)

// IsOpen reports whether entrants can still join
func (s TournamentStatus) IsOpen() bool {
	return s == TournamentStatusOpen
}

// IsActive reports whether the tournament still occupies its channel
func (s TournamentStatus) IsActive() bool {
	return s == TournamentStatusOpen || s == TournamentStatusRunning
}

// Entrant is a seeded participant in a tournament
type Entrant struct {
	// Seed is the 1-based entry order, also used as the participant ID
	Seed uint

	// Handle is the participant handle
	Handle string

	// PlayerID is the Discord user ID of the entrant
	PlayerID string

	// Name is the display name of the entrant
	Name string

	// Skill is the skill the entrant started with
	Skill uint

	// EliminatedInRound is the round the entrant lost in, 0 while alive
	EliminatedInRound int
}

// Pairing is one match slot in a round
type Pairing struct {
	// FirstHandle and SecondHandle are the paired participants
	FirstHandle  string
	SecondHandle string

	// MatchID is the recorded match
	MatchID string

	// WinnerHandle is the participant that advanced
	WinnerHandle string

	// WinnerSkillAfter is the winner's skill going into the next round
	WinnerSkillAfter uint

	// DecidedBy is what settled the match
	DecidedBy DecidedBy

	// RollOffRounds is the number of tied-skill roll-off rounds played
	RollOffRounds int
}

// Round is one stage of the bracket
type Round struct {
	// Number is the 1-based round number
	Number int

	// Pairings are the matches played in seed order
	Pairings []*Pairing

	// ByeHandle is the participant that advanced without playing, if any
	ByeHandle string
}

// Tournament is a single-elimination bracket played in a Discord channel
type Tournament struct {
	// ID is the unique identifier for the tournament
	ID string

	// ChannelID is the Discord channel hosting the tournament
	ChannelID string

	// CreatorID is the Discord user who created the tournament
	CreatorID string

	// Status is the current state of the tournament
	Status TournamentStatus

	// Entrants are the participants in seed order
	Entrants []*Entrant

	// Regeneration is the value passed to every match
	Regeneration uint

	// Rounds holds the played bracket
	Rounds []*Round

	// ChampionHandle is the winner once completed
	ChampionHandle string

	// CreatedAt is when the tournament was created
	CreatedAt time.Time

	// UpdatedAt is when the tournament was last updated
	UpdatedAt time.Time
}

// GetEntrant returns the entrant with the given handle
func (t *Tournament) GetEntrant(handle string) *Entrant {
	for _, e := range t.Entrants {
		if e.Handle == handle {
			return e
		}
	}
	return nil
}

// GetEntrantByPlayer returns the entrant for a Discord user
func (t *Tournament) GetEntrantByPlayer(playerID string) *Entrant {
	for _, e := range t.Entrants {
		if e.PlayerID == playerID {
			return e
		}
	}
	return nil
}
