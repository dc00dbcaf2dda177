package models

import (
	"fmt"
	"time"
)

// Participant is one contestant. The Handle is the key of the lookup table and the only way
// services refer to a participant; the ID is assigned by whoever constructs it.
type Participant struct {
	// Handle is the opaque identifier issued when the participant is constructed
	Handle string

	// ID is the externally assigned identifier; it never changes
	ID uint

	// Skill is the current combat strength
	Skill uint

	// MaxSkill is the skill at construction, the ceiling for regeneration
	MaxSkill uint

	// Wins is the number of matches won
	Wins uint

	// Name is the display name of the participant, if any
	Name string

	// PlayerID is the Discord user ID behind the participant, if any
	PlayerID string

	// TournamentID is the tournament that owns the participant, if any
	TournamentID string

	// CreatedAt is when the participant was constructed
	CreatedAt time.Time
}

// DisplayName returns the name, falling back to the numeric ID
func (p *Participant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}

	return fmt.Sprintf("#%d", p.ID)
}
