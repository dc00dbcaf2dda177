package tournament

import (
	"github.com/KirkDiggler/torneio/internal/common/clock"
	"github.com/KirkDiggler/torneio/internal/common/uuid"
	"github.com/KirkDiggler/torneio/internal/models"
	matchRepo "github.com/KirkDiggler/torneio/internal/repositories/match"
	tournamentRepo "github.com/KirkDiggler/torneio/internal/repositories/tournament"
	"github.com/KirkDiggler/torneio/internal/services/participant"
)

// DefaultMaxEntrants caps a tournament when no limit is configured
const DefaultMaxEntrants = 64

// Config holds configuration for the tournament service
type Config struct {
	// Maximum number of entrants per tournament
	MaxEntrants int

	// Repository dependencies
	TournamentRepo tournamentRepo.Repository
	MatchRepo      matchRepo.Repository

	// Service dependencies
	ParticipantService participant.Service
	Clock              clock.Clock
	UUIDGenerator      uuid.UUID
}

// CreateTournamentInput contains parameters for creating a tournament
type CreateTournamentInput struct {
	// ChannelID is the Discord channel hosting the tournament
	ChannelID string

	// CreatorID is the Discord user creating the tournament
	CreatorID string
}

// CreateTournamentOutput contains the created tournament
type CreateTournamentOutput struct {
	Tournament *models.Tournament
}

// EnterTournamentInput contains parameters for entering a tournament
type EnterTournamentInput struct {
	// TournamentID is the tournament to enter
	TournamentID string

	// PlayerID is the Discord user ID of the entrant
	PlayerID string

	// PlayerName is the display name of the entrant
	PlayerName string

	// Skill is the entrant's starting skill
	Skill uint
}

// EnterTournamentOutput contains the new entrant
type EnterTournamentOutput struct {
	Entrant *models.Entrant

	// EntrantCount is the number of entrants after joining
	EntrantCount int
}

// RunTournamentInput contains parameters for running a tournament
type RunTournamentInput struct {
	// TournamentID is the tournament to run
	TournamentID string

	// Regeneration is passed to every match
	Regeneration uint
}

// RunTournamentOutput contains the played tournament
type RunTournamentOutput struct {
	// Tournament is the completed tournament with its rounds
	Tournament *models.Tournament

	// Champion is the surviving participant
	Champion *models.Participant
}

// GetTournamentInput contains parameters for retrieving a tournament
type GetTournamentInput struct {
	TournamentID string
}

// GetTournamentByChannelInput contains parameters for retrieving a channel's tournament
type GetTournamentByChannelInput struct {
	ChannelID string
}

// GetTournamentOutput contains a tournament
type GetTournamentOutput struct {
	Tournament *models.Tournament
}

// GetStandingsInput contains parameters for ranking a tournament
type GetStandingsInput struct {
	TournamentID string
}

// GetStandingsOutput contains the ranking
type GetStandingsOutput struct {
	Leaderboard *models.Leaderboard
}

// AbandonTournamentInput contains parameters for abandoning a tournament
type AbandonTournamentInput struct {
	TournamentID string
}

// AbandonTournamentOutput contains the result of abandoning a tournament
type AbandonTournamentOutput struct {
	// Released is the number of participants destroyed
	Released int
}

// GetEntrantHistoryInput contains parameters for listing an entrant's matches
type GetEntrantHistoryInput struct {
	TournamentID string

	// PlayerID is the Discord user ID of the entrant
	PlayerID string
}

// GetEntrantHistoryOutput contains an entrant's matches
type GetEntrantHistoryOutput struct {
	Tournament *models.Tournament
	Entrant    *models.Entrant

	// Matches are ordered by sequence
	Matches []*models.Match
}

// ReapStaleTournamentsOutput contains the result of reaping interrupted tournaments
type ReapStaleTournamentsOutput struct {
	// Reaped is the number of running tournaments deleted
	Reaped int

	// Released is the number of participants destroyed across them
	Released int

	// Open is the number of open tournaments left untouched
	Open int
}
