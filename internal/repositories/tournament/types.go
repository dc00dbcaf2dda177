package tournament

import "github.com/KirkDiggler/torneio/internal/models"

type SaveTournamentInput struct {
	Tournament *models.Tournament
}

type GetTournamentInput struct {
	TournamentID string
}

type GetTournamentByChannelInput struct {
	ChannelID string
}

type DeleteTournamentInput struct {
	TournamentID string
}

type GetActiveTournamentsInput struct {
}

type GetActiveTournamentsOutput struct {
	Tournaments []*models.Tournament
}
