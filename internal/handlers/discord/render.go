package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/torneio/internal/models"
	"github.com/KirkDiggler/torneio/internal/services/commentary"
	"github.com/bwmarrin/discordgo"
)

// Discord rejects embed field values longer than this
const maxFieldValue = 1024

// renderTournamentEmbed renders the lobby view of a tournament
func renderTournamentEmbed(t *models.Tournament) *discordgo.MessageEmbed {
	var description string
	switch t.Status {
	case models.TournamentStatusOpen:
		description = "Entries are open! Join with `/torneio enter skill:<number>`, then start it with `/torneio run`."
	case models.TournamentStatusRunning:
		description = "The bracket is being played."
	case models.TournamentStatusCompleted:
		description = fmt.Sprintf("Finished. Champion: **%s**", entrantName(t, t.ChampionHandle))
	}

	var entrants strings.Builder
	for _, e := range t.Entrants {
		entrants.WriteString(fmt.Sprintf("`#%d` %s (skill %d)\n", e.Seed, e.Name, e.Skill))
	}
	if len(t.Entrants) == 0 {
		entrants.WriteString("No entrants yet.")
	}

	return &discordgo.MessageEmbed{
		Title:       "⚔️ Tournament",
		Description: description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("Entrants (%d)", len(t.Entrants)),
				Value: truncateField(entrants.String()),
			},
		},
	}
}

// renderBracketEmbed renders one field per played round with commentary for every match
func renderBracketEmbed(ctx context.Context, commentaryService commentary.Service, t *models.Tournament) (*discordgo.MessageEmbed, error) {
	// Skill going into the next match, replayed from the bracket
	skill := make(map[string]uint, len(t.Entrants))
	for _, e := range t.Entrants {
		skill[e.Handle] = e.Skill
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(t.Rounds))
	for _, round := range t.Rounds {
		var lines strings.Builder

		for _, p := range round.Pairings {
			loserHandle := p.FirstHandle
			if loserHandle == p.WinnerHandle {
				loserHandle = p.SecondHandle
			}

			line, err := commentaryService.GetMatchMessage(ctx, &commentary.GetMatchMessageInput{
				WinnerName:       entrantName(t, p.WinnerHandle),
				LoserName:        entrantName(t, loserHandle),
				WinnerSkill:      skill[p.WinnerHandle],
				LoserSkill:       skill[loserHandle],
				WinnerSkillAfter: p.WinnerSkillAfter,
				DecidedBy:        p.DecidedBy,
				RollOffRounds:    p.RollOffRounds,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to get match commentary: %w", err)
			}

			lines.WriteString(fmt.Sprintf("**%s** def. %s, %d left. %s\n",
				entrantName(t, p.WinnerHandle), entrantName(t, loserHandle), p.WinnerSkillAfter, line.Message))

			skill[p.WinnerHandle] = p.WinnerSkillAfter
		}

		if round.ByeHandle != "" {
			bye, err := commentaryService.GetByeMessage(ctx, &commentary.GetByeMessageInput{
				PlayerName: entrantName(t, round.ByeHandle),
				Round:      round.Number,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to get bye commentary: %w", err)
			}
			lines.WriteString(bye.Message)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Round %d", round.Number),
			Value: truncateField(lines.String()),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "🗡️ Bracket",
		Description: fmt.Sprintf("%d entrants, regeneration %d", len(t.Entrants), t.Regeneration),
		Color:       colorSuccess,
		Fields:      fields,
	}, nil
}

// renderChampionEmbed announces the winner of a completed tournament
func renderChampionEmbed(ctx context.Context, commentaryService commentary.Service, t *models.Tournament, champion *models.Participant) (*discordgo.MessageEmbed, error) {
	output, err := commentaryService.GetChampionMessage(ctx, &commentary.GetChampionMessageInput{
		ChampionName:   champion.DisplayName(),
		Wins:           champion.Wins,
		RemainingSkill: champion.Skill,
		EntrantCount:   len(t.Entrants),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get champion commentary: %w", err)
	}

	color := colorSuccess
	if output.Tone == commentary.ToneCelebration {
		color = colorGold
	}

	return &discordgo.MessageEmbed{
		Title:       output.Title,
		Description: output.Message,
		Color:       color,
	}, nil
}

// renderStandingsEmbed renders the final ranking of a tournament
func renderStandingsEmbed(leaderboard *models.Leaderboard) *discordgo.MessageEmbed {
	var description strings.Builder
	for _, standing := range leaderboard.Standings {
		marker := fmt.Sprintf("%d.", standing.Rank)
		if standing.Champion {
			marker = "🏆"
		}

		wins := "wins"
		if standing.Wins == 1 {
			wins = "win"
		}

		description.WriteString(fmt.Sprintf("%s **%s** (seed %d), %d %s\n",
			marker, standing.Entrant.Name, standing.Entrant.Seed, standing.Wins, wins))
	}

	return &discordgo.MessageEmbed{
		Title:       "📊 Standings",
		Description: description.String(),
		Color:       colorSuccess,
	}
}

// renderHistoryEmbed lists an entrant's matches, one line per match
func renderHistoryEmbed(t *models.Tournament, entrant *models.Entrant, matches []*models.Match) *discordgo.MessageEmbed {
	var description strings.Builder
	for _, m := range matches {
		result, opponent := "def.", m.LoserID()
		if m.WinnerID() != entrant.Seed {
			result, opponent = "lost to", m.WinnerID()
		}

		description.WriteString(fmt.Sprintf("R%d: %s **%s** (%d vs %d)", m.Round, result, seedName(t, opponent), m.FirstSkill, m.SecondSkill))
		if len(m.Rolls) > 0 {
			description.WriteString(fmt.Sprintf(", %d roll-off rounds", len(m.Rolls)))
		}
		description.WriteString("\n")
	}
	if len(matches) == 0 {
		description.WriteString("No matches played yet.")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📜 %s", entrantName(t, entrant.Handle)),
		Description: description.String(),
		Color:       colorSuccess,
	}
}

// seedName returns the display name of the entrant with the given seed
func seedName(t *models.Tournament, seed uint) string {
	for _, e := range t.Entrants {
		if e.Seed == seed {
			return entrantName(t, e.Handle)
		}
	}
	return "unknown"
}

// entrantName returns the display name of the entrant behind a handle
func entrantName(t *models.Tournament, handle string) string {
	e := t.GetEntrant(handle)
	if e == nil {
		return "unknown"
	}

	if e.Name == "" {
		return fmt.Sprintf("#%d", e.Seed)
	}

	return e.Name
}

func truncateField(value string) string {
	if value == "" {
		return "-"
	}

	runes := []rune(value)
	if len(runes) <= maxFieldValue {
		return value
	}

	return string(runes[:maxFieldValue-1]) + "…"
}
