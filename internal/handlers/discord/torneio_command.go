package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/torneio/internal/models"
	"github.com/KirkDiggler/torneio/internal/services/commentary"
	"github.com/KirkDiggler/torneio/internal/services/tournament"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ButtonShowStandings is attached to the bracket once a tournament completes
const ButtonShowStandings = "show_standings"

var minSkill = float64(0)

// TorneioCommand handles the /torneio command
type TorneioCommand struct {
	BaseCommand
	tournamentService   tournament.Service
	commentaryService   commentary.Service
	defaultRegeneration uint
}

// NewTorneioCommand creates a new torneio command handler
func NewTorneioCommand(tournamentService tournament.Service, commentaryService commentary.Service, defaultRegeneration uint) *TorneioCommand {
	return &TorneioCommand{
		BaseCommand: BaseCommand{
			Name:        "torneio",
			Description: "Knockout tournament commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Open a new tournament in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "enter",
					Description: "Enter the open tournament",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "skill",
							Description: "Your starting skill",
							Required:    true,
							MinValue:    &minSkill,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "run",
					Description: "Play the whole bracket",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "regeneration",
							Description: fmt.Sprintf("Skill a winner recovers after each match (default %d)", defaultRegeneration),
							MinValue:    &minSkill,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "standings",
					Description: "Show the final ranking",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show the matches a fighter played",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Whose matches to show (default you)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Abandon the tournament in this channel",
				},
			},
		},
		tournamentService:   tournamentService,
		commentaryService:   commentaryService,
		defaultRegeneration: defaultRegeneration,
	}
}

// Handle processes a Discord interaction for the torneio command
func (c *TorneioCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	userID, username := interactionUser(i)

	switch sub.Name {
	case "create":
		return c.handleCreate(ctx, s, i, userID)
	case "enter":
		skill, _ := intOption(sub.Options, "skill")
		return c.handleEnter(ctx, s, i, userID, username, skill)
	case "run":
		regeneration := c.defaultRegeneration
		if value, ok := intOption(sub.Options, "regeneration"); ok {
			regeneration = value
		}
		return c.handleRun(ctx, s, i, regeneration)
	case "standings":
		return c.handleStandings(ctx, s, i)
	case "history":
		playerID := userID
		if value, ok := userOption(sub.Options, "player"); ok {
			playerID = value
		}
		return c.handleHistory(ctx, s, i, playerID)
	case "abandon":
		return c.handleAbandon(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// intOption reads a non-negative integer option
func intOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (uint, bool) {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			value := opt.IntValue()
			if value < 0 {
				return 0, true
			}
			return uint(value), true
		}
	}
	return 0, false
}

// userOption reads the ID of a user option
func userOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionUser {
			if id, ok := opt.Value.(string); ok && id != "" {
				return id, true
			}
		}
	}
	return "", false
}

func (c *TorneioCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.tournamentService.CreateTournament(ctx, &tournament.CreateTournamentInput{
		ChannelID: i.ChannelID,
		CreatorID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "create tournament", err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderTournamentEmbed(output.Tournament)}, nil)
}

func (c *TorneioCommand) handleEnter(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, skill uint) error {
	current, err := c.tournamentService.GetTournamentByChannel(ctx, &tournament.GetTournamentByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "find tournament", err)
	}

	output, err := c.tournamentService.EnterTournament(ctx, &tournament.EnterTournamentInput{
		TournamentID: current.Tournament.ID,
		PlayerID:     userID,
		PlayerName:   username,
		Skill:        skill,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "enter tournament", err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("**%s** enters as seed #%d with %d skill. %d in the bracket so far.",
		username, output.Entrant.Seed, output.Entrant.Skill, output.EntrantCount))
}

func (c *TorneioCommand) handleRun(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, regeneration uint) error {
	current, err := c.tournamentService.GetTournamentByChannel(ctx, &tournament.GetTournamentByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "find tournament", err)
	}

	output, err := c.tournamentService.RunTournament(ctx, &tournament.RunTournamentInput{
		TournamentID: current.Tournament.ID,
		Regeneration: regeneration,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "run tournament", err)
	}

	bracket, err := renderBracketEmbed(ctx, c.commentaryService, output.Tournament)
	if err != nil {
		return RespondWithError(s, i, "Failed to render the bracket.")
	}

	champion, err := renderChampionEmbed(ctx, c.commentaryService, output.Tournament, output.Champion)
	if err != nil {
		return RespondWithError(s, i, "Failed to render the champion.")
	}

	standingsButton := discordgo.Button{
		Label:    "Standings",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonShowStandings,
		Emoji: &discordgo.ComponentEmoji{
			Name: "📊",
		},
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{bracket, champion}, []discordgo.MessageComponent{standingsButton})
}

func (c *TorneioCommand) handleStandings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.tournamentService.GetTournamentByChannel(ctx, &tournament.GetTournamentByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "find tournament", err)
	}

	// Before the bracket is played there is no ranking, only the lobby
	if current.Tournament.Status != models.TournamentStatusCompleted {
		return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderTournamentEmbed(current.Tournament)}, nil)
	}

	output, err := c.tournamentService.GetStandings(ctx, &tournament.GetStandingsInput{
		TournamentID: current.Tournament.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "get standings", err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderStandingsEmbed(output.Leaderboard)}, nil)
}

func (c *TorneioCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, playerID string) error {
	current, err := c.tournamentService.GetTournamentByChannel(ctx, &tournament.GetTournamentByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "find tournament", err)
	}

	output, err := c.tournamentService.GetEntrantHistory(ctx, &tournament.GetEntrantHistoryInput{
		TournamentID: current.Tournament.ID,
		PlayerID:     playerID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "get history", err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderHistoryEmbed(output.Tournament, output.Entrant, output.Matches)}, nil)
}

func (c *TorneioCommand) handleAbandon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.tournamentService.GetTournamentByChannel(ctx, &tournament.GetTournamentByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "find tournament", err)
	}

	output, err := c.tournamentService.AbandonTournament(ctx, &tournament.AbandonTournamentInput{
		TournamentID: current.Tournament.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, "abandon tournament", err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Tournament abandoned, %d fighters sent home. Start another with `/torneio create`.", output.Released))
}

// respondWithServiceError turns a service error into a friendly ephemeral reply.
// Unexpected errors are logged.
func (c *TorneioCommand) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) error {
	errorType := errorTypeFor(err)
	if errorType == commentary.ErrorTypeUnknown {
		log.WithError(err).WithFields(log.Fields{
			"action":  action,
			"channel": i.ChannelID,
		}).Error("tournament command failed")
	}

	output, msgErr := c.commentaryService.GetErrorMessage(ctx, &commentary.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if msgErr != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to %s: %v", action, err))
	}

	return RespondWithError(s, i, output.Message)
}

// errorTypeFor maps tournament service errors to the messages players see
func errorTypeFor(err error) commentary.ErrorType {
	switch {
	case errors.Is(err, tournament.ErrTournamentAlreadyExists):
		return commentary.ErrorTypeTournamentExists
	case errors.Is(err, tournament.ErrTournamentNotFound):
		return commentary.ErrorTypeNoTournament
	case errors.Is(err, tournament.ErrAlreadyEntered):
		return commentary.ErrorTypeAlreadyEntered
	case errors.Is(err, tournament.ErrEntrantNotFound):
		return commentary.ErrorTypeNotEntered
	case errors.Is(err, tournament.ErrTournamentFull):
		return commentary.ErrorTypeTournamentFull
	case errors.Is(err, tournament.ErrNotEnoughEntrants):
		return commentary.ErrorTypeNotEnoughEntrants
	case errors.Is(err, tournament.ErrInvalidTournamentState):
		return commentary.ErrorTypeInvalidState
	default:
		return commentary.ErrorTypeUnknown
	}
}
