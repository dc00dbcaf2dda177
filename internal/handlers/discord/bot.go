package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/torneio/internal/services/commentary"
	"github.com/KirkDiggler/torneio/internal/services/tournament"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	torneio    *TorneioCommand
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Regeneration used when /torneio run is given none
	DefaultRegeneration uint

	TournamentService tournament.Service
	CommentaryService commentary.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.TournamentService == nil {
		return nil, errors.New("tournament service cannot be nil")
	}

	if cfg.CommentaryService == nil {
		return nil, errors.New("commentary service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		torneio:    NewTorneioCommand(cfg.TournamentService, cfg.CommentaryService, cfg.DefaultRegeneration),
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.torneio); err != nil {
		return fmt.Errorf("failed to register torneio command: %w", err)
	}

	log.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		logger := log.WithFields(log.Fields{
			"command": cmdName,
			"id":      cmdID,
		})

		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			logger.WithError(err).Error("failed to delete command")
		} else {
			logger.Info("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord.
// Commands are registered globally unless a guild ID is configured.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	log.WithFields(log.Fields{
		"command": cmd.GetName(),
		"id":      createdCmd.ID,
		"guild":   b.config.GuildID,
	}).Info("registered command")

	return nil
}

// applicationID falls back to the session user when no application ID is configured
func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.WithError(err).WithField("command", name).Error("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.WithError(err).Error("error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonShowStandings:
		return b.torneio.handleStandings(context.Background(), s, i)
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}
