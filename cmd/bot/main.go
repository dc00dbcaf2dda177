package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/torneio/internal/common/clock"
	"github.com/KirkDiggler/torneio/internal/common/uuid"
	"github.com/KirkDiggler/torneio/internal/config"
	"github.com/KirkDiggler/torneio/internal/dice"
	"github.com/KirkDiggler/torneio/internal/handlers/discord"
	"github.com/KirkDiggler/torneio/internal/repositories/match"
	"github.com/KirkDiggler/torneio/internal/repositories/participant"
	"github.com/KirkDiggler/torneio/internal/repositories/tournament"
	"github.com/KirkDiggler/torneio/internal/services/commentary"
	participantService "github.com/KirkDiggler/torneio/internal/services/participant"
	tournamentService "github.com/KirkDiggler/torneio/internal/services/tournament"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := cfg.Level()
	if err != nil {
		log.WithError(err).Warn("falling back to info logging")
	}
	log.SetLevel(level)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	participantRepo, err := participant.NewRedis(&participant.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	matchRepo, err := match.NewRedis(&match.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create match repository: %v", err)
	}

	tournamentRepo, err := tournament.NewRedis(&tournament.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create tournament repository: %v", err)
	}

	systemClock := clock.New()
	uuidGenerator := uuid.New()

	participantSvc, err := participantService.New(&participantService.Config{
		DiceSides:        cfg.DiceSides,
		MaxRollOffRounds: cfg.MaxRollOffRounds,
		ParticipantRepo:  participantRepo,
		MatchRepo:        matchRepo,
		DiceRoller:       dice.New(&dice.Config{}),
		Clock:            systemClock,
		UUIDGenerator:    uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create participant service: %v", err)
	}

	tournamentSvc, err := tournamentService.New(&tournamentService.Config{
		MaxEntrants:        cfg.MaxEntrants,
		TournamentRepo:     tournamentRepo,
		MatchRepo:          matchRepo,
		ParticipantService: participantSvc,
		Clock:              systemClock,
		UUIDGenerator:      uuidGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create tournament service: %v", err)
	}

	commentarySvc, err := commentary.New(&commentary.Config{})
	if err != nil {
		log.Fatalf("Failed to create commentary service: %v", err)
	}

	reaped, err := tournamentSvc.ReapStaleTournaments(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to reap interrupted tournaments")
	} else {
		log.WithFields(log.Fields{
			"reaped":   reaped.Reaped,
			"released": reaped.Released,
			"open":     reaped.Open,
		}).Info("resuming with open tournaments")
	}

	bot, err := discord.New(&discord.Config{
		Token:               cfg.DiscordToken,
		ApplicationID:       cfg.ApplicationID,
		GuildID:             cfg.GuildID,
		DefaultRegeneration: cfg.DefaultRegeneration,
		TournamentService:   tournamentSvc,
		CommentaryService:   commentarySvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("error stopping bot")
	}

	if err := redisClient.Close(); err != nil {
		log.WithError(err).Error("error closing Redis client")
	}

	log.Info("Bot has been shut down")
}
