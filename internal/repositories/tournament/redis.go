package tournament

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/torneio/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	tournamentKeyPrefix = "tournament:"
	channelKeyPrefix    = "channel_tournament:"
	activeKey           = "active_tournaments"
)

// ErrTournamentNotFound is returned when a tournament is not found
var ErrTournamentNotFound = errors.New("tournament not found")

// Config holds configuration for the Redis tournament repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tournament repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveTournament persists a tournament and keeps the channel and active indexes current
func (r *redisRepository) SaveTournament(ctx context.Context, input *SaveTournamentInput) error {
	if input == nil || input.Tournament == nil {
		return errors.New("input and tournament cannot be nil")
	}

	t := input.Tournament
	if t.ID == "" {
		return errors.New("tournament ID cannot be empty")
	}

	tournamentJSON, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tournament: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tournamentKey(t.ID), tournamentJSON, 0)

	if t.ChannelID != "" {
		pipe.Set(ctx, channelKey(t.ChannelID), t.ID, 0)
	}

	if t.Status.IsActive() {
		pipe.SAdd(ctx, activeKey, t.ID)
	} else {
		pipe.SRem(ctx, activeKey, t.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save tournament: %w", err)
	}

	return nil
}

// GetTournament retrieves a tournament by ID from Redis
func (r *redisRepository) GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	tournamentJSON, err := r.client.Get(ctx, tournamentKey(input.TournamentID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	var t models.Tournament
	if err := json.Unmarshal([]byte(tournamentJSON), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tournament: %w", err)
	}

	return &t, nil
}

// GetTournamentByChannel follows the channel pointer to the latest tournament
func (r *redisRepository) GetTournamentByChannel(ctx context.Context, input *GetTournamentByChannelInput) (*models.Tournament, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	tournamentID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament ID for channel: %w", err)
	}

	return r.GetTournament(ctx, &GetTournamentInput{
		TournamentID: tournamentID,
	})
}

// DeleteTournament removes a tournament and its indexes
func (r *redisRepository) DeleteTournament(ctx context.Context, input *DeleteTournamentInput) error {
	if input == nil || input.TournamentID == "" {
		return errors.New("input and tournament ID cannot be empty")
	}

	t, err := r.GetTournament(ctx, &GetTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, tournamentKey(t.ID))
	pipe.SRem(ctx, activeKey, t.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}

	// Only clear the channel pointer if a newer tournament has not replaced it
	if t.ChannelID != "" {
		current, err := r.client.Get(ctx, channelKey(t.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read channel pointer: %w", err)
		}
		if current == t.ID {
			if err := r.client.Del(ctx, channelKey(t.ChannelID)).Err(); err != nil {
				return fmt.Errorf("failed to clear channel pointer: %w", err)
			}
		}
	}

	return nil
}

// GetActiveTournaments retrieves all open or running tournaments from Redis
func (r *redisRepository) GetActiveTournaments(ctx context.Context, input *GetActiveTournamentsInput) (*GetActiveTournamentsOutput, error) {
	tournamentIDs, err := r.client.SMembers(ctx, activeKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active tournament IDs: %w", err)
	}

	tournaments := make([]*models.Tournament, 0, len(tournamentIDs))
	for _, id := range tournamentIDs {
		t, err := r.GetTournament(ctx, &GetTournamentInput{TournamentID: id})
		if err != nil {
			// Deleted between reading the index and fetching it
			if errors.Is(err, ErrTournamentNotFound) {
				continue
			}
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return &GetActiveTournamentsOutput{
		Tournaments: tournaments,
	}, nil
}

func tournamentKey(id string) string {
	return fmt.Sprintf("%s%s", tournamentKeyPrefix, id)
}

func channelKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelKeyPrefix, channelID)
}
