package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/torneio/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix            = "participant:"
	tournamentParticipantsKeyPrefix = "tournament_participants:"
)

// ErrParticipantNotFound is returned when no participant exists for a handle
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.Handle == "" {
		return errors.New("participant handle cannot be empty")
	}

	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, participantKey(p.Handle), participantJSON, 0)

	if p.TournamentID != "" {
		pipe.SAdd(ctx, tournamentParticipantsKey(p.TournamentID), p.Handle)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by handle from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.Handle == "" {
		return nil, errors.New("input and handle cannot be empty")
	}

	participantJSON, err := r.client.Get(ctx, participantKey(input.Handle)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// DeleteParticipant removes a participant and its tournament index entry
func (r *redisRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.Handle == "" {
		return errors.New("input and handle cannot be empty")
	}

	p, err := r.GetParticipant(ctx, &GetParticipantInput{Handle: input.Handle})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, participantKey(p.Handle))
	if p.TournamentID != "" {
		pipe.SRem(ctx, tournamentParticipantsKey(p.TournamentID), p.Handle)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	// Deleted concurrently between the read and the transaction
	if del.Val() == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// SettleMatch stores the winner and deletes the loser in one transaction. Both handles are
// watched, so a concurrent Destroy of either aborts the settlement and nothing is written.
func (r *redisRepository) SettleMatch(ctx context.Context, input *SettleMatchInput) error {
	if input == nil || input.Winner == nil || input.Winner.Handle == "" || input.LoserHandle == "" {
		return errors.New("input, winner and loser handle cannot be empty")
	}

	winner := input.Winner
	winnerJSON, err := json.Marshal(winner)
	if err != nil {
		return fmt.Errorf("failed to marshal winner: %w", err)
	}

	winnerKey := participantKey(winner.Handle)
	loserKey := participantKey(input.LoserHandle)

	settle := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, winnerKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check winner: %w", err)
		}
		if exists == 0 {
			return ErrParticipantNotFound
		}

		loserJSON, err := tx.Get(ctx, loserKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrParticipantNotFound
			}
			return fmt.Errorf("failed to get loser: %w", err)
		}

		var loser models.Participant
		if err := json.Unmarshal([]byte(loserJSON), &loser); err != nil {
			return fmt.Errorf("failed to unmarshal loser: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, winnerKey, winnerJSON, 0)
			pipe.Del(ctx, loserKey)
			if loser.TournamentID != "" {
				pipe.SRem(ctx, tournamentParticipantsKey(loser.TournamentID), loser.Handle)
			}
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, settle, winnerKey, loserKey); err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("failed to settle match: %w", err)
	}

	return nil
}

// GetParticipantsInTournament retrieves every live participant of a tournament, ordered by ID
func (r *redisRepository) GetParticipantsInTournament(ctx context.Context, input *GetParticipantsInTournamentInput) (*GetParticipantsInTournamentOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	handles, err := r.client.SMembers(ctx, tournamentParticipantsKey(input.TournamentID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant handles for tournament: %w", err)
	}

	if len(handles) == 0 {
		return &GetParticipantsInTournamentOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(handles))
	for _, handle := range handles {
		cmds[handle] = pipe.Get(ctx, participantKey(handle))
	}

	// redis.Nil for a single key is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(handles))
	for handle, cmd := range cmds {
		participantJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Participant was destroyed between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", handle, err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", handle, err)
		}

		participants = append(participants, &p)
	}

	sort.Slice(participants, func(i, j int) bool {
		return participants[i].ID < participants[j].ID
	})

	return &GetParticipantsInTournamentOutput{
		Participants: participants,
	}, nil
}

func participantKey(handle string) string {
	return fmt.Sprintf("%s%s", participantKeyPrefix, handle)
}

func tournamentParticipantsKey(tournamentID string) string {
	return fmt.Sprintf("%s%s", tournamentParticipantsKeyPrefix, tournamentID)
}
