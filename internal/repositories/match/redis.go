package match

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
	matchKeyPrefix              = "match:"
	tournamentMatchesKeyPrefix  = "tournament_matches:"
	participantMatchesKeyPrefix = "participant_matches:"
	sequenceKey                 = "match_sequence"
)

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
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

// NextSequence increments the global match counter
func (r *redisRepository) NextSequence(ctx context.Context) (int64, error) {
	seq, err := r.client.Incr(ctx, sequenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to reserve match sequence: %w", err)
	}

	return seq, nil
}

// AddMatch stores a match and indexes it by tournament and by both participants
func (r *redisRepository) AddMatch(ctx context.Context, input *AddMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	m := input.Match
	if m.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, matchKey(m.ID), matchJSON, 0)

	member := redis.Z{
		Score:  float64(m.Sequence),
		Member: m.ID,
	}

	if m.TournamentID != "" {
		pipe.ZAdd(ctx, tournamentMatchesKey(m.TournamentID), member)
	}

	pipe.ZAdd(ctx, participantMatchesKey(m.FirstHandle), member)
	pipe.ZAdd(ctx, participantMatchesKey(m.SecondHandle), member)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add match: %w", err)
	}

	return nil
}

// GetMatchesByTournament retrieves a tournament's matches in sequence order
func (r *redisRepository) GetMatchesByTournament(ctx context.Context, input *GetMatchesByTournamentInput) (*GetMatchesOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	return r.getMatchesFromIndex(ctx, tournamentMatchesKey(input.TournamentID))
}

// GetMatchesByParticipant retrieves a participant's matches in sequence order
func (r *redisRepository) GetMatchesByParticipant(ctx context.Context, input *GetMatchesByParticipantInput) (*GetMatchesOutput, error) {
	if input == nil || input.Handle == "" {
		return nil, errors.New("input and handle cannot be empty")
	}

	return r.getMatchesFromIndex(ctx, participantMatchesKey(input.Handle))
}

// DeleteTournamentMatches removes a tournament's matches along with their indexes
func (r *redisRepository) DeleteTournamentMatches(ctx context.Context, input *DeleteTournamentMatchesInput) error {
	if input == nil || input.TournamentID == "" {
		return errors.New("input and tournament ID cannot be empty")
	}

	output, err := r.GetMatchesByTournament(ctx, &GetMatchesByTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, m := range output.Matches {
		pipe.Del(ctx, matchKey(m.ID))
		pipe.ZRem(ctx, participantMatchesKey(m.FirstHandle), m.ID)
		pipe.ZRem(ctx, participantMatchesKey(m.SecondHandle), m.ID)
	}
	pipe.Del(ctx, tournamentMatchesKey(input.TournamentID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete tournament matches: %w", err)
	}

	return nil
}

func (r *redisRepository) getMatchesFromIndex(ctx context.Context, indexKey string) (*GetMatchesOutput, error) {
	matchIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &GetMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(matchIDs))
	for i, id := range matchIDs {
		cmds[i] = pipe.Get(ctx, matchKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for i, cmd := range cmds {
		matchJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchIDs[i], err)
		}

		var m models.Match
		if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchIDs[i], err)
		}

		matches = append(matches, &m)
	}

	return &GetMatchesOutput{
		Matches: matches,
	}, nil
}

func matchKey(id string) string {
	return fmt.Sprintf("%s%s", matchKeyPrefix, id)
}

func tournamentMatchesKey(tournamentID string) string {
	return fmt.Sprintf("%s%s", tournamentMatchesKeyPrefix, tournamentID)
}

func participantMatchesKey(handle string) string {
	return fmt.Sprintf("%s%s", participantMatchesKeyPrefix, handle)
}
