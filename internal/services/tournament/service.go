package tournament

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/torneio/internal/common/clock"
	"github.com/KirkDiggler/torneio/internal/common/uuid"
	"github.com/KirkDiggler/torneio/internal/models"
	matchRepo "github.com/KirkDiggler/torneio/internal/repositories/match"
	tournamentRepo "github.com/KirkDiggler/torneio/internal/repositories/tournament"
	"github.com/KirkDiggler/torneio/internal/services/participant"
	log "github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	maxEntrants        int
	tournamentRepo     tournamentRepo.Repository
	matchRepo          matchRepo.Repository
	participantService participant.Service
	clock              clock.Clock
	uuidGenerator      uuid.UUID

	// Discord dispatches interactions concurrently; mutations are serialized
	mu sync.Mutex
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.ParticipantService == nil {
		return nil, ErrNilParticipantService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxEntrants := cfg.MaxEntrants
	if maxEntrants <= 0 {
		maxEntrants = DefaultMaxEntrants
	}

	return &service{
		maxEntrants:        maxEntrants,
		tournamentRepo:     cfg.TournamentRepo,
		matchRepo:          cfg.MatchRepo,
		participantService: cfg.ParticipantService,
		clock:              cfg.Clock,
		uuidGenerator:      cfg.UUIDGenerator,
	}, nil
}

// CreateTournament opens a tournament unless the channel already has an active one
func (s *service) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrEmptyChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.tournamentRepo.GetTournamentByChannel(ctx, &tournamentRepo.GetTournamentByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil && !errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
		return nil, fmt.Errorf("failed to check channel tournament: %w", err)
	}

	if existing != nil {
		if existing.Status.IsActive() {
			return nil, ErrTournamentAlreadyExists
		}

		// The channel only points at its latest tournament; release the finished one first
		released, err := s.release(ctx, existing)
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"tournament": existing.ID,
			"released":   released,
		}).Info("completed tournament released")
	}

	now := s.clock.Now()
	t := &models.Tournament{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		Status:    models.TournamentStatusOpen,
		Entrants:  []*models.Entrant{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.saveTournament(ctx, t); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"tournament": t.ID,
		"channel":    t.ChannelID,
		"creator":    t.CreatorID,
	}).Info("tournament created")

	return &CreateTournamentOutput{
		Tournament: t,
	}, nil
}

// EnterTournament constructs a participant for the player, seeded by entry order
func (s *service) EnterTournament(ctx context.Context, input *EnterTournamentInput) (*EnterTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerID == "" {
		return nil, ErrEmptyPlayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	if !t.Status.IsOpen() {
		return nil, ErrInvalidTournamentState
	}

	if t.GetEntrantByPlayer(input.PlayerID) != nil {
		return nil, ErrAlreadyEntered
	}

	if len(t.Entrants) >= s.maxEntrants {
		return nil, ErrTournamentFull
	}

	seed := uint(len(t.Entrants) + 1)
	constructed, err := s.participantService.Construct(ctx, &participant.ConstructInput{
		ID:           seed,
		Skill:        input.Skill,
		Name:         input.PlayerName,
		PlayerID:     input.PlayerID,
		TournamentID: t.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct entrant: %w", err)
	}

	entrant := &models.Entrant{
		Seed:     seed,
		Handle:   constructed.Participant.Handle,
		PlayerID: input.PlayerID,
		Name:     input.PlayerName,
		Skill:    input.Skill,
	}

	t.Entrants = append(t.Entrants, entrant)
	t.UpdatedAt = s.clock.Now()

	if err := s.saveTournament(ctx, t); err != nil {
		// Do not leak the participant the tournament no longer knows about
		if _, destroyErr := s.participantService.Destroy(ctx, &participant.DestroyInput{
			Handle: entrant.Handle,
		}); destroyErr != nil {
			log.WithError(destroyErr).WithField("handle", entrant.Handle).Error("failed to release entrant")
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"tournament": t.ID,
		"player":     input.PlayerID,
		"seed":       seed,
		"skill":      input.Skill,
	}).Info("entrant joined")

	return &EnterTournamentOutput{
		Entrant:      entrant,
		EntrantCount: len(t.Entrants),
	}, nil
}

// RunTournament plays every round until one participant is left
func (s *service) RunTournament(ctx context.Context, input *RunTournamentInput) (*RunTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	if !t.Status.IsOpen() {
		return nil, ErrInvalidTournamentState
	}

	if len(t.Entrants) < 2 {
		return nil, ErrNotEnoughEntrants
	}

	t.Status = models.TournamentStatusRunning
	t.Regeneration = input.Regeneration
	t.UpdatedAt = s.clock.Now()
	if err := s.saveTournament(ctx, t); err != nil {
		return nil, err
	}

	alive := make([]string, 0, len(t.Entrants))
	for _, e := range t.Entrants {
		alive = append(alive, e.Handle)
	}

	for number := 1; len(alive) > 1; number++ {
		round, survivors, err := s.playRound(ctx, t, number, alive)
		if err != nil {
			// Leave the tournament running; abandoning it releases what is left
			log.WithError(err).WithFields(log.Fields{
				"tournament": t.ID,
				"round":      number,
			}).Error("failed to play round")
			return nil, err
		}

		t.Rounds = append(t.Rounds, round)
		alive = survivors
	}

	t.ChampionHandle = alive[0]
	t.Status = models.TournamentStatusCompleted
	t.UpdatedAt = s.clock.Now()
	if err := s.saveTournament(ctx, t); err != nil {
		return nil, err
	}

	champion, err := s.participantService.GetParticipant(ctx, &participant.GetParticipantInput{
		Handle: t.ChampionHandle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get champion: %w", err)
	}

	log.WithFields(log.Fields{
		"tournament": t.ID,
		"champion":   champion.Participant.ID,
		"rounds":     len(t.Rounds),
	}).Info("tournament completed")

	return &RunTournamentOutput{
		Tournament: t,
		Champion:   champion.Participant,
	}, nil
}

// playRound plays one round of the bracket and returns the survivors in bracket order
func (s *service) playRound(ctx context.Context, t *models.Tournament, number int, alive []string) (*models.Round, []string, error) {
	pairs, bye := PairRound(alive)
	round := &models.Round{
		Number:    number,
		ByeHandle: bye,
	}

	survivors := make([]string, 0, len(pairs)+1)
	for _, pair := range pairs {
		played, err := s.participantService.Match(ctx, &participant.MatchInput{
			Handle1:      pair[0],
			Handle2:      pair[1],
			Regeneration: t.Regeneration,
			TournamentID: t.ID,
			Round:        number,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to play match in round %d: %w", number, err)
		}

		round.Pairings = append(round.Pairings, &models.Pairing{
			FirstHandle:      pair[0],
			SecondHandle:     pair[1],
			MatchID:          played.Match.ID,
			WinnerHandle:     played.Winner.Handle,
			WinnerSkillAfter: played.Winner.Skill,
			DecidedBy:        played.Match.DecidedBy,
			RollOffRounds:    len(played.Match.Rolls),
		})

		if loser := t.GetEntrant(played.Loser.Handle); loser != nil {
			loser.EliminatedInRound = number
		}

		survivors = append(survivors, played.Winner.Handle)
	}

	if bye != "" {
		survivors = append(survivors, bye)
	}

	log.WithFields(log.Fields{
		"tournament": t.ID,
		"round":      number,
		"matches":    len(pairs),
		"survivors":  len(survivors),
	}).Debug("round played")

	return round, survivors, nil
}

// GetTournament retrieves a tournament by ID
func (s *service) GetTournament(ctx context.Context, input *GetTournamentInput) (*GetTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	t, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	return &GetTournamentOutput{
		Tournament: t,
	}, nil
}

// GetTournamentByChannel retrieves the latest tournament of a channel
func (s *service) GetTournamentByChannel(ctx context.Context, input *GetTournamentByChannelInput) (*GetTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrEmptyChannel
	}

	t, err := s.tournamentRepo.GetTournamentByChannel(ctx, &tournamentRepo.GetTournamentByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get channel tournament: %w", err)
	}

	return &GetTournamentOutput{
		Tournament: t,
	}, nil
}

// GetStandings ranks a completed tournament, counting wins from the match log
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	t, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	if t.Status != models.TournamentStatusCompleted {
		return nil, ErrInvalidTournamentState
	}

	matches, err := s.matchRepo.GetMatchesByTournament(ctx, &matchRepo.GetMatchesByTournamentInput{
		TournamentID: t.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament matches: %w", err)
	}

	wins := make(map[string]int, len(t.Entrants))
	for _, m := range matches.Matches {
		wins[m.WinnerHandle]++
	}

	return &GetStandingsOutput{
		Leaderboard: &models.Leaderboard{
			TournamentID: t.ID,
			Standings:    RankEntrants(t, wins),
		},
	}, nil
}

// AbandonTournament destroys every participant the tournament still holds, then deletes it
// together with its match log. Completed tournaments are abandoned the same way to release
// their champion.
func (s *service) AbandonTournament(ctx context.Context, input *AbandonTournamentInput) (*AbandonTournamentOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	released, err := s.release(ctx, t)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"tournament": t.ID,
		"released":   released,
	}).Info("tournament abandoned")

	return &AbandonTournamentOutput{
		Released: released,
	}, nil
}

// GetEntrantHistory lists the matches a player's entrant played, in the order they were played
func (s *service) GetEntrantHistory(ctx context.Context, input *GetEntrantHistoryInput) (*GetEntrantHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerID == "" {
		return nil, ErrEmptyPlayer
	}

	t, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	entrant := t.GetEntrantByPlayer(input.PlayerID)
	if entrant == nil {
		return nil, ErrEntrantNotFound
	}

	matches, err := s.matchRepo.GetMatchesByParticipant(ctx, &matchRepo.GetMatchesByParticipantInput{
		Handle: entrant.Handle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get entrant matches: %w", err)
	}

	return &GetEntrantHistoryOutput{
		Tournament: t,
		Entrant:    entrant,
		Matches:    matches.Matches,
	}, nil
}

// ReapStaleTournaments releases tournaments left running by a previous process.
// RunTournament plays a whole bracket inside one call, so a running tournament found at
// startup can never finish.
func (s *service) ReapStaleTournaments(ctx context.Context) (*ReapStaleTournamentsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.tournamentRepo.GetActiveTournaments(ctx, &tournamentRepo.GetActiveTournamentsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get active tournaments: %w", err)
	}

	output := &ReapStaleTournamentsOutput{}
	for _, t := range active.Tournaments {
		if t.Status != models.TournamentStatusRunning {
			output.Open++
			continue
		}

		released, err := s.release(ctx, t)
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"tournament": t.ID,
			"channel":    t.ChannelID,
			"released":   released,
		}).Warn("reaped interrupted tournament")

		output.Reaped++
		output.Released += released
	}

	return output, nil
}

// release destroys every live participant of the tournament and deletes it together with
// its match log
func (s *service) release(ctx context.Context, t *models.Tournament) (int, error) {
	live, err := s.participantService.ListParticipants(ctx, &participant.ListParticipantsInput{
		TournamentID: t.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list tournament participants: %w", err)
	}

	var released int
	for _, p := range live.Participants {
		_, err := s.participantService.Destroy(ctx, &participant.DestroyInput{
			Handle: p.Handle,
		})
		if err != nil {
			if errors.Is(err, participant.ErrParticipantNotFound) {
				continue
			}
			return released, fmt.Errorf("failed to release participant %d: %w", p.ID, err)
		}
		released++
	}

	if err := s.matchRepo.DeleteTournamentMatches(ctx, &matchRepo.DeleteTournamentMatchesInput{
		TournamentID: t.ID,
	}); err != nil {
		return released, fmt.Errorf("failed to delete tournament matches: %w", err)
	}

	if err := s.tournamentRepo.DeleteTournament(ctx, &tournamentRepo.DeleteTournamentInput{
		TournamentID: t.ID,
	}); err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return released, ErrTournamentNotFound
		}
		return released, fmt.Errorf("failed to delete tournament: %w", err)
	}

	return released, nil
}

func (s *service) getTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	if tournamentID == "" {
		return nil, ErrTournamentNotFound
	}

	t, err := s.tournamentRepo.GetTournament(ctx, &tournamentRepo.GetTournamentInput{
		TournamentID: tournamentID,
	})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	return t, nil
}

func (s *service) saveTournament(ctx context.Context, t *models.Tournament) error {
	if err := s.tournamentRepo.SaveTournament(ctx, &tournamentRepo.SaveTournamentInput{
		Tournament: t,
	}); err != nil {
		return fmt.Errorf("failed to save tournament: %w", err)
	}

	return nil
}
