package participant

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/torneio/internal/common/clock"
	"github.com/KirkDiggler/torneio/internal/common/uuid"
	"github.com/KirkDiggler/torneio/internal/dice"
	"github.com/KirkDiggler/torneio/internal/models"
	matchRepo "github.com/KirkDiggler/torneio/internal/repositories/match"
	participantRepo "github.com/KirkDiggler/torneio/internal/repositories/participant"
	log "github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	diceSides        int
	maxRollOffRounds int
	participantRepo  participantRepo.Repository
	matchRepo        matchRepo.Repository
	diceRoller       dice.Roller
	clock            clock.Clock
	uuidGenerator    uuid.UUID
}

// New creates a new participant service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	diceSides := cfg.DiceSides
	if diceSides < 2 {
		diceSides = DefaultDiceSides
	}

	maxRollOffRounds := cfg.MaxRollOffRounds
	if maxRollOffRounds <= 0 {
		maxRollOffRounds = DefaultMaxRollOffRounds
	}

	return &service{
		diceSides:        diceSides,
		maxRollOffRounds: maxRollOffRounds,
		participantRepo:  cfg.ParticipantRepo,
		matchRepo:        cfg.MatchRepo,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
	}, nil
}

// Construct creates a participant with a fresh handle
func (s *service) Construct(ctx context.Context, input *ConstructInput) (*ConstructOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	p := &models.Participant{
		Handle:       s.uuidGenerator.NewUUID(),
		ID:           input.ID,
		Skill:        input.Skill,
		MaxSkill:     input.Skill,
		Name:         input.Name,
		PlayerID:     input.PlayerID,
		TournamentID: input.TournamentID,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	}); err != nil {
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	log.WithFields(log.Fields{
		"handle": p.Handle,
		"id":     p.ID,
		"skill":  p.Skill,
	}).Debug("constructed participant")

	return &ConstructOutput{
		Participant: p,
	}, nil
}

// Destroy removes a participant from the lookup table
func (s *service) Destroy(ctx context.Context, input *DestroyInput) (*DestroyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	p, err := s.getParticipant(ctx, input.Handle)
	if err != nil {
		return nil, err
	}

	if err := s.deleteParticipant(ctx, p.Handle); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"handle": p.Handle,
		"id":     p.ID,
	}).Debug("destroyed participant")

	return &DestroyOutput{
		Participant: p,
	}, nil
}

// Match resolves an encounter between two live participants.
//
// The participant with more skill wins. Equal skill goes to a roll-off, and a roll-off that
// stays tied for MaxRollOffRounds goes to the lower ID, then to the first participant. The
// winner loses the loser's skill, recovers Regeneration up to its starting skill, and the
// loser is destroyed.
func (s *service) Match(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Handle1 == "" || input.Handle2 == "" {
		return nil, ErrEmptyHandle
	}

	if input.Handle1 == input.Handle2 {
		return nil, ErrSameParticipant
	}

	first, err := s.getParticipant(ctx, input.Handle1)
	if err != nil {
		return nil, err
	}

	second, err := s.getParticipant(ctx, input.Handle2)
	if err != nil {
		return nil, err
	}

	winner, loser, decidedBy, rolls := s.resolve(first, second)
	skillAfter := RemainingSkill(winner.Skill, loser.Skill, input.Regeneration, winner.MaxSkill)

	seq, err := s.matchRepo.NextSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve match sequence: %w", err)
	}

	match := &models.Match{
		ID:               s.uuidGenerator.NewUUID(),
		Sequence:         seq,
		TournamentID:     input.TournamentID,
		Round:            input.Round,
		FirstHandle:      first.Handle,
		SecondHandle:     second.Handle,
		FirstID:          first.ID,
		SecondID:         second.ID,
		FirstSkill:       first.Skill,
		SecondSkill:      second.Skill,
		WinnerHandle:     winner.Handle,
		LoserHandle:      loser.Handle,
		WinnerSkillAfter: skillAfter,
		Regeneration:     input.Regeneration,
		DecidedBy:        decidedBy,
		Rolls:            rolls,
		PlayedAt:         s.clock.Now(),
	}

	settled := *winner
	settled.Skill = skillAfter
	settled.Wins++

	err = s.participantRepo.SettleMatch(ctx, &participantRepo.SettleMatchInput{
		Winner:      &settled,
		LoserHandle: loser.Handle,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to settle match: %w", err)
	}

	if err := s.matchRepo.AddMatch(ctx, &matchRepo.AddMatchInput{
		Match: match,
	}); err != nil {
		s.restore(ctx, winner, loser)
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	log.WithFields(log.Fields{
		"match":      match.ID,
		"tournament": match.TournamentID,
		"round":      match.Round,
		"winner":     winner.ID,
		"loser":      loser.ID,
		"decided_by": decidedBy,
		"skill":      settled.Skill,
	}).Info("match played")

	return &MatchOutput{
		Winner: &settled,
		Loser:  loser,
		Match:  match,
	}, nil
}

// GetID returns the external ID behind a handle
func (s *service) GetID(ctx context.Context, input *GetIDInput) (*GetIDOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	p, err := s.getParticipant(ctx, input.Handle)
	if err != nil {
		return nil, err
	}

	return &GetIDOutput{
		ID: p.ID,
	}, nil
}

// GetParticipant returns the participant behind a handle
func (s *service) GetParticipant(ctx context.Context, input *GetParticipantInput) (*GetParticipantOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	p, err := s.getParticipant(ctx, input.Handle)
	if err != nil {
		return nil, err
	}

	return &GetParticipantOutput{
		Participant: p,
	}, nil
}

// ListParticipants returns the live participants of a tournament
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.TournamentID == "" {
		return nil, ErrEmptyTournamentID
	}

	out, err := s.participantRepo.GetParticipantsInTournament(ctx, &participantRepo.GetParticipantsInTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return &ListParticipantsOutput{
		Participants: out.Participants,
	}, nil
}

// restore puts both sides of a settled match back after the match record failed to save
func (s *service) restore(ctx context.Context, winner, loser *models.Participant) {
	for _, p := range []*models.Participant{winner, loser} {
		if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
			Participant: p,
		}); err != nil {
			log.WithError(err).WithField("handle", p.Handle).Error("failed to restore participant")
		}
	}
}

// resolve picks the winner of two participants, rolling off on equal skill
func (s *service) resolve(first, second *models.Participant) (winner, loser *models.Participant, decidedBy models.DecidedBy, rolls []models.Roll) {
	switch {
	case first.Skill > second.Skill:
		return first, second, models.DecidedBySkill, nil
	case second.Skill > first.Skill:
		return second, first, models.DecidedBySkill, nil
	}

	for i := 0; i < s.maxRollOffRounds; i++ {
		roll := models.Roll{
			First:  s.diceRoller.Roll(s.diceSides),
			Second: s.diceRoller.Roll(s.diceSides),
		}
		rolls = append(rolls, roll)

		log.WithFields(log.Fields{
			"first":       first.ID,
			"second":      second.ID,
			"first_roll":  roll.First,
			"second_roll": roll.Second,
		}).Debug("roll-off")

		if roll.Tied() {
			continue
		}
		if roll.First > roll.Second {
			return first, second, models.DecidedByRollOff, rolls
		}
		return second, first, models.DecidedByRollOff, rolls
	}

	if second.ID < first.ID {
		return second, first, models.DecidedByID, rolls
	}
	return first, second, models.DecidedByID, rolls
}

// RemainingSkill is the winner's skill after absorbing the loser's skill and regenerating,
// never above maxSkill
func RemainingSkill(winnerSkill, loserSkill, regeneration, maxSkill uint) uint {
	var remaining uint
	if winnerSkill > loserSkill {
		remaining = winnerSkill - loserSkill
	}

	if remaining >= maxSkill || regeneration >= maxSkill-remaining {
		return maxSkill
	}

	return remaining + regeneration
}

func (s *service) getParticipant(ctx context.Context, handle string) (*models.Participant, error) {
	if handle == "" {
		return nil, ErrEmptyHandle
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Handle: handle,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

func (s *service) deleteParticipant(ctx context.Context, handle string) error {
	err := s.participantRepo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
		Handle: handle,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	return nil
}
