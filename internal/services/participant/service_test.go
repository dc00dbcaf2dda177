package participant

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/torneio/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/torneio/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/torneio/internal/dice/mocks"
	"github.com/KirkDiggler/torneio/internal/models"
	matchRepo "github.com/KirkDiggler/torneio/internal/repositories/match"
	matchMocks "github.com/KirkDiggler/torneio/internal/repositories/match/mocks"
	participantRepo "github.com/KirkDiggler/torneio/internal/repositories/participant"
	participantMocks "github.com/KirkDiggler/torneio/internal/repositories/participant/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParticipantServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockParticipantRepo *participantMocks.MockRepository
	mockMatchRepo       *matchMocks.MockRepository
	mockDiceRoller      *diceMocks.MockRoller
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	participantService  Service
	ctx                 context.Context

	testTime time.Time

	// Reusable test fixtures
	weaker   *models.Participant
	stronger *models.Participant
}

func (s *ParticipantServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockMatchRepo = matchMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.weaker = &models.Participant{
		Handle:    "handle-1",
		ID:        1,
		Skill:     50,
		MaxSkill:  50,
		CreatedAt: s.testTime,
	}

	s.stronger = &models.Participant{
		Handle:    "handle-2",
		ID:        2,
		Skill:     80,
		MaxSkill:  80,
		CreatedAt: s.testTime,
	}

	svc, err := New(&Config{
		DiceSides:        6,
		MaxRollOffRounds: 3,
		ParticipantRepo:  s.mockParticipantRepo,
		MatchRepo:        s.mockMatchRepo,
		DiceRoller:       s.mockDiceRoller,
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
	})
	s.Require().NoError(err)
	s.participantService = svc
}

func (s *ParticipantServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParticipantServiceSuite(t *testing.T) {
	suite.Run(t, new(ParticipantServiceTestSuite))
}

// expectLookup makes the repository return a copy of p for its handle
func (s *ParticipantServiceTestSuite) expectLookup(p *models.Participant) {
	found := *p
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), &participantRepo.GetParticipantInput{Handle: p.Handle}).
		Return(&found, nil)
}

// expectMatchPersisted expects the match to be settled in one step and then recorded
func (s *ParticipantServiceTestSuite) expectMatchPersisted(winnerHandle, loserHandle string, winnerSkill uint) *models.Match {
	recorded := &models.Match{}

	s.mockMatchRepo.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
	s.mockUUID.EXPECT().NewUUID().Return("match-1")

	s.mockParticipantRepo.EXPECT().
		SettleMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.SettleMatchInput) error {
			s.Equal(winnerHandle, input.Winner.Handle)
			s.Equal(winnerSkill, input.Winner.Skill)
			s.Equal(loserHandle, input.LoserHandle)
			return nil
		})

	s.mockMatchRepo.EXPECT().
		AddMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.AddMatchInput) error {
			*recorded = *input.Match
			return nil
		})

	return recorded
}

func (s *ParticipantServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilParticipantRepo, err)

	_, err = New(&Config{ParticipantRepo: s.mockParticipantRepo})
	s.Equal(ErrNilMatchRepo, err)

	_, err = New(&Config{ParticipantRepo: s.mockParticipantRepo, MatchRepo: s.mockMatchRepo})
	s.Equal(ErrNilDiceRoller, err)

	_, err = New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
		MatchRepo:       s.mockMatchRepo,
		DiceRoller:      s.mockDiceRoller,
	})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
		MatchRepo:       s.mockMatchRepo,
		DiceRoller:      s.mockDiceRoller,
		Clock:           s.mockClock,
	})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *ParticipantServiceTestSuite) TestNewAppliesDefaults() {
	svc, err := New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
		MatchRepo:       s.mockMatchRepo,
		DiceRoller:      s.mockDiceRoller,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.Equal(DefaultDiceSides, svc.diceSides)
	s.Equal(DefaultMaxRollOffRounds, svc.maxRollOffRounds)
}

func (s *ParticipantServiceTestSuite) TestConstruct() {
	s.mockUUID.EXPECT().NewUUID().Return("handle-1")
	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), &participantRepo.SaveParticipantInput{
			Participant: &models.Participant{
				Handle:    "handle-1",
				ID:        1,
				Skill:     50,
				MaxSkill:  50,
				CreatedAt: s.testTime,
			},
		}).
		Return(nil)

	output, err := s.participantService.Construct(s.ctx, &ConstructInput{ID: 1, Skill: 50})
	s.Require().NoError(err)
	s.Equal("handle-1", output.Participant.Handle)
	s.Equal(uint(1), output.Participant.ID)
	s.Equal(uint(50), output.Participant.MaxSkill)
}

func (s *ParticipantServiceTestSuite) TestConstructStorageFailure() {
	s.mockUUID.EXPECT().NewUUID().Return("handle-1")
	s.mockParticipantRepo.EXPECT().SaveParticipant(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := s.participantService.Construct(s.ctx, &ConstructInput{ID: 1, Skill: 50})
	s.Require().Error(err)
	s.Contains(err.Error(), "boom")
}

func (s *ParticipantServiceTestSuite) TestConstructThenGetIDReturnsSameID() {
	var saved *models.Participant
	s.mockUUID.EXPECT().NewUUID().Return("handle-9")
	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.SaveParticipantInput) error {
			saved = input.Participant
			return nil
		})

	constructed, err := s.participantService.Construct(s.ctx, &ConstructInput{ID: 9, Skill: 3})
	s.Require().NoError(err)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), &participantRepo.GetParticipantInput{Handle: "handle-9"}).
		DoAndReturn(func(_ context.Context, _ *participantRepo.GetParticipantInput) (*models.Participant, error) {
			return saved, nil
		})

	output, err := s.participantService.GetID(s.ctx, &GetIDInput{Handle: constructed.Participant.Handle})
	s.Require().NoError(err)
	s.Equal(uint(9), output.ID)
}

func (s *ParticipantServiceTestSuite) TestDestroy() {
	s.expectLookup(s.weaker)
	s.mockParticipantRepo.EXPECT().
		DeleteParticipant(gomock.Any(), &participantRepo.DeleteParticipantInput{Handle: "handle-1"}).
		Return(nil)

	output, err := s.participantService.Destroy(s.ctx, &DestroyInput{Handle: "handle-1"})
	s.Require().NoError(err)
	s.Equal(uint(1), output.Participant.ID)
}

func (s *ParticipantServiceTestSuite) TestDestroyTwiceReturnsNotFound() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), &participantRepo.GetParticipantInput{Handle: "handle-1"}).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.participantService.Destroy(s.ctx, &DestroyInput{Handle: "handle-1"})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *ParticipantServiceTestSuite) TestDestroyRaceReturnsNotFound() {
	s.expectLookup(s.weaker)
	s.mockParticipantRepo.EXPECT().
		DeleteParticipant(gomock.Any(), gomock.Any()).
		Return(participantRepo.ErrParticipantNotFound)

	_, err := s.participantService.Destroy(s.ctx, &DestroyInput{Handle: "handle-1"})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *ParticipantServiceTestSuite) TestGetIDInvalidHandle() {
	_, err := s.participantService.GetID(s.ctx, &GetIDInput{})
	s.Equal(ErrEmptyHandle, err)

	_, err = s.participantService.GetID(s.ctx, nil)
	s.Equal(ErrNilInput, err)
}

func (s *ParticipantServiceTestSuite) TestGetParticipantWrapsStorageErrors() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := s.participantService.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-1"})
	s.Require().Error(err)
	s.NotEqual(ErrParticipantNotFound, err)
	s.Contains(err.Error(), "connection reset")
}

func (s *ParticipantServiceTestSuite) TestMatchHigherSkillWins() {
	s.expectLookup(s.weaker)
	s.expectLookup(s.stronger)
	recorded := s.expectMatchPersisted("handle-2", "handle-1", 40)

	output, err := s.participantService.Match(s.ctx, &MatchInput{
		Handle1:      "handle-1",
		Handle2:      "handle-2",
		Regeneration: 10,
	})
	s.Require().NoError(err)

	s.Equal("handle-2", output.Winner.Handle)
	s.Equal(uint(2), output.Winner.ID)
	s.Equal(uint(40), output.Winner.Skill)
	s.Equal(uint(1), output.Winner.Wins)
	s.Equal("handle-1", output.Loser.Handle)

	s.Equal("match-1", recorded.ID)
	s.Equal(int64(1), recorded.Sequence)
	s.Equal(uint(50), recorded.FirstSkill)
	s.Equal(uint(80), recorded.SecondSkill)
	s.Equal(uint(40), recorded.WinnerSkillAfter)
	s.Equal(models.DecidedBySkill, recorded.DecidedBy)
	s.Empty(recorded.Rolls)
	s.Equal(s.testTime, recorded.PlayedAt)
}

func (s *ParticipantServiceTestSuite) TestMatchRegenerationCappedAtMaxSkill() {
	s.expectLookup(s.stronger)
	s.expectLookup(s.weaker)
	s.expectMatchPersisted("handle-2", "handle-1", 80)

	output, err := s.participantService.Match(s.ctx, &MatchInput{
		Handle1:      "handle-2",
		Handle2:      "handle-1",
		Regeneration: 1000,
	})
	s.Require().NoError(err)
	s.Equal(uint(80), output.Winner.Skill)
}

func (s *ParticipantServiceTestSuite) TestMatchTiedSkillRollOff() {
	rival := &models.Participant{Handle: "handle-3", ID: 3, Skill: 50, MaxSkill: 60}
	s.expectLookup(rival)
	s.expectLookup(s.weaker)

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(6).Return(4),
		s.mockDiceRoller.EXPECT().Roll(6).Return(4),
		s.mockDiceRoller.EXPECT().Roll(6).Return(2),
		s.mockDiceRoller.EXPECT().Roll(6).Return(5),
	)

	recorded := s.expectMatchPersisted("handle-1", "handle-3", 5)

	output, err := s.participantService.Match(s.ctx, &MatchInput{
		Handle1:      "handle-3",
		Handle2:      "handle-1",
		Regeneration: 5,
		TournamentID: "tournament-1",
		Round:        2,
	})
	s.Require().NoError(err)
	s.Equal("handle-1", output.Winner.Handle)
	s.Equal(uint(5), output.Winner.Skill)

	s.Equal(models.DecidedByRollOff, recorded.DecidedBy)
	s.Equal([]models.Roll{{First: 4, Second: 4}, {First: 2, Second: 5}}, recorded.Rolls)
	s.Equal("tournament-1", recorded.TournamentID)
	s.Equal(2, recorded.Round)
}

func (s *ParticipantServiceTestSuite) TestMatchEndlessTieFallsBackToLowerID() {
	rival := &models.Participant{Handle: "handle-3", ID: 3, Skill: 50, MaxSkill: 50}
	s.expectLookup(rival)
	s.expectLookup(s.weaker)

	// MaxRollOffRounds is 3, two dice per round
	s.mockDiceRoller.EXPECT().Roll(6).Return(6).Times(6)

	recorded := s.expectMatchPersisted("handle-1", "handle-3", 0)

	output, err := s.participantService.Match(s.ctx, &MatchInput{
		Handle1: "handle-3",
		Handle2: "handle-1",
	})
	s.Require().NoError(err)
	s.Equal(uint(1), output.Winner.ID)
	s.Equal(uint(0), output.Winner.Skill)
	s.Equal(models.DecidedByID, recorded.DecidedBy)
	s.Len(recorded.Rolls, 3)
}

func (s *ParticipantServiceTestSuite) TestMatchRejectsInvalidHandles() {
	_, err := s.participantService.Match(s.ctx, nil)
	s.Equal(ErrNilInput, err)

	_, err = s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1"})
	s.Equal(ErrEmptyHandle, err)

	_, err = s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1", Handle2: "handle-1"})
	s.Equal(ErrSameParticipant, err)
}

func (s *ParticipantServiceTestSuite) TestMatchWithDestroyedParticipant() {
	s.expectLookup(s.weaker)
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), &participantRepo.GetParticipantInput{Handle: "handle-2"}).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1", Handle2: "handle-2"})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *ParticipantServiceTestSuite) TestMatchSequenceFailure() {
	s.expectLookup(s.weaker)
	s.expectLookup(s.stronger)
	s.mockMatchRepo.EXPECT().NextSequence(gomock.Any()).Return(int64(0), errors.New("redis down"))

	_, err := s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1", Handle2: "handle-2"})
	s.Require().Error(err)
	s.Contains(err.Error(), "redis down")
}

func (s *ParticipantServiceTestSuite) TestMatchSettleFailureRecordsNothing() {
	s.expectLookup(s.weaker)
	s.expectLookup(s.stronger)
	s.mockMatchRepo.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
	s.mockUUID.EXPECT().NewUUID().Return("match-1")
	s.mockParticipantRepo.EXPECT().
		SettleMatch(gomock.Any(), gomock.Any()).
		Return(errors.New("EXECABORT"))

	_, err := s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1", Handle2: "handle-2", Regeneration: 10})
	s.Require().Error(err)
	s.Contains(err.Error(), "EXECABORT")
}

func (s *ParticipantServiceTestSuite) TestMatchLoserGoneDuringSettle() {
	s.expectLookup(s.weaker)
	s.expectLookup(s.stronger)
	s.mockMatchRepo.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
	s.mockUUID.EXPECT().NewUUID().Return("match-1")
	s.mockParticipantRepo.EXPECT().
		SettleMatch(gomock.Any(), gomock.Any()).
		Return(participantRepo.ErrParticipantNotFound)

	_, err := s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1", Handle2: "handle-2"})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *ParticipantServiceTestSuite) TestMatchRecordFailureRestoresBothParticipants() {
	s.expectLookup(s.weaker)
	s.expectLookup(s.stronger)
	s.mockMatchRepo.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
	s.mockUUID.EXPECT().NewUUID().Return("match-1")
	s.mockParticipantRepo.EXPECT().SettleMatch(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMatchRepo.EXPECT().AddMatch(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	restored := map[string]models.Participant{}
	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *participantRepo.SaveParticipantInput) error {
			restored[input.Participant.Handle] = *input.Participant
			return nil
		}).
		Times(2)

	_, err := s.participantService.Match(s.ctx, &MatchInput{Handle1: "handle-1", Handle2: "handle-2", Regeneration: 10})
	s.Require().Error(err)
	s.Contains(err.Error(), "redis down")

	s.Require().Contains(restored, "handle-2")
	s.Equal(uint(80), restored["handle-2"].Skill)
	s.Equal(uint(0), restored["handle-2"].Wins)
	s.Require().Contains(restored, "handle-1")
	s.Equal(uint(50), restored["handle-1"].Skill)
}

func (s *ParticipantServiceTestSuite) TestListParticipants() {
	s.mockParticipantRepo.EXPECT().
		GetParticipantsInTournament(gomock.Any(), &participantRepo.GetParticipantsInTournamentInput{TournamentID: "tournament-1"}).
		Return(&participantRepo.GetParticipantsInTournamentOutput{
			Participants: []*models.Participant{s.weaker, s.stronger},
		}, nil)

	output, err := s.participantService.ListParticipants(s.ctx, &ListParticipantsInput{TournamentID: "tournament-1"})
	s.Require().NoError(err)
	s.Len(output.Participants, 2)

	_, err = s.participantService.ListParticipants(s.ctx, &ListParticipantsInput{})
	s.Equal(ErrEmptyTournamentID, err)
}

func TestRemainingSkill(t *testing.T) {
	tests := map[string]struct {
		winner, loser, regeneration, max uint
		expected                         uint
	}{
		"damage and regeneration":   {winner: 80, loser: 50, regeneration: 10, max: 80, expected: 40},
		"capped at max":             {winner: 80, loser: 10, regeneration: 50, max: 80, expected: 80},
		"no regeneration":           {winner: 80, loser: 50, regeneration: 0, max: 80, expected: 30},
		"equal skill":               {winner: 50, loser: 50, regeneration: 7, max: 50, expected: 7},
		"loser stronger is clamped": {winner: 10, loser: 50, regeneration: 3, max: 10, expected: 3},
		"huge regeneration":         {winner: 1, loser: 0, regeneration: ^uint(0), max: 5, expected: 5},
		"zero max":                  {winner: 0, loser: 0, regeneration: 10, max: 0, expected: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			actual := RemainingSkill(test.winner, test.loser, test.regeneration, test.max)
			if actual != test.expected {
				t.Fatalf("expected %v but got %v", test.expected, actual)
			}
		})
	}
}
