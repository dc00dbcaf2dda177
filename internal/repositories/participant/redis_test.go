package participant

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/torneio/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newParticipant(handle string, id uint, tournamentID string) *models.Participant {
	return &models.Participant{
		Handle:       handle,
		ID:           id,
		Skill:        50,
		MaxSkill:     50,
		Name:         "Entrant",
		TournamentID: tournamentID,
		CreatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipant() {
	p := s.newParticipant("handle-1", 7, "")
	p.Wins = 2
	p.Skill = 30

	err := s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: p})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-1"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("handle-1", retrieved.Handle)
	s.Equal(uint(7), retrieved.ID)
	s.Equal(uint(30), retrieved.Skill)
	s.Equal(uint(50), retrieved.MaxSkill)
	s.Equal(uint(2), retrieved.Wins)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveParticipantRejectsEmptyHandle() {
	err := s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: s.newParticipant("", 1, "")})
	s.Error(err)

	err = s.repo.SaveParticipant(s.ctx, nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentParticipant() {
	_, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "missing"})
	s.Require().Error(err)
	s.Equal(ErrParticipantNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteParticipant() {
	p := s.newParticipant("handle-1", 1, "tournament-1")
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: p}))

	err := s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{Handle: "handle-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-1"})
	s.Equal(ErrParticipantNotFound, err)

	output, err := s.repo.GetParticipantsInTournament(s.ctx, &GetParticipantsInTournamentInput{
		TournamentID: "tournament-1",
	})
	s.Require().NoError(err)
	s.Empty(output.Participants)
}

func (s *RedisRepositoryTestSuite) TestDeleteParticipantTwice() {
	p := s.newParticipant("handle-1", 1, "")
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: p}))
	s.Require().NoError(s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{Handle: "handle-1"}))

	err := s.repo.DeleteParticipant(s.ctx, &DeleteParticipantInput{Handle: "handle-1"})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantsInTournament() {
	participants := []*models.Participant{
		s.newParticipant("handle-3", 3, "tournament-1"),
		s.newParticipant("handle-1", 1, "tournament-1"),
		s.newParticipant("handle-2", 2, "tournament-1"),
		s.newParticipant("handle-9", 9, "tournament-2"),
		s.newParticipant("handle-0", 0, ""),
	}

	for _, p := range participants {
		s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: p}))
	}

	output, err := s.repo.GetParticipantsInTournament(s.ctx, &GetParticipantsInTournamentInput{
		TournamentID: "tournament-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 3)

	// Ordered by ID regardless of insertion order
	s.Equal(uint(1), output.Participants[0].ID)
	s.Equal(uint(2), output.Participants[1].ID)
	s.Equal(uint(3), output.Participants[2].ID)

	empty, err := s.repo.GetParticipantsInTournament(s.ctx, &GetParticipantsInTournamentInput{
		TournamentID: "non-existent",
	})
	s.Require().NoError(err)
	s.Empty(empty.Participants)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantsInTournamentSkipsStaleIndex() {
	p := s.newParticipant("handle-1", 1, "tournament-1")
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: p}))
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{
		Participant: s.newParticipant("handle-2", 2, "tournament-1"),
	}))

	// Remove the record but leave the index entry behind
	s.mr.Del(participantKey("handle-2"))

	output, err := s.repo.GetParticipantsInTournament(s.ctx, &GetParticipantsInTournamentInput{
		TournamentID: "tournament-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 1)
	s.Equal("handle-1", output.Participants[0].Handle)
}

func (s *RedisRepositoryTestSuite) TestSettleMatch() {
	winner := s.newParticipant("handle-1", 1, "tournament-1")
	loser := s.newParticipant("handle-2", 2, "tournament-1")
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: winner}))
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: loser}))

	settled := *winner
	settled.Skill = 10
	settled.Wins = 1

	err := s.repo.SettleMatch(s.ctx, &SettleMatchInput{Winner: &settled, LoserHandle: "handle-2"})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-1"})
	s.Require().NoError(err)
	s.Equal(uint(10), retrieved.Skill)
	s.Equal(uint(1), retrieved.Wins)

	_, err = s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-2"})
	s.Equal(ErrParticipantNotFound, err)

	output, err := s.repo.GetParticipantsInTournament(s.ctx, &GetParticipantsInTournamentInput{
		TournamentID: "tournament-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 1)
	s.Equal("handle-1", output.Participants[0].Handle)
}

func (s *RedisRepositoryTestSuite) TestSettleMatchMissingLoserWritesNothing() {
	winner := s.newParticipant("handle-1", 1, "")
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{Participant: winner}))

	settled := *winner
	settled.Skill = 10

	err := s.repo.SettleMatch(s.ctx, &SettleMatchInput{Winner: &settled, LoserHandle: "handle-2"})
	s.Equal(ErrParticipantNotFound, err)

	retrieved, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-1"})
	s.Require().NoError(err)
	s.Equal(uint(50), retrieved.Skill)
}

func (s *RedisRepositoryTestSuite) TestSettleMatchDoesNotResurrectWinner() {
	s.Require().NoError(s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{
		Participant: s.newParticipant("handle-2", 2, ""),
	}))

	err := s.repo.SettleMatch(s.ctx, &SettleMatchInput{
		Winner:      s.newParticipant("handle-1", 1, ""),
		LoserHandle: "handle-2",
	})
	s.Equal(ErrParticipantNotFound, err)

	_, err = s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-1"})
	s.Equal(ErrParticipantNotFound, err)
	_, err = s.repo.GetParticipant(s.ctx, &GetParticipantInput{Handle: "handle-2"})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSettleMatchValidatesInput() {
	s.Error(s.repo.SettleMatch(s.ctx, nil))
	s.Error(s.repo.SettleMatch(s.ctx, &SettleMatchInput{LoserHandle: "handle-2"}))
	s.Error(s.repo.SettleMatch(s.ctx, &SettleMatchInput{Winner: s.newParticipant("handle-1", 1, "")}))
}
