package match

import (
	"context"
	"fmt"
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

func (s *RedisRepositoryTestSuite) addMatch(seq int64, tournamentID, first, second string) *models.Match {
	m := &models.Match{
		ID:               fmt.Sprintf("match-%d", seq),
		Sequence:         seq,
		TournamentID:     tournamentID,
		Round:            1,
		FirstHandle:      first,
		SecondHandle:     second,
		FirstID:          1,
		SecondID:         2,
		FirstSkill:       50,
		SecondSkill:      80,
		WinnerHandle:     second,
		LoserHandle:      first,
		WinnerSkillAfter: 40,
		Regeneration:     10,
		DecidedBy:        models.DecidedBySkill,
		PlayedAt:         s.testNow,
	}

	s.Require().NoError(s.repo.AddMatch(s.ctx, &AddMatchInput{Match: m}))
	return m
}

func (s *RedisRepositoryTestSuite) TestNextSequenceIncrements() {
	first, err := s.repo.NextSequence(s.ctx)
	s.Require().NoError(err)
	second, err := s.repo.NextSequence(s.ctx)
	s.Require().NoError(err)

	s.Equal(int64(1), first)
	s.Equal(int64(2), second)
}

func (s *RedisRepositoryTestSuite) TestAddMatchRoundTrip() {
	expected := s.addMatch(1, "tournament-1", "handle-a", "handle-b")

	output, err := s.repo.GetMatchesByTournament(s.ctx, &GetMatchesByTournamentInput{TournamentID: "tournament-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)
	actual := output.Matches[0]

	s.Equal(expected.ID, actual.ID)
	s.Equal("handle-b", actual.WinnerHandle)
	s.Equal(uint(2), actual.WinnerID())
	s.Equal(uint(1), actual.LoserID())
	s.Equal(uint(40), actual.WinnerSkillAfter)
	s.Equal(models.DecidedBySkill, actual.DecidedBy)
	s.Equal(s.testNow.Unix(), actual.PlayedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestAddMatchKeepsRolls() {
	m := &models.Match{
		ID:           "match-rolls",
		Sequence:     1,
		FirstHandle:  "handle-a",
		SecondHandle: "handle-b",
		WinnerHandle: "handle-a",
		LoserHandle:  "handle-b",
		DecidedBy:    models.DecidedByRollOff,
		Rolls:        []models.Roll{{First: 3, Second: 3}, {First: 5, Second: 2}},
	}
	s.Require().NoError(s.repo.AddMatch(s.ctx, &AddMatchInput{Match: m}))

	output, err := s.repo.GetMatchesByParticipant(s.ctx, &GetMatchesByParticipantInput{Handle: "handle-a"})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)
	actual := output.Matches[0]
	s.Require().Len(actual.Rolls, 2)
	s.True(actual.Rolls[0].Tied())
	s.Equal(5, actual.Rolls[1].First)
}

func (s *RedisRepositoryTestSuite) TestAddMatchValidatesInput() {
	s.Error(s.repo.AddMatch(s.ctx, nil))
	s.Error(s.repo.AddMatch(s.ctx, &AddMatchInput{Match: &models.Match{}}))
}

func (s *RedisRepositoryTestSuite) TestGetMatchesByTournamentInSequenceOrder() {
	s.addMatch(3, "tournament-1", "handle-c", "handle-d")
	s.addMatch(1, "tournament-1", "handle-a", "handle-b")
	s.addMatch(2, "tournament-2", "handle-x", "handle-y")
	s.addMatch(4, "tournament-1", "handle-b", "handle-d")

	output, err := s.repo.GetMatchesByTournament(s.ctx, &GetMatchesByTournamentInput{
		TournamentID: "tournament-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 3)
	s.Equal("match-1", output.Matches[0].ID)
	s.Equal("match-3", output.Matches[1].ID)
	s.Equal("match-4", output.Matches[2].ID)
}

func (s *RedisRepositoryTestSuite) TestGetMatchesByParticipant() {
	s.addMatch(1, "tournament-1", "handle-a", "handle-b")
	s.addMatch(2, "tournament-1", "handle-c", "handle-d")
	s.addMatch(3, "tournament-1", "handle-b", "handle-d")

	output, err := s.repo.GetMatchesByParticipant(s.ctx, &GetMatchesByParticipantInput{Handle: "handle-b"})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 2)
	s.Equal("match-1", output.Matches[0].ID)
	s.Equal("match-3", output.Matches[1].ID)

	empty, err := s.repo.GetMatchesByParticipant(s.ctx, &GetMatchesByParticipantInput{Handle: "nobody"})
	s.Require().NoError(err)
	s.Empty(empty.Matches)
}

func (s *RedisRepositoryTestSuite) TestDeleteTournamentMatches() {
	s.addMatch(1, "tournament-1", "handle-a", "handle-b")
	s.addMatch(2, "tournament-2", "handle-a", "handle-c")

	err := s.repo.DeleteTournamentMatches(s.ctx, &DeleteTournamentMatchesInput{TournamentID: "tournament-1"})
	s.Require().NoError(err)

	deleted, err := s.repo.GetMatchesByTournament(s.ctx, &GetMatchesByTournamentInput{TournamentID: "tournament-1"})
	s.Require().NoError(err)
	s.Empty(deleted.Matches)
	s.False(s.mr.Exists(matchKey("match-1")))

	output, err := s.repo.GetMatchesByParticipant(s.ctx, &GetMatchesByParticipantInput{Handle: "handle-a"})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)
	s.Equal("match-2", output.Matches[0].ID)
}
