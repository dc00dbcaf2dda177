package tournament

import (
	"testing"

	"github.com/KirkDiggler/torneio/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPairRound(t *testing.T) {
	tests := []struct {
		name      string
		handles   []string
		wantPairs [][2]string
		wantBye   string
	}{
		{
			name:    "empty",
			handles: nil,
		},
		{
			name:    "single handle gets the bye",
			handles: []string{"a"},
			wantBye: "a",
		},
		{
			name:      "even field",
			handles:   []string{"a", "b", "c", "d"},
			wantPairs: [][2]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "odd field",
			handles:   []string{"a", "b", "c", "d", "e"},
			wantPairs: [][2]string{{"a", "b"}, {"c", "d"}},
			wantBye:   "e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, bye := PairRound(tt.handles)
			assert.Equal(t, tt.wantPairs, pairs)
			assert.Equal(t, tt.wantBye, bye)
		})
	}
}

func TestRankEntrants(t *testing.T) {
	tournament := &models.Tournament{
		Entrants: []*models.Entrant{
			{Seed: 1, Handle: "h1", EliminatedInRound: 1},
			{Seed: 2, Handle: "h2"},
			{Seed: 3, Handle: "h3", EliminatedInRound: 2},
			{Seed: 4, Handle: "h4", EliminatedInRound: 1},
		},
		Rounds:         []*models.Round{{Number: 1}, {Number: 2}},
		ChampionHandle: "h2",
	}
	wins := map[string]int{"h2": 2, "h3": 1}

	standings := RankEntrants(tournament, wins)

	want := []struct {
		seed     uint
		rank     int
		wins     int
		champion bool
	}{
		{seed: 2, rank: 1, wins: 2, champion: true},
		{seed: 3, rank: 2, wins: 1},
		{seed: 1, rank: 3},
		{seed: 4, rank: 3},
	}

	if assert.Len(t, standings, len(want)) {
		for i, w := range want {
			assert.Equal(t, w.seed, standings[i].Entrant.Seed, "position %d", i)
			assert.Equal(t, w.rank, standings[i].Rank, "position %d", i)
			assert.Equal(t, w.wins, standings[i].Wins, "position %d", i)
			assert.Equal(t, w.champion, standings[i].Champion, "position %d", i)
		}
	}

	// Ranking works on a copy
	assert.Equal(t, uint(1), tournament.Entrants[0].Seed)
}
