package tournament

import (
	"sort"

	"github.com/KirkDiggler/torneio/internal/models"
)

// PairRound pairs handles in order (first with second, third with fourth, ...).
// An odd handle out gets the bye.
func PairRound(handles []string) (pairs [][2]string, bye string) {
	for i := 0; i+1 < len(handles); i += 2 {
		pairs = append(pairs, [2]string{handles[i], handles[i+1]})
	}

	if len(handles)%2 == 1 {
		bye = handles[len(handles)-1]
	}

	return pairs, bye
}

// RankEntrants orders entrants champion first, then by the round they were knocked out in,
// latest first. Entrants knocked out in the same round share a rank and are listed by seed.
func RankEntrants(t *models.Tournament, wins map[string]int) []*models.Standing {
	entrants := make([]*models.Entrant, len(t.Entrants))
	copy(entrants, t.Entrants)

	// The champion is never eliminated, so it sorts above every finished round
	survival := func(e *models.Entrant) int {
		if e.Handle == t.ChampionHandle {
			return len(t.Rounds) + 1
		}
		return e.EliminatedInRound
	}

	sort.SliceStable(entrants, func(i, j int) bool {
		si, sj := survival(entrants[i]), survival(entrants[j])
		if si != sj {
			return si > sj
		}
		return entrants[i].Seed < entrants[j].Seed
	})

	standings := make([]*models.Standing, 0, len(entrants))
	for i, e := range entrants {
		rank := i + 1
		if i > 0 && survival(entrants[i-1]) == survival(e) {
			rank = standings[i-1].Rank
		}

		standings = append(standings, &models.Standing{
			Rank:     rank,
			Entrant:  e,
			Wins:     wins[e.Handle],
			Champion: e.Handle == t.ChampionHandle,
		})
	}

	return standings
}
